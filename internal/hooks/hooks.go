// Package hooks exposes read-only accessors over the adapter configuration
// for code that picks a library itself instead of going through a factory
// component.
package hooks

import (
	"maps"
	"sync"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// Hooks projects the current configuration snapshot. Results are memoised
// per snapshot and component name; a new snapshot drops the memo.
type Hooks struct {
	store *config.Store

	mu       sync.Mutex
	snapshot *config.AdapterConfig
	adapters map[string]library.ID
	props    map[string]map[string]any
}

// New returns hooks reading from store.
func New(store *config.Store) *Hooks {
	if store == nil {
		store = config.NewDefaultStore()
	}
	return &Hooks{store: store}
}

// current returns the live snapshot, resetting the memo when it changed.
// Callers must hold h.mu.
func (h *Hooks) current() *config.AdapterConfig {
	cfg := h.store.Load()
	if cfg != h.snapshot {
		h.snapshot = cfg
		h.adapters = make(map[string]library.ID)
		h.props = make(map[string]map[string]any)
	}
	return cfg
}

// Adapter returns the library the named component should render with:
// its override when present, otherwise the primary library.
func (h *Hooks) Adapter(componentName string) library.ID {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg := h.current()
	if id, ok := h.adapters[componentName]; ok {
		return id
	}

	id := cfg.PrimaryAdapter
	if o, ok := cfg.Override(componentName); ok && o.Adapter.IsSet() {
		id = o.Adapter
	}
	h.adapters[componentName] = id
	return id
}

// AdapterProps returns the configured default props for the named
// component, or an empty map. The result is a copy.
func (h *Hooks) AdapterProps(componentName string) map[string]any {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg := h.current()
	props, ok := h.props[componentName]
	if !ok {
		props = map[string]any{}
		if o, found := cfg.Override(componentName); found && o.DefaultProps != nil {
			props = maps.Clone(o.DefaultProps)
		}
		h.props[componentName] = props
	}
	return maps.Clone(props)
}

// FallbackAdapter returns the configured secondary library.
func (h *Hooks) FallbackAdapter() library.ID {
	return h.store.Load().FallbackAdapter
}

// DarkMode reports whether the theme forces dark colours.
func (h *Hooks) DarkMode() bool {
	return h.store.Load().Theme.Mode == config.ThemeModeDark
}

// Theme returns the configured theme settings.
func (h *Hooks) Theme() config.Theme {
	return h.store.Load().Theme
}

// Accessibility returns the configured accessibility settings.
func (h *Hooks) Accessibility() config.Accessibility {
	return h.store.Load().Accessibility
}

// Override returns the raw override entry for componentName.
func (h *Hooks) Override(componentName string) (config.ComponentOverride, bool) {
	return h.store.Load().Override(componentName)
}
