package adapter

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/hooks"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/logger"
)

// ErrNoImplementation is attached to the error-level diagnostic emitted when
// a registered adapter has neither a usable implementation nor a fallback.
var ErrNoImplementation = errors.New("no implementation or fallback available")

// Registry maps component names to their per-library implementations and
// resolves them with a deterministic fallback order. It is safe for
// concurrent use.
type Registry struct {
	mu             sync.RWMutex
	entries        map[string]Definition
	defaultLibrary library.ID
	logger         *logger.Logger
	hooks          *hooks.Hooks
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes resolution diagnostics to log.
func WithLogger(log *logger.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = log
	}
}

// WithDefaultLibrary sets the initial global default library.
func WithDefaultLibrary(id library.ID) RegistryOption {
	return func(r *Registry) {
		if id.Valid() {
			r.defaultLibrary = id
		}
	}
}

// WithHooks lets wrappers created by CreateComponent consult configuration
// overrides and default props.
func WithHooks(h *hooks.Hooks) RegistryOption {
	return func(r *Registry) {
		r.hooks = h
	}
}

// NewRegistry returns an empty registry whose default library is primary.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries:        make(map[string]Definition),
		defaultLibrary: library.Primary,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register validates def and stores it under def.Name. An existing entry is
// replaced wholesale; the last registration wins.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	stored := def.clone()

	r.mu.Lock()
	_, existed := r.entries[def.Name]
	r.entries[def.Name] = stored
	r.mu.Unlock()

	if existed {
		r.log(def.Name, library.Unset, library.Unset).Debug("adapter redefined")
	}
	return nil
}

// Lookup returns the stored definition for name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[name]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Get resolves name to an implementation, or nil when nothing can render.
func (r *Registry) Get(name string, preferred library.ID) Component {
	res := r.Resolve(name, preferred)
	if !res.OK() {
		return nil
	}
	return res.Component
}

// Resolve runs the resolution algorithm:
//
//  1. unknown name: warn, missing
//  2. library = preferred, else the definition default, else the registry default
//  3. exact implementation for library
//  4. first implementation in declaration order (warn)
//  5. the definition fallback (warn)
//  6. missing (error)
func (r *Registry) Resolve(name string, preferred library.ID) Resolution {
	r.mu.RLock()
	def, ok := r.entries[name]
	globalDefault := r.defaultLibrary
	r.mu.RUnlock()

	if !ok {
		requested := preferred.Or(globalDefault)
		r.log(name, requested, library.Unset).Warn("adapter not registered")
		return missing(name, requested, reasonMissing)
	}

	requested := preferred.Or(def.DefaultLibrary).Or(globalDefault)

	if impl, found := def.Implementations[requested]; found {
		return Resolution{
			Outcome:   Resolved,
			Source:    SourceExact,
			Name:      name,
			Requested: requested,
			Library:   requested,
			Component: impl,
		}
	}

	if id, impl, found := def.firstAvailable(); found {
		r.log(name, requested, id).Warn("adapter library substituted")
		return Resolution{
			Outcome:   Resolved,
			Source:    SourceSubstitute,
			Name:      name,
			Requested: requested,
			Library:   id,
			Component: impl,
		}
	}

	if def.Fallback != nil {
		r.log(name, requested, library.Unset).Warn("adapter fallback used")
		return Resolution{
			Outcome:   Resolved,
			Source:    SourceFallback,
			Name:      name,
			Requested: requested,
			Component: def.Fallback,
		}
	}

	r.log(name, requested, library.Unset).Error(ErrNoImplementation, "adapter resolution failed")
	return missing(name, requested, reasonMissing)
}

// CreateComponent returns a wrapper that resolves name on every render.
// The library is taken from the adapter prop, then a configuration override,
// then defaultLibrary, then the usual definition and registry defaults.
func (r *Registry) CreateComponent(name string, defaultLibrary library.ID) Component {
	return newBound(name, func(_ RenderContext, props Props) (Resolution, Props) {
		preferred := props.Adapter
		forwarded := props.Forwarded()

		if r.hooks != nil {
			if o, ok := r.hooks.Override(name); ok && !preferred.IsSet() {
				preferred = o.Adapter
			}
			forwarded = forwarded.WithDefaults(r.hooks.AdapterProps(name))
		}

		return r.Resolve(name, preferred.Or(defaultLibrary)), forwarded
	})
}

// SetDefaultAdapter changes the global default library for future
// resolutions.
func (r *Registry) SetDefaultAdapter(id library.ID) error {
	if !id.Valid() {
		return fmt.Errorf("set default adapter: %w: %q", library.ErrUnknown, id)
	}
	r.mu.Lock()
	r.defaultLibrary = id
	r.mu.Unlock()
	return nil
}

// DefaultAdapter returns the global default library.
func (r *Registry) DefaultAdapter() library.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLibrary
}

// ApplyConfig adopts the configuration's primary library as the global
// default.
func (r *Registry) ApplyConfig(cfg *config.AdapterConfig) error {
	if cfg == nil {
		return nil
	}
	return r.SetDefaultAdapter(cfg.PrimaryAdapter)
}

// IsAdapterAvailable reports whether name has an implementation for id.
func (r *Registry) IsAdapterAvailable(name string, id library.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[name]
	if !ok {
		return false
	}
	_, ok = def.Implementations[id]
	return ok
}

// AvailableLibraries lists the libraries name is implemented in, in
// declaration order.
func (r *Registry) AvailableLibraries(name string) []library.ID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.entries[name]
	if !ok {
		return nil
	}
	return def.Libraries()
}

// RegisteredAdapters returns the registered names in sorted order.
func (r *Registry) RegisteredAdapters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes every entry. The default library is kept.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.entries = make(map[string]Definition)
	r.mu.Unlock()
}

// Logger returns the diagnostics logger, which may be nil.
func (r *Registry) Logger() *logger.Logger {
	return r.logger
}

func (r *Registry) log(name string, requested, resolved library.ID) *logger.Logger {
	return r.logger.ForComponent(name, requested.String(), resolved.String())
}
