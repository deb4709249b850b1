package adapter

import (
	"sync"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// Default instance for call sites that do not carry a registry around.
var (
	defaultMu       sync.Mutex
	defaultRegistry *Registry
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry == nil {
		defaultRegistry = NewRegistry()
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
}

// ResetDefault drops the process-wide registry; the next Default call
// creates a fresh one. Intended for tests.
func ResetDefault() {
	SetDefault(nil)
}

// Register stores def in the default registry.
func Register(def Definition) error {
	return Default().Register(def)
}

// Get resolves name against the default registry.
func Get(name string, preferred library.ID) Component {
	return Default().Get(name, preferred)
}

// CreateAdapter registers impls in the default registry and returns the
// wrapper component.
func CreateAdapter(name string, impls map[library.ID]Component, opts Options) (Component, error) {
	return NewFactory(Default()).CreateAdapter(name, impls, opts)
}
