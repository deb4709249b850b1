package adapter

import (
	"time"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/logger"
)

// DefaultLoadTimeout bounds a lazy loader when Options.LoadTimeout is zero.
const DefaultLoadTimeout = 10 * time.Second

// Options tune a factory-created adapter.
type Options struct {
	// DefaultAdapter is the library used when a render does not pick one.
	DefaultAdapter library.ID
	// Fallback renders when no implementation resolves.
	Fallback Component
	// Loading renders while a lazy implementation loads.
	Loading Component
	// LoadTimeout bounds each lazy load.
	LoadTimeout time.Duration
}

// Detector picks a library at render time, for example from the terminal
// width or an accessibility setting.
type Detector func(ctx RenderContext) library.ID

// ThemeMapper translates props for the library about to render them.
type ThemeMapper func(id library.ID, props Props) Props

// Factory builds adapter components and registers their definitions. The
// registry stays the single authority for resolution state.
type Factory struct {
	registry *Registry
	logger   *logger.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithFactoryLogger overrides the logger inherited from the registry.
func WithFactoryLogger(log *logger.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = log
	}
}

// NewFactory returns a factory bound to reg, or to the default registry
// when reg is nil.
func NewFactory(reg *Registry, opts ...FactoryOption) *Factory {
	if reg == nil {
		reg = Default()
	}
	f := &Factory{registry: reg, logger: reg.Logger()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Registry returns the registry the factory writes to.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// CreateAdapter registers impls under name and returns a wrapper that
// resolves through the registry on every render.
func (f *Factory) CreateAdapter(name string, impls map[library.ID]Component, opts Options) (Component, error) {
	def := Definition{
		Name:            name,
		Implementations: impls,
		DefaultLibrary:  opts.DefaultAdapter,
		Fallback:        opts.Fallback,
	}
	if err := f.registry.Register(def); err != nil {
		return nil, err
	}
	return f.registry.CreateComponent(name, opts.DefaultAdapter), nil
}

// CreateSmartAdapter registers impls under name and returns a wrapper whose
// library comes from the adapter prop or, failing that, from detect. A
// detected library without an implementation, or no detected library at
// all, falls back to the first available one.
func (f *Factory) CreateSmartAdapter(name string, impls map[library.ID]Component, detect Detector) (Component, error) {
	def := Definition{Name: name, Implementations: impls}
	if err := f.registry.Register(def); err != nil {
		return nil, err
	}
	if detect == nil {
		detect = FixedDetector(library.Primary)
	}
	first, _, _ := def.firstAvailable()

	return newBound(name, func(ctx RenderContext, props Props) (Resolution, Props) {
		preferred := props.Adapter
		if !preferred.IsSet() {
			preferred = detect(ctx)
		}
		// An undecided detector never defers to the registry default.
		return f.registry.Resolve(name, preferred.Or(first)), props.Forwarded()
	}), nil
}

// CreateThemedAdapter registers impls under name and returns a wrapper that
// renders with the primary library unless overridden, passing the forwarded
// props through mapper first.
func (f *Factory) CreateThemedAdapter(name string, impls map[library.ID]Component, mapper ThemeMapper) (Component, error) {
	if err := f.registry.Register(Definition{Name: name, Implementations: impls}); err != nil {
		return nil, err
	}

	return newBound(name, func(_ RenderContext, props Props) (Resolution, Props) {
		res := f.registry.Resolve(name, props.Adapter.Or(library.Primary))
		forwarded := props.Forwarded()
		if mapper != nil && res.OK() {
			forwarded = mapper(res.Library, forwarded)
		}
		return res, forwarded
	}), nil
}

// FixedDetector always picks id.
func FixedDetector(id library.ID) Detector {
	return func(RenderContext) library.ID {
		return id
	}
}

// WidthDetector picks narrow below breakpoint columns and wide otherwise.
// A zero width counts as wide.
func WidthDetector(breakpoint int, narrow, wide library.ID) Detector {
	return func(ctx RenderContext) library.ID {
		if ctx.Width > 0 && ctx.Width < breakpoint {
			return narrow
		}
		return wide
	}
}

// AccessibilityDetector picks highContrast when the context asks for high
// contrast and otherwise defers to next.
func AccessibilityDetector(highContrast library.ID, next Detector) Detector {
	return func(ctx RenderContext) library.ID {
		if ctx.Accessibility.HighContrast || ctx.Theme.HighContrast {
			return highContrast
		}
		if next == nil {
			return library.Unset
		}
		return next(ctx)
	}
}

// VariantMapper returns a ThemeMapper that renames the "variant" prop per
// library, e.g. {custom: {"danger": "error"}}.
func VariantMapper(renames map[library.ID]map[string]string) ThemeMapper {
	return func(id library.ID, props Props) Props {
		table, ok := renames[id]
		if !ok {
			return props
		}
		if renamed, ok := table[props.String("variant")]; ok {
			return props.With("variant", renamed)
		}
		return props
	}
}
