package config

import (
	"maps"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// ThemeMode selects light, dark or terminal-detected colours.
type ThemeMode string

const (
	ThemeModeAuto  ThemeMode = "auto"
	ThemeModeLight ThemeMode = "light"
	ThemeModeDark  ThemeMode = "dark"
)

// Density controls spacing inside framed widgets.
type Density string

const (
	DensityComfortable Density = "comfortable"
	DensityCompact     Density = "compact"
)

// AdapterConfig is the declarative, process-wide library selection policy.
type AdapterConfig struct {
	PrimaryAdapter     library.ID                   `yaml:"primary_adapter" validate:"library"`
	FallbackAdapter    library.ID                   `yaml:"fallback_adapter,omitempty" validate:"omitempty,library"`
	ComponentOverrides map[string]ComponentOverride `yaml:"component_overrides,omitempty" validate:"omitempty,dive,keys,required,endkeys"`
	Theme              Theme                        `yaml:"theme,omitempty"`
	Accessibility      Accessibility                `yaml:"accessibility,omitempty"`
}

// ComponentOverride pins a named component to a library and/or supplies
// default props for it.
type ComponentOverride struct {
	Adapter      library.ID     `yaml:"adapter,omitempty" validate:"omitempty,library"`
	DefaultProps map[string]any `yaml:"default_props,omitempty"`
}

// Theme is forwarded to rendered components; the resolution logic ignores it.
type Theme struct {
	Mode    ThemeMode `yaml:"mode,omitempty" validate:"omitempty,oneof=auto light dark"`
	Name    string    `yaml:"name,omitempty" validate:"omitempty,max=64"`
	Density Density   `yaml:"density,omitempty" validate:"omitempty,oneof=comfortable compact"`
}

// Accessibility is forwarded to rendered components.
type Accessibility struct {
	HighContrast   bool `yaml:"high_contrast,omitempty"`
	ReducedMotion  bool `yaml:"reduced_motion,omitempty"`
	FocusOutline   bool `yaml:"focus_outline,omitempty"`
	MinTouchTarget int  `yaml:"min_touch_target,omitempty" validate:"omitempty,min=16,max=128"`
}

// Default returns the configuration used when nothing is supplied.
func Default() AdapterConfig {
	return AdapterConfig{
		PrimaryAdapter:  library.Primary,
		FallbackAdapter: library.Headless,
		Theme: Theme{
			Mode:    ThemeModeAuto,
			Name:    "default",
			Density: DensityComfortable,
		},
		Accessibility: Accessibility{
			FocusOutline:   true,
			MinTouchTarget: 44,
		},
	}
}

// Override returns the override for name, if any.
func (c *AdapterConfig) Override(name string) (ComponentOverride, bool) {
	if c == nil || c.ComponentOverrides == nil {
		return ComponentOverride{}, false
	}
	o, ok := c.ComponentOverrides[name]
	return o, ok
}

// Clone returns a deep copy; the store hands out snapshots that callers must
// not be able to mutate.
func (c AdapterConfig) Clone() AdapterConfig {
	out := c
	if c.ComponentOverrides != nil {
		out.ComponentOverrides = make(map[string]ComponentOverride, len(c.ComponentOverrides))
		for name, o := range c.ComponentOverrides {
			if o.DefaultProps != nil {
				o.DefaultProps = maps.Clone(o.DefaultProps)
			}
			out.ComponentOverrides[name] = o
		}
	}
	return out
}

func (c *AdapterConfig) applyDefaults() {
	def := Default()
	if !c.PrimaryAdapter.IsSet() {
		c.PrimaryAdapter = def.PrimaryAdapter
	}
	if c.Theme.Mode == "" {
		c.Theme.Mode = def.Theme.Mode
	}
	if c.Theme.Density == "" {
		c.Theme.Density = def.Theme.Density
	}
	if c.Theme.Name == "" {
		c.Theme.Name = def.Theme.Name
	}
}
