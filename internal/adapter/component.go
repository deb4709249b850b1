package adapter

import (
	"maps"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/theme"
)

// Component is a renderable unit. Library implementations and the wrappers
// produced by the factory share this contract.
type Component interface {
	Render(ctx RenderContext, props Props) string
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(ctx RenderContext, props Props) string

// Render calls f.
func (f ComponentFunc) Render(ctx RenderContext, props Props) string {
	return f(ctx, props)
}

// RenderContext carries what a component needs from its surroundings.
type RenderContext struct {
	Theme         theme.Theme
	Accessibility config.Accessibility
	Width         int
}

// DefaultContext returns a context with the default theme and an 80 column width.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme: theme.Default(),
		Width: 80,
	}
}

// ContextFromConfig builds a render context from a configuration snapshot.
func ContextFromConfig(cfg *config.AdapterConfig, width int) RenderContext {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return RenderContext{
		Theme:         theme.FromSettings(cfg.Theme, cfg.Accessibility),
		Accessibility: cfg.Accessibility,
		Width:         width,
	}
}

// WithWidth returns a copy of the context with a different width.
func (c RenderContext) WithWidth(width int) RenderContext {
	c.Width = width
	return c
}

// Props is the bag every adapter component accepts. Children, ClassName,
// Style and TestID form the common contract; Adapter is the routing prop and
// is never forwarded to implementations; Values holds component specific
// props such as variant, size or disabled.
type Props struct {
	Children  string
	ClassName string
	Style     *lipgloss.Style
	TestID    string
	Adapter   library.ID
	Values    map[string]any
}

// P builds Props from key/value pairs.
func P(kv ...any) Props {
	p := Props{Values: make(map[string]any, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		p.Values[key] = kv[i+1]
	}
	return p
}

// Forwarded returns the props an implementation receives: a copy without
// the routing prop.
func (p Props) Forwarded() Props {
	out := p.clone()
	out.Adapter = library.Unset
	return out
}

func (p Props) clone() Props {
	out := p
	if p.Values != nil {
		out.Values = maps.Clone(p.Values)
	}
	return out
}

// With returns a copy with key set to value.
func (p Props) With(key string, value any) Props {
	out := p.clone()
	if out.Values == nil {
		out.Values = make(map[string]any, 1)
	}
	out.Values[key] = value
	return out
}

// WithAdapter returns a copy routed to id.
func (p Props) WithAdapter(id library.ID) Props {
	out := p.clone()
	out.Adapter = id
	return out
}

// WithChildren returns a copy with Children replaced.
func (p Props) WithChildren(children string) Props {
	out := p.clone()
	out.Children = children
	return out
}

// WithDefaults returns a copy in which every key of defaults that p does not
// already carry is filled in.
func (p Props) WithDefaults(defaults map[string]any) Props {
	if len(defaults) == 0 {
		return p
	}
	out := p.clone()
	if out.Values == nil {
		out.Values = make(map[string]any, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := out.Values[k]; !ok {
			out.Values[k] = v
		}
	}
	return out
}

// Get returns the raw value for key.
func (p Props) Get(key string) (any, bool) {
	v, ok := p.Values[key]
	return v, ok
}

// String returns the value for key formatted as a string, or "".
func (p Props) String(key string) string {
	switch v := p.Values[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case interface{ String() string }:
		return v.String()
	default:
		return ""
	}
}

// Bool returns the value for key as a boolean; strings "true" and "1" count.
func (p Props) Bool(key string) bool {
	switch v := p.Values[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Float returns the value for key as a float64.
func (p Props) Float(key string) float64 {
	switch v := p.Values[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// Strings returns the value for key as a string slice.
func (p Props) Strings(key string) []string {
	switch v := p.Values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ApplyStyle renders content through the caller supplied style, if any.
func (p Props) ApplyStyle(content string) string {
	if p.Style == nil {
		return content
	}
	return p.Style.Render(content)
}
