package adapter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// Outcome tags a Resolution.
type Outcome int

const (
	// Resolved carries an implementation to render.
	Resolved Outcome = iota
	// Pending carries the loading view of a lazy adapter still in flight.
	Pending
	// Missing means nothing can render; the placeholder is shown instead.
	Missing
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Pending:
		return "pending"
	case Missing:
		return "missing"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Source records which resolution step produced the component.
type Source int

const (
	SourceNone Source = iota
	SourceExact
	SourceSubstitute
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceExact:
		return "exact"
	case SourceSubstitute:
		return "substitute"
	case SourceFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Resolution is the result of turning a component name and an optional
// library into something renderable.
type Resolution struct {
	Outcome   Outcome
	Source    Source
	Name      string
	Requested library.ID
	Library   library.ID
	Component Component
	Reason    string
}

// OK reports whether the resolution produced an implementation.
func (r Resolution) OK() bool {
	return r.Outcome == Resolved && r.Component != nil
}

func missing(name string, requested library.ID, reason string) Resolution {
	return Resolution{
		Outcome:   Missing,
		Source:    SourceNone,
		Name:      name,
		Requested: requested,
		Reason:    reason,
	}
}

// Resolver is implemented by every component the factory produces, so
// callers can inspect what a render would use without rendering it.
type Resolver interface {
	Component
	Resolve(ctx RenderContext, props Props) Resolution
}

// resolveFunc is the per-variant policy. It returns the resolution and the
// props to forward to whatever gets rendered.
type resolveFunc func(ctx RenderContext, props Props) (Resolution, Props)

// bound is the single wrapper shape shared by all factory variants: accept
// an adapter override prop, resolve, then render the implementation with the
// remaining props or a visible placeholder.
type bound struct {
	name    string
	resolve resolveFunc
}

func newBound(name string, resolve resolveFunc) *bound {
	return &bound{name: name, resolve: resolve}
}

// Name returns the component name the wrapper resolves.
func (b *bound) Name() string {
	return b.name
}

// Render resolves and renders.
func (b *bound) Render(ctx RenderContext, props Props) string {
	res, forwarded := b.resolve(ctx, props)
	return renderResolution(ctx, res, forwarded)
}

// Resolve reports what Render would use.
func (b *bound) Resolve(ctx RenderContext, props Props) Resolution {
	res, _ := b.resolve(ctx, props)
	return res
}

func renderResolution(ctx RenderContext, res Resolution, props Props) string {
	switch res.Outcome {
	case Resolved, Pending:
		if res.Component != nil {
			return res.Component.Render(ctx, props)
		}
	}
	return Placeholder{Name: res.Name, Library: res.Requested, Reason: res.Reason}.Render(ctx, props)
}

const (
	reasonMissing     = "missing adapter"
	reasonMissingLazy = "missing lazy adapter"
	reasonLoadFailed  = "lazy adapter failed to load"
)

// Placeholder is the visible stand-in rendered when resolution fails.
type Placeholder struct {
	Name    string
	Library library.ID
	Reason  string
}

// Text returns the placeholder message without decoration.
func (p Placeholder) Text() string {
	reason := p.Reason
	if reason == "" {
		reason = reasonMissing
	}
	lib := p.Library.String()
	if lib == "" {
		lib = "default"
	}
	return fmt.Sprintf("%s: %s (library: %s)", reason, p.Name, lib)
}

// Render draws a bordered box in the theme's danger colour.
func (p Placeholder) Render(ctx RenderContext, _ Props) string {
	danger := ctx.Theme.Colour(ctx.Theme.Palette.Danger.Base)
	border := ctx.Theme.Border()
	if ctx.Accessibility.HighContrast {
		border = ctx.Theme.Borders.Thick
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(danger).
		Foreground(danger).
		Padding(0, 1)
	return style.Render("⚠ " + p.Text())
}
