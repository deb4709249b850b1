package adapter

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

func TestPropsForwardedDropsAdapter(t *testing.T) {
	t.Parallel()

	p := P("variant", "primary").WithAdapter(library.Custom).WithChildren("Go")
	fwd := p.Forwarded()

	require.Equal(t, library.Unset, fwd.Adapter)
	require.Equal(t, "Go", fwd.Children)
	require.Equal(t, "primary", fwd.String("variant"))
	require.Equal(t, library.Custom, p.Adapter, "original is untouched")

	fwd.Values["variant"] = "ghost"
	require.Equal(t, "primary", p.String("variant"))
}

func TestPropsWithDefaults(t *testing.T) {
	t.Parallel()

	p := P("size", "sm").WithDefaults(map[string]any{"size": "lg", "disabled": true})
	require.Equal(t, "sm", p.String("size"))
	require.True(t, p.Bool("disabled"))

	var empty Props
	require.Equal(t, "lg", empty.WithDefaults(map[string]any{"size": "lg"}).String("size"))
	require.Nil(t, empty.WithDefaults(nil).Values)
}

func TestPropsAccessors(t *testing.T) {
	t.Parallel()

	p := P(
		"label", "Feed",
		"count", 3,
		"ratio", 0.25,
		"on", "true",
		"options", []any{"mm", "inch", 4},
		"unit", library.Custom,
		42, "ignored",
	)

	require.Equal(t, "Feed", p.String("label"))
	require.Equal(t, "3", p.String("count"))
	require.Equal(t, "0.25", p.String("ratio"))
	require.Equal(t, "custom", p.String("unit"))
	require.Equal(t, "", p.String("missing"))
	require.True(t, p.Bool("on"))
	require.False(t, p.Bool("label"))
	require.InDelta(t, 3.0, p.Float("count"), 1e-9)
	require.InDelta(t, 0.25, p.Float("ratio"), 1e-9)
	require.Equal(t, []string{"mm", "inch"}, p.Strings("options"))
	require.Nil(t, p.Strings("label"))
	require.Len(t, p.Values, 6)

	v, ok := p.Get("count")
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestPropsApplyStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain", Props{}.ApplyStyle("plain"))

	style := lipgloss.NewStyle().PaddingLeft(2)
	require.Equal(t, "  pad", Props{Style: &style}.ApplyStyle("pad"))
}

func TestPlaceholderText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "missing adapter: Button (library: custom)",
		Placeholder{Name: "Button", Library: library.Custom}.Text())
	require.Equal(t, "missing adapter: Button (library: default)",
		Placeholder{Name: "Button"}.Text())
	require.Equal(t, "lazy adapter failed to load: Modal (library: primary)",
		Placeholder{Name: "Modal", Library: library.Primary, Reason: reasonLoadFailed}.Text())

	out := Placeholder{Name: "Button", Library: library.Headless}.Render(DefaultContext(), Props{})
	require.Contains(t, out, "missing adapter: Button (library: headless)")
	require.Contains(t, out, lipgloss.RoundedBorder().TopLeft)

	ctx := DefaultContext()
	ctx.Accessibility.HighContrast = true
	out = Placeholder{Name: "Button"}.Render(ctx, Props{})
	require.Contains(t, out, lipgloss.ThickBorder().TopLeft)
}

func TestContextFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Theme.Mode = config.ThemeModeDark
	cfg.Accessibility.HighContrast = true

	ctx := ContextFromConfig(&cfg, 120)
	require.Equal(t, 120, ctx.Width)
	require.True(t, ctx.Theme.Dark())
	require.True(t, ctx.Accessibility.HighContrast)

	require.Equal(t, 80, ContextFromConfig(nil, 80).Width)
}

func TestOutcomeAndSourceStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pending", Pending.String())
	require.Equal(t, "missing", Missing.String())
	require.Equal(t, "substitute", SourceSubstitute.String())
	require.Equal(t, "none", SourceNone.String())
}
