// Package theme holds the visual token set handed to adapter implementations
// at render time. The adapter core never interprets it; it only forwards it
// inside the render context and uses the danger colour for placeholders.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/adapterkit/internal/config"
)

// Mode selects how adaptive colours are resolved.
type Mode int

const (
	// ModeAuto lets lipgloss pick light or dark from the terminal background.
	ModeAuto Mode = iota
	ModeLight
	ModeDark
)

// ColourSet groups the colours used for one semantic role.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette is the semantic colour table.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet lists the borders components may draw.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// Theme is the opaque configuration object consumed by rendered components.
type Theme struct {
	Name         string
	Mode         Mode
	Compact      bool
	HighContrast bool
	Palette      Palette
	Borders      BorderSet
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Default returns the stock machine-console theme.
func Default() Theme {
	return Theme{
		Name: "default",
		Mode: ModeAuto,
		Palette: Palette{
			Primary: ColourSet{
				Base:   ac("#3b82f6", "#60a5fa"),
				OnBase: ac("#f8fafc", "#0b1120"),
				Muted:  ac("#2563eb", "#1d4ed8"),
			},
			Secondary: ColourSet{
				Base:   ac("#a855f7", "#c084fc"),
				OnBase: ac("#f8fafc", "#1f2937"),
				Muted:  ac("#7c3aed", "#6b21a8"),
			},
			Surface: ColourSet{
				Base:   ac("#f9fafb", "#111827"),
				OnBase: ac("#111827", "#f9fafb"),
				Muted:  ac("#e2e8f0", "#1f2937"),
			},
			Success: ColourSet{
				Base:   ac("#22c55e", "#4ade80"),
				OnBase: ac("#052e16", "#022c22"),
				Muted:  ac("#16a34a", "#15803d"),
			},
			Warning: ColourSet{
				Base:   ac("#eab308", "#facc15"),
				OnBase: ac("#422006", "#422006"),
				Muted:  ac("#ca8a04", "#a16207"),
			},
			Danger: ColourSet{
				Base:   ac("#ef4444", "#f87171"),
				OnBase: ac("#7f1d1d", "#450a0a"),
				Muted:  ac("#dc2626", "#b91c1c"),
			},
			Info: ColourSet{
				Base:   ac("#0ea5e9", "#38bdf8"),
				OnBase: ac("#082f49", "#082f49"),
				Muted:  ac("#0284c7", "#0369a1"),
			},
			Neutral: ColourSet{
				Base:   ac("#64748b", "#94a3b8"),
				OnBase: ac("#f8fafc", "#0f172a"),
				Muted:  ac("#cbd5e1", "#334155"),
			},
		},
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
	}
}

// FromSettings builds a theme from the configuration's theme and
// accessibility sections.
func FromSettings(settings config.Theme, access config.Accessibility) Theme {
	t := Default()
	if settings.Name != "" {
		t.Name = settings.Name
	}
	switch settings.Mode {
	case config.ThemeModeDark:
		t.Mode = ModeDark
	case config.ThemeModeLight:
		t.Mode = ModeLight
	default:
		t.Mode = ModeAuto
	}
	t.Compact = settings.Density == config.DensityCompact
	t.HighContrast = access.HighContrast
	return t
}

// Dark reports whether the theme forces dark colours.
func (t Theme) Dark() bool {
	return t.Mode == ModeDark
}

// Colour resolves an adaptive colour against the theme mode.
func (t Theme) Colour(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	switch t.Mode {
	case ModeDark:
		return lipgloss.Color(c.Dark)
	case ModeLight:
		return lipgloss.Color(c.Light)
	default:
		return c
	}
}

// Border returns the border a framed component should use.
func (t Theme) Border() lipgloss.Border {
	if t.HighContrast {
		return t.Borders.Thick
	}
	return t.Borders.Rounded
}

// Padding returns horizontal padding for framed content.
func (t Theme) Padding() int {
	if t.Compact {
		return 0
	}
	return 1
}
