// Package widgets holds the console's leaf implementations for each UI
// library and the Install call that registers them as adapters.
//
// Widgets read their inputs from adapter.Props:
//
//	Children            label or body text
//	"variant"           primary, secondary, success, warning, danger, info, muted
//	"size"              sm, md, lg
//	"disabled"          bool
//	"focused"           bool
//	"title"             card, modal and alert heading
//	"value"             input text, selected option or progress ratio
//	"placeholder"       input hint
//	"options"           select choices
//	"actions"           modal buttons
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/theme"
)

func colours(p theme.Palette, variant string) theme.ColourSet {
	switch variant {
	case "secondary":
		return p.Secondary
	case "success":
		return p.Success
	case "warning":
		return p.Warning
	case "danger", "error":
		return p.Danger
	case "info":
		return p.Info
	case "muted", "ghost":
		return p.Neutral
	default:
		return p.Primary
	}
}

func label(props adapter.Props) string {
	if props.Children != "" {
		return props.Children
	}
	return props.String("label")
}

func horizontalPadding(size string, compact bool) int {
	pad := 2
	switch size {
	case "sm":
		pad = 1
	case "lg":
		pad = 3
	}
	if compact && pad > 1 {
		pad--
	}
	return pad
}

// frameWidth clamps a framed widget to the available columns.
func frameWidth(ctx adapter.RenderContext, preferred int) int {
	if ctx.Width <= 0 {
		return preferred
	}
	if avail := ctx.Width - 4; avail < preferred {
		if avail < 10 {
			return 10
		}
		return avail
	}
	return preferred
}

// PrimaryButton is a filled lipgloss button.
type PrimaryButton struct{}

func (PrimaryButton) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	set := colours(t.Palette, props.String("variant"))

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Colour(set.OnBase)).
		Background(t.Colour(set.Base)).
		Padding(0, horizontalPadding(props.String("size"), t.Compact))

	switch {
	case props.Bool("disabled"):
		style = style.Faint(true).Background(t.Colour(t.Palette.Neutral.Muted))
	case props.Bool("focused") && ctx.Accessibility.FocusOutline:
		style = style.Border(t.Border()).BorderForeground(t.Colour(set.Muted))
	}

	return props.ApplyStyle(style.Render(label(props)))
}

// PrimaryInput is a bordered single-line field with a caption.
type PrimaryInput struct{}

func (PrimaryInput) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	width := frameWidth(ctx, 32)

	value := props.String("value")
	text := lipgloss.NewStyle().Foreground(t.Colour(t.Palette.Surface.OnBase))
	if value == "" {
		value = props.String("placeholder")
		text = text.Foreground(t.Colour(t.Palette.Neutral.Base)).Italic(true)
	}

	borderColour := t.Palette.Neutral.Base
	if props.Bool("focused") {
		borderColour = t.Palette.Primary.Base
	}
	field := lipgloss.NewStyle().
		Border(t.Border()).
		BorderForeground(t.Colour(borderColour)).
		Width(width).
		Padding(0, 1).
		Render(text.Render(value))

	if caption := label(props); caption != "" {
		head := lipgloss.NewStyle().Bold(true).Render(caption)
		field = lipgloss.JoinVertical(lipgloss.Left, head, field)
	}
	return props.ApplyStyle(field)
}

// PrimaryCard frames a title and body.
type PrimaryCard struct{}

func (PrimaryCard) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	var parts []string
	if title := props.String("title"); title != "" {
		parts = append(parts, lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Colour(t.Palette.Primary.Base)).
			Render(title))
	}
	if props.Children != "" {
		parts = append(parts, props.Children)
	}

	card := lipgloss.NewStyle().
		Border(t.Border()).
		BorderForeground(t.Colour(t.Palette.Neutral.Muted)).
		Padding(0, t.Padding()).
		Width(frameWidth(ctx, 40)).
		Render(strings.Join(parts, "\n"))
	return props.ApplyStyle(card)
}

// PrimaryModal is a centred dialog with an action row.
type PrimaryModal struct{}

func (PrimaryModal) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	width := frameWidth(ctx, 48)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Colour(t.Palette.Primary.OnBase)).
		Background(t.Colour(t.Palette.Primary.Base)).
		Padding(0, 1).
		Render(props.String("title"))

	actions := props.Strings("actions")
	if len(actions) == 0 {
		actions = []string{"OK"}
	}
	buttons := make([]string, 0, 2*len(actions))
	for i, action := range actions {
		variant := "muted"
		if i == 0 {
			variant = "primary"
		} else {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, PrimaryButton{}.Render(ctx, adapter.P("variant", variant, "size", "sm").WithChildren(action)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.NewStyle().Width(width-4).Render(props.Children),
		"",
		lipgloss.PlaceHorizontal(width-4, lipgloss.Right, row),
	)

	dialog := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Colour(t.Palette.Primary.Muted)).
		Padding(0, 1).
		Width(width).
		Render(body)

	if ctx.Width > 0 {
		dialog = lipgloss.PlaceHorizontal(ctx.Width, lipgloss.Center, dialog)
	}
	return props.ApplyStyle(dialog)
}

// PrimarySelect lists options with a marker on the selected one.
type PrimarySelect struct{}

func (PrimarySelect) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	selected := props.String("value")

	marker := lipgloss.NewStyle().Foreground(t.Colour(t.Palette.Primary.Base)).Bold(true)
	plain := lipgloss.NewStyle().Foreground(t.Colour(t.Palette.Surface.OnBase))

	lines := make([]string, 0, len(props.Strings("options"))+1)
	if caption := label(props); caption != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(caption))
	}
	for _, option := range props.Strings("options") {
		if option == selected {
			lines = append(lines, marker.Render("› "+option))
			continue
		}
		lines = append(lines, plain.Render("  "+option))
	}

	return props.ApplyStyle(lipgloss.NewStyle().
		Border(t.Border()).
		BorderForeground(t.Colour(t.Palette.Neutral.Muted)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n")))
}

// PrimaryAlert is a message with a coloured left rule.
type PrimaryAlert struct{}

func (PrimaryAlert) Render(ctx adapter.RenderContext, props adapter.Props) string {
	t := ctx.Theme
	variant := props.String("variant")
	if variant == "" {
		variant = "info"
	}
	set := colours(t.Palette, variant)

	var parts []string
	if title := props.String("title"); title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Foreground(t.Colour(set.Base)).Render(title))
	}
	parts = append(parts, props.Children)

	border := lipgloss.Border{Left: "┃"}
	if t.HighContrast {
		border = lipgloss.Border{Left: "█"}
	}
	return props.ApplyStyle(lipgloss.NewStyle().
		Border(border, false, false, false, true).
		BorderForeground(t.Colour(set.Base)).
		PaddingLeft(1).
		Width(frameWidth(ctx, 60)).
		Render(strings.Join(parts, "\n")))
}
