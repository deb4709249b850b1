package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
)

// The custom library only covers the widgets the console draws itself:
// buttons, inputs and progress bars. Everything else falls back through
// the registry.

// CustomButton renders a bracketed, upper-case label. The "alarm" variant
// adds a warning marker.
type CustomButton struct{}

func (CustomButton) Render(ctx adapter.RenderContext, props adapter.Props) string {
	text := strings.ToUpper(label(props))
	switch props.String("variant") {
	case "alarm":
		text = "!! " + text + " !!"
	case "muted":
		text = strings.ToLower(text)
	}

	out := "[ " + text + " ]"
	if props.Bool("disabled") {
		out = "[-" + strings.Repeat("-", lipgloss.Width(text)) + "-]"
	} else if props.Bool("focused") {
		out = ">" + out + "<"
	}

	style := lipgloss.NewStyle().Bold(true)
	if props.String("variant") == "alarm" {
		style = style.Foreground(ctx.Theme.Colour(ctx.Theme.Palette.Danger.Base))
	}
	return props.ApplyStyle(style.Render(out))
}

// CustomInput draws a bubbles text input frozen at its current value.
type CustomInput struct{}

func (CustomInput) Render(ctx adapter.RenderContext, props adapter.Props) string {
	ti := textinput.New()
	ti.Prompt = "> "
	if caption := label(props); caption != "" {
		ti.Prompt = caption + " > "
	}
	ti.Placeholder = props.String("placeholder")
	ti.SetValue(props.String("value"))
	if ctx.Width > 0 {
		ti.Width = max(ctx.Width-lipgloss.Width(ti.Prompt)-1, 1)
	}
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ctx.Theme.Colour(ctx.Theme.Palette.Primary.Base))
	if props.Bool("focused") && !props.Bool("disabled") {
		ti.Focus()
	}
	return props.ApplyStyle(ti.View())
}

// CustomProgress draws a bubbles progress bar; "value" is a ratio in [0,1].
type CustomProgress struct{}

func (CustomProgress) Render(ctx adapter.RenderContext, props adapter.Props) string {
	opts := []progress.Option{progress.WithDefaultGradient()}
	if ctx.Theme.HighContrast || ctx.Accessibility.HighContrast {
		opts = []progress.Option{progress.WithSolidFill(ctx.Theme.Palette.Primary.Base.Dark)}
	}
	width := 40
	if ctx.Width > 0 {
		width = min(width, ctx.Width)
	}
	opts = append(opts, progress.WithWidth(width))

	bar := progress.New(opts...).ViewAs(clampRatio(props.Float("value")))
	if caption := label(props); caption != "" {
		return props.ApplyStyle(caption + "\n" + bar)
	}
	return props.ApplyStyle(bar)
}
