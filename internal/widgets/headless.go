package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
)

// Headless widgets emit unstyled, screen-reader friendly text. Every line
// starts with the role so output can be grepped and diffed.

func title(s string) string {
	return cases.Title(language.English).String(s)
}

func states(props adapter.Props) string {
	var flags []string
	if props.Bool("disabled") {
		flags = append(flags, "disabled")
	}
	if props.Bool("focused") {
		flags = append(flags, "focused")
	}
	if len(flags) == 0 {
		return ""
	}
	return " (" + strings.Join(flags, ", ") + ")"
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// HeadlessButton renders `button "Label" [Variant]`.
type HeadlessButton struct{}

func (HeadlessButton) Render(ctx adapter.RenderContext, props adapter.Props) string {
	out := fmt.Sprintf("button %q", label(props))
	if v := props.String("variant"); v != "" {
		out += " [" + title(v) + "]"
	}
	return clip(out+states(props), ctx.Width)
}

// HeadlessInput renders the caption and value, or the placeholder in angle
// brackets when empty.
type HeadlessInput struct{}

func (HeadlessInput) Render(ctx adapter.RenderContext, props adapter.Props) string {
	value := props.String("value")
	if value == "" {
		if hint := props.String("placeholder"); hint != "" {
			value = "<" + hint + ">"
		}
	}
	caption := label(props)
	if caption == "" {
		caption = "input"
	}
	return clip(fmt.Sprintf("%s: %s%s", caption, value, states(props)), ctx.Width)
}

// HeadlessCard renders the title underlined to its display width.
type HeadlessCard struct{}

func (HeadlessCard) Render(ctx adapter.RenderContext, props adapter.Props) string {
	var lines []string
	if t := props.String("title"); t != "" {
		t = clip(t, ctx.Width)
		lines = append(lines, t, strings.Repeat("=", runewidth.StringWidth(t)))
	}
	if props.Children != "" {
		lines = append(lines, props.Children)
	}
	return strings.Join(lines, "\n")
}

// HeadlessModal renders a dialog as labelled lines.
type HeadlessModal struct{}

func (HeadlessModal) Render(_ adapter.RenderContext, props adapter.Props) string {
	actions := props.Strings("actions")
	if len(actions) == 0 {
		actions = []string{"OK"}
	}
	lines := []string{"dialog: " + props.String("title")}
	if props.Children != "" {
		lines = append(lines, props.Children)
	}
	lines = append(lines, "actions: "+strings.Join(actions, " | "))
	return strings.Join(lines, "\n")
}

// HeadlessSelect renders a radio list with the options padded to a common
// display width, which keeps CJK and emoji labels aligned.
type HeadlessSelect struct{}

func (HeadlessSelect) Render(_ adapter.RenderContext, props adapter.Props) string {
	options := props.Strings("options")
	selected := props.String("value")

	width := 0
	for _, option := range options {
		width = max(width, runewidth.StringWidth(option))
	}

	lines := make([]string, 0, len(options)+1)
	if caption := label(props); caption != "" {
		lines = append(lines, caption+":")
	}
	for i, option := range options {
		mark := "( )"
		if option == selected {
			mark = "(•)"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %d/%d", mark, runewidth.FillRight(option, width), i+1, len(options)))
	}
	return strings.Join(lines, "\n")
}

// HeadlessAlert renders `[Warning] title: message`.
type HeadlessAlert struct{}

func (HeadlessAlert) Render(_ adapter.RenderContext, props adapter.Props) string {
	variant := props.String("variant")
	if variant == "" {
		variant = "info"
	}
	out := "[" + title(variant) + "] "
	if t := props.String("title"); t != "" {
		out += t + ": "
	}
	return out + props.Children
}

// HeadlessProgress renders a hash bar followed by the percentage.
type HeadlessProgress struct{}

func (HeadlessProgress) Render(ctx adapter.RenderContext, props adapter.Props) string {
	ratio := clampRatio(props.Float("value"))
	bar := 20
	if ctx.Width > 0 && ctx.Width < 30 {
		bar = max(ctx.Width-10, 5)
	}
	filled := int(math.Round(ratio * float64(bar)))

	prefix := ""
	if caption := label(props); caption != "" {
		prefix = caption + " "
	}
	return fmt.Sprintf("%s[%s%s] %3.0f%%", prefix,
		strings.Repeat("#", filled), strings.Repeat("-", bar-filled), ratio*100)
}

func clampRatio(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
