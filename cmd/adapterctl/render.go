package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
)

type renderOptions struct {
	library  library.ID
	props    []string
	children string
	width    int
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <name>",
		Short: "Render a component once and print the result",
		Example: `  adapterctl render Button --children "Cycle start" --prop variant=success
  adapterctl render Select --library headless --prop options=mm,inch --prop value=mm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.ErrOrStderr(), rootFlags, widgets.Options{})
			if err != nil {
				return err
			}
			return runRender(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().Var(&opts.library, "library", "Library to render with (primary, headless, custom)")
	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Component prop as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.children, "children", "", "Label or body text")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (default: terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, app *appContext, name string, opts *renderOptions) error {
	props, err := parseProps(opts.props)
	if err != nil {
		return newCommandError("render", "parsing props", err, "Pass props as --prop key=value.")
	}
	props.Children = opts.children
	props.Adapter = opts.library

	app.preload(cmd.Context())

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	out := app.component(name).Render(app.renderContext(width), props)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// parseProps turns key=value pairs into Props. Booleans and numbers are
// typed; values containing commas become string lists.
func parseProps(pairs []string) (adapter.Props, error) {
	props := adapter.Props{Values: make(map[string]any, len(pairs))}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return adapter.Props{}, fmt.Errorf("invalid prop %q: expected key=value", pair)
		}
		props.Values[key] = parsePropValue(value)
	}
	return props, nil
}

func parsePropValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return value
}
