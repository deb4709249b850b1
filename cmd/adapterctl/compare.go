package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
	"github.com/alexisbeaulieu97/adapterkit/pkg/diff"
)

type compareOptions struct {
	props    []string
	children string
	width    int
}

func newCompareCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:     "compare <name> <library> <library>",
		Short:   "Diff a component's output between two libraries",
		Example: `  adapterctl compare Button primary custom --children "Cycle start"`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := library.Parse(args[1])
			if err != nil {
				return newCommandError("compare", "parsing library", err, "Use primary, headless or custom.")
			}
			after, err := library.Parse(args[2])
			if err != nil {
				return newCommandError("compare", "parsing library", err, "Use primary, headless or custom.")
			}

			app, err := newAppContext(cmd.ErrOrStderr(), rootFlags, widgets.Options{})
			if err != nil {
				return err
			}
			return runCompare(cmd, app, args[0], before, after, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.props, "prop", "p", nil, "Component prop as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.children, "children", "", "Label or body text")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (default: terminal width)")

	return cmd
}

func runCompare(cmd *cobra.Command, app *appContext, name string, before, after library.ID, opts *compareOptions) error {
	props, err := parseProps(opts.props)
	if err != nil {
		return newCommandError("compare", "parsing props", err, "Pass props as --prop key=value.")
	}
	props.Children = opts.children

	app.preload(cmd.Context())

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}
	ctx := app.renderContext(width)
	comp := app.component(name)

	out, stats := diff.Lines(
		comp.Render(ctx, props.WithAdapter(before)),
		comp.Render(ctx, props.WithAdapter(after)),
		name+"@"+before.String(),
		name+"@"+after.String(),
	)
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s renders identically with %s and %s\n", name, before, after)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d removed\n", stats.Added, stats.Removed)
	return nil
}
