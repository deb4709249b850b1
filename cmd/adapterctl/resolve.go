package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/library"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
)

type resolveOptions struct {
	library library.ID
	width   int
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Show which implementation a component resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.ErrOrStderr(), rootFlags, widgets.Options{})
			if err != nil {
				return err
			}
			return runResolve(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().Var(&opts.library, "library", "Library to request (primary, headless, custom)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width used by width-sensitive adapters (default: terminal width)")

	return cmd
}

func runResolve(cmd *cobra.Command, app *appContext, name string, opts *resolveOptions) error {
	app.preload(cmd.Context())

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	res := resolveFor(app.component(name), app.renderContext(width), adapter.Props{Adapter: opts.library})

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
	fmt.Fprintf(writer, "component:\t%s\n", name)
	fmt.Fprintf(writer, "requested:\t%s\n", valueOrFallback(res.Requested.String(), "default"))
	fmt.Fprintf(writer, "outcome:\t%s\n", res.Outcome)
	fmt.Fprintf(writer, "source:\t%s\n", res.Source)
	fmt.Fprintf(writer, "library:\t%s\n", valueOrFallback(res.Library.String(), "-"))
	if res.Reason != "" {
		fmt.Fprintf(writer, "reason:\t%s\n", res.Reason)
	}
	return writer.Flush()
}
