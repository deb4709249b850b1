package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/adapter"
	"github.com/alexisbeaulieu97/adapterkit/internal/widgets"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered adapters and their libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.ErrOrStderr(), rootFlags, widgets.Options{})
			if err != nil {
				return err
			}
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type adapterSummary struct {
	Name      string   `json:"name"`
	Libraries []string `json:"libraries"`
	Resolved  string   `json:"resolved"`
	Source    string   `json:"source"`
	Override  string   `json:"override,omitempty"`
}

type listJSONPayload struct {
	Version        string           `json:"version"`
	DefaultAdapter string           `json:"default_adapter"`
	Count          int              `json:"count"`
	Adapters       []adapterSummary `json:"adapters"`
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions) error {
	app.preload(cmd.Context())

	ctx := app.renderContext(terminalWidth(cmd.OutOrStdout()))
	names := app.registry.RegisteredAdapters()
	summaries := make([]adapterSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, summarize(app, ctx, name))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(listJSONPayload{
			Version:        "1.0",
			DefaultAdapter: app.registry.DefaultAdapter().String(),
			Count:          len(summaries),
			Adapters:       summaries,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tLIBRARIES\tRESOLVES TO\tSOURCE\tOVERRIDE")
	for _, s := range summaries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			s.Name,
			strings.Join(s.Libraries, ","),
			valueOrFallback(s.Resolved, "-"),
			s.Source,
			valueOrFallback(s.Override, "-"),
		)
	}
	return writer.Flush()
}

func summarize(app *appContext, ctx adapter.RenderContext, name string) adapterSummary {
	summary := adapterSummary{Name: name}
	for _, id := range app.registry.AvailableLibraries(name) {
		summary.Libraries = append(summary.Libraries, id.String())
	}
	if o, ok := app.hooks.Override(name); ok {
		summary.Override = o.Adapter.String()
	}

	res := resolveFor(app.component(name), ctx, adapter.Props{})
	summary.Resolved = res.Library.String()
	summary.Source = res.Source.String()
	if !res.OK() {
		summary.Source = res.Outcome.String()
	}
	return summary
}

func resolveFor(comp adapter.Component, ctx adapter.RenderContext, props adapter.Props) adapter.Resolution {
	if r, ok := comp.(adapter.Resolver); ok {
		return r.Resolve(ctx, props)
	}
	return adapter.Resolution{Outcome: adapter.Resolved, Source: adapter.SourceExact, Component: comp}
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
