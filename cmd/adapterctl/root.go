package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "adapterctl",
		Short:         "Inspect and render the console's UI adapters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to an adapter configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug diagnostics")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
