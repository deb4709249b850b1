package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/adapterkit/internal/library"
)

// Set through -ldflags by the magefile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	version string
	commit  string
	date    string
}

// currentBuild returns the ldflags values, filling gaps from the module
// build info when the binary was built with plain `go install`.
func currentBuild(read func() (*debug.BuildInfo, bool)) buildInfo {
	info := buildInfo{version: version, commit: commit, date: date}
	bi, ok := read()
	if !ok {
		return info
	}
	if info.version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.commit == "none" && s.Value != "":
			info.commit = s.Value[:min(len(s.Value), 7)]
		case s.Key == "vcs.time" && info.date == "unknown":
			info.date = s.Value
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information and supported libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuild(debug.ReadBuildInfo)

			libs := make([]string, 0, len(library.All()))
			for _, id := range library.All() {
				libs = append(libs, id.String())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "adapterctl %s\n", info.version)
			fmt.Fprintf(out, "commit: %s\n", info.commit)
			fmt.Fprintf(out, "built: %s\n", info.date)
			fmt.Fprintf(out, "libraries: %s\n", strings.Join(libs, ", "))
			return nil
		},
	}
}
