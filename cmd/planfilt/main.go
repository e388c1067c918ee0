// Package main provides the planfilt CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planfilt",
	Short: "Planar filtration of weighted proximity networks",
	Long: `planfilt reduces a dense weighted network to its planar backbone.

Given a proximity matrix or an edge list it runs the greedy planar
filtration (PMFG) or the triangulated variant (TMFG), prints a summary
of the filtered graph and optionally writes the result as an edge list.

Defaults for delimiter, input format and algorithm may be placed in a
.planfilt.yaml file in the working directory; explicit flags win.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
