package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	statsInput     string
	statsFormat    string
	statsDelimiter string
)

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "input file (required)")
	statsCmd.Flags().StringVar(&statsFormat, "format", "edgelist", "input format: matrix or edgelist")
	statsCmd.Flags().StringVar(&statsDelimiter, "delimiter", ",", "field delimiter")
	_ = statsCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Describe a network without filtering it",
	Long: `Stats loads a network and prints its size, planar budget and degree
distribution. Useful for inspecting a filtration result written earlier
with build -o, or for sizing raw input before a run.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	format := orConfig(cmd, "format", statsFormat, cfg.Format)

	delim, err := parseDelimiter(orConfig(cmd, "delimiter", statsDelimiter, cfg.Delimiter))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	es, err := loadEdgeSet(statsInput, format, delim)
	if err != nil {
		exitWithError(exitCodeFor(err), "loading %s: %v", statsInput, err)
	}

	n, m := es.Order, es.Len()
	bound := 3*n - 6
	if bound < 0 {
		bound = 0
	}
	fmt.Printf("nodes:            %d\n", n)
	fmt.Printf("edges:            %d\n", m)
	fmt.Printf("max planar edges: %d\n", bound)
	if bound > 0 {
		fmt.Printf("utilization:      %.1f%%\n", 100*float64(m)/float64(bound))
	}

	if n > 0 {
		deg := make([]int, n)
		for _, e := range es.Edges {
			deg[e.U]++
			deg[e.V]++
		}
		sort.Ints(deg)
		fmt.Printf("average degree:   %.2f\n", 2*float64(m)/float64(n))
		fmt.Printf("degree min/median/max: %d/%d/%d\n", deg[0], deg[n/2], deg[n-1])
	}

	return nil
}
