package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eduardo-zampirolli/planfilt/proximity"
)

var (
	convertInput     string
	convertOutput    string
	convertFormat    string
	convertTo        string
	convertDelimiter string
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (required)")
	convertCmd.Flags().StringVar(&convertFormat, "format", "matrix", "input format: matrix or edgelist")
	convertCmd.Flags().StringVar(&convertTo, "to", "edgelist", "output format: matrix or edgelist")
	convertCmd.Flags().StringVar(&convertDelimiter, "delimiter", ",", "field delimiter")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between matrix and edge-list representations",
	Long: `Convert reads a network in one representation and writes the other.

Matrix to edge list keeps only finite upper-triangle entries; edge list
to matrix produces a dense symmetric matrix with zeros for absent pairs.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	format := orConfig(cmd, "format", convertFormat, cfg.Format)

	delim, err := parseDelimiter(orConfig(cmd, "delimiter", convertDelimiter, cfg.Delimiter))
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	es, err := loadEdgeSet(convertInput, format, delim)
	if err != nil {
		exitWithError(exitCodeFor(err), "loading %s: %v", convertInput, err)
	}

	out, err := os.Create(convertOutput)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	switch convertTo {
	case "edgelist":
		err = proximity.WriteEdgeListCSV(out, es.Edges, proximity.WithDelimiter(delim))
	case "matrix":
		m := proximity.MatrixFromEdges(es.Order, es.Edges)
		err = proximity.WriteMatrixCSV(out, m, proximity.WithDelimiter(delim))
	default:
		exitWithError(ExitError, "unknown output format %q (want matrix or edgelist)", convertTo)
	}
	if err != nil {
		out.Close()
		exitWithError(ExitError, "writing %s: %v", convertOutput, err)
	}
	if err := out.Close(); err != nil {
		exitWithError(ExitError, "writing %s: %v", convertOutput, err)
	}
	fmt.Printf("wrote %s (%s, %d nodes, %d edges)\n", convertOutput, convertTo, es.Order, es.Len())

	return nil
}
