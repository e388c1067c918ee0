package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Eduardo-zampirolli/planfilt/pmfg"
	"github.com/Eduardo-zampirolli/planfilt/proximity"
)

// exitWithError prints to stderr and exits with the given code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// exitCodeFor maps a load failure to its exit code: malformed input data is
// ExitDataError, everything else (missing file, bad flag value) ExitError.
func exitCodeFor(err error) int {
	if errors.Is(err, proximity.ErrMalformedInput) {
		return ExitDataError
	}

	return ExitError
}

// loadEdgeSet reads the input file in the requested format.
func loadEdgeSet(path, format string, delim rune) (*proximity.EdgeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "matrix":
		return proximity.LoadMatrixCSV(f, proximity.WithDelimiter(delim))
	case "edgelist":
		return proximity.LoadEdgeListCSV(f, proximity.WithDelimiter(delim))
	default:
		return nil, fmt.Errorf("unknown format %q (want matrix or edgelist)", format)
	}
}

// writeEdgeList writes the committed edges to path as CSV.
func writeEdgeList(path string, edges []proximity.Edge, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := proximity.WriteEdgeListCSV(f, edges, proximity.WithDelimiter(delim)); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// printSummary writes the human-readable result summary to stdout.
func printSummary(res *pmfg.Result, es *proximity.EdgeSet) {
	s := res.Stats()
	fmt.Printf("nodes:            %d\n", s.Order)
	fmt.Printf("edges:            %d\n", s.Edges)
	fmt.Printf("max planar edges: %d\n", s.Bound)
	fmt.Printf("utilization:      %.1f%%\n", s.Utilization)
	fmt.Printf("average degree:   %.2f\n", s.AvgDegree)
	fmt.Printf("components:       %d\n", s.Components)
	fmt.Printf("rejected:         %d\n", res.Rejected)
	fmt.Printf("stop:             %s\n", res.Stop)
	fmt.Printf("elapsed:          %s\n", res.Elapsed)

	if res.DroppedNonFinite > 0 {
		fmt.Printf("dropped non-finite weights: %d\n", res.DroppedNonFinite)
	}
	if es != nil {
		if es.Loops > 0 {
			fmt.Printf("dropped self-loops:         %d\n", es.Loops)
		}
		if es.Duplicates > 0 {
			fmt.Printf("dropped duplicate pairs:    %d\n", es.Duplicates)
		}
		if es.Malformed > 0 {
			fmt.Printf("skipped malformed lines:    %d\n", es.Malformed)
		}
	}
}
