// SPDX-License-Identifier: MIT
package pmfg

import (
	"time"

	"github.com/Eduardo-zampirolli/planfilt/proximity"
)

// StopReason records why the greedy pass ended.
type StopReason int

const (
	// StopExhausted means every candidate edge was visited.
	StopExhausted StopReason = iota

	// StopBoundReached means the pass ended early because the committed
	// edge count hit the planar maximum 3n-6.
	StopBoundReached
)

// String implements fmt.Stringer.
func (s StopReason) String() string {
	switch s {
	case StopExhausted:
		return "exhausted"
	case StopBoundReached:
		return "bound-reached"
	default:
		return "unknown"
	}
}

// Result is the outcome of one filtration pass.
type Result struct {
	// Edges holds the committed edges in commit order, each with the
	// weight it carried in the candidate set.
	Edges []proximity.Edge

	// Order is the node count n of the filtered graph.
	Order int

	// Bound is the planar edge maximum max(0, 3n-6).
	Bound int

	// Committed and Rejected partition the visited candidates; Processed
	// is their total plus any duplicates skipped defensively.
	Committed int
	Rejected  int
	Processed int

	// DroppedNonFinite carries over the count of non-finite weights the
	// candidate set excluded before the pass started.
	DroppedNonFinite int

	// Components is the number of connected components of the result.
	Components int

	// Stop records how the pass ended.
	Stop StopReason

	// Elapsed is the wall-clock duration of the pass.
	Elapsed time.Duration
}

// Stats is the summary a caller prints: how full the planar budget is and
// how dense the filtered graph came out.
type Stats struct {
	Order       int
	Edges       int
	Bound       int
	Utilization float64 // percent of the 3n-6 budget used
	AvgDegree   float64 // 2E/n
	Components  int
}

// Stats derives the summary figures from the result. Degenerate orders
// (n < 3) report zero utilization since the budget itself is zero.
func (r *Result) Stats() Stats {
	s := Stats{
		Order:      r.Order,
		Edges:      r.Committed,
		Bound:      r.Bound,
		Components: r.Components,
	}
	if r.Bound > 0 {
		s.Utilization = 100 * float64(r.Committed) / float64(r.Bound)
	}
	if r.Order > 0 {
		s.AvgDegree = 2 * float64(r.Committed) / float64(r.Order)
	}

	return s
}
