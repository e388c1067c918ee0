package proximity

import (
	"fmt"
	"math"
	"sort"
)

// AutoSize asks FromEdges to infer the node count as maxIndex+1.
const AutoSize = -1

// Edge is an undirected candidate edge with a finite weight.
// Endpoints are kept normalized: U < V.
type Edge struct {
	U, V   int
	Weight float64
}

// EdgeSet is the ordered candidate sequence consumed by the greedy loop:
// edges sorted by descending Weight, ties broken by ascending (U, V).
//
// The counters record recoverable conditions observed while building the
// set; they are informational and never gate the filtration.
type EdgeSet struct {
	// Order is the number of nodes n; all edge endpoints lie in [0, n).
	Order int

	// Edges is the sorted candidate sequence, at most C(n,2) entries.
	Edges []Edge

	// Dropped counts non-finite weights (NaN, +/-Inf) excluded at load time.
	Dropped int

	// Loops counts self-referential entries dropped from edge-list input.
	Loops int

	// Duplicates counts repeated normalized pairs; the first occurrence wins.
	Duplicates int

	// Malformed counts unparseable edge-list lines skipped by the loaders.
	Malformed int
}

// FromMatrix builds the candidate set from a dense symmetric n x n
// proximity matrix. Only the upper triangle (i < j) is read; the diagonal is
// ignored. Non-finite entries are dropped and counted in Dropped.
//
// Returns ErrNonSquareMatrix when any row's length differs from the number
// of rows. No shared state is read or mutated.
// Complexity: O(n^2 + m log m) where m is the number of finite entries.
func FromMatrix(m [][]float64) (*EdgeSet, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquareMatrix)
		}
	}

	es := &EdgeSet{Order: n}
	if n > 1 {
		es.Edges = make([]Edge, 0, n*(n-1)/2)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := m[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				es.Dropped++

				continue
			}
			es.Edges = append(es.Edges, Edge{U: i, V: j, Weight: w})
		}
	}
	es.sort()

	return es, nil
}

// FromEdges builds the candidate set from an explicit edge list. Endpoints
// are normalized to U < V; self-loops, duplicates and non-finite weights
// are dropped and counted. n fixes the node count; pass AutoSize to infer
// it as maxIndex+1.
//
// An endpoint outside [0, n) (or any negative endpoint) aborts with
// ErrIndexRange before any candidate is produced: malformed references are
// data corruption, not noise.
// Complexity: O(m log m).
func FromEdges(edges []Edge, n int) (*EdgeSet, error) {
	if n < 0 && n != AutoSize {
		return nil, fmt.Errorf("node count %d: %w", n, ErrIndexRange)
	}

	// Validate all references first; fail fast with no partial result.
	maxIdx := -1
	for _, e := range edges {
		if e.U < 0 || e.V < 0 {
			return nil, fmt.Errorf("edge (%d,%d): %w", e.U, e.V, ErrIndexRange)
		}
		if n != AutoSize && (e.U >= n || e.V >= n) {
			return nil, fmt.Errorf("edge (%d,%d) with n=%d: %w", e.U, e.V, n, ErrIndexRange)
		}
		if e.U > maxIdx {
			maxIdx = e.U
		}
		if e.V > maxIdx {
			maxIdx = e.V
		}
	}

	es := &EdgeSet{Order: n}
	if n == AutoSize {
		es.Order = maxIdx + 1
	}

	seen := make(map[[2]int]struct{}, len(edges))
	es.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			es.Loops++

			continue
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			es.Dropped++

			continue
		}
		u, v := e.U, e.V
		if v < u {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			es.Duplicates++

			continue
		}
		seen[key] = struct{}{}
		es.Edges = append(es.Edges, Edge{U: u, V: v, Weight: e.Weight})
	}
	es.sort()

	return es, nil
}

// sort orders candidates by descending weight, then ascending (U, V).
// The comparator is a total order, so the result is unique regardless of
// input order - the determinism guarantee downstream code relies on.
func (es *EdgeSet) sort() {
	sort.Slice(es.Edges, func(i, j int) bool {
		a, b := es.Edges[i], es.Edges[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})
}

// Len returns the number of candidate edges.
func (es *EdgeSet) Len() int { return len(es.Edges) }

// MatrixFromEdges converts an edge list back into a dense symmetric matrix
// with a zero diagonal; absent pairs stay zero. The inverse of FromMatrix
// up to dropped entries, used by the format converters.
// Complexity: O(n^2).
func MatrixFromEdges(n int, edges []Edge) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for _, e := range edges {
		if e.U >= 0 && e.U < n && e.V >= 0 && e.V < n {
			m[e.U][e.V] = e.Weight
			m[e.V][e.U] = e.Weight
		}
	}

	return m
}
