// SPDX-License-Identifier: MIT
package tmfg

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Eduardo-zampirolli/planfilt/pmfg"
	"github.com/Eduardo-zampirolli/planfilt/proximity"
	"github.com/Eduardo-zampirolli/planfilt/unionfind"
)

// face is a triangle of the growing triangulation, corners in placement
// order.
type face [3]int

// Build constructs the triangulated filtration of a dense symmetric
// proximity matrix and reports it in the same Result shape the greedy
// builder uses, so callers can print or export either interchangeably.
//
// Returns proximity.ErrNonSquareMatrix when the matrix is not n x n.
// Complexity: O(n^3) worst case.
func Build(m [][]float64) (*pmfg.Result, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(row), n, proximity.ErrNonSquareMatrix)
		}
	}
	start := time.Now()

	res := &pmfg.Result{Order: n, Stop: pmfg.StopExhausted}
	if n >= 3 {
		res.Bound = 3*n - 6
	} else {
		res.Bound = n * (n - 1) / 2
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !isFinite(m[i][j]) {
				res.DroppedNonFinite++
			}
		}
	}

	// weight treats non-finite entries as zero contribution.
	weight := func(i, j int) float64 {
		w := m[i][j]
		if !isFinite(w) {
			return 0
		}

		return w
	}
	dsu := unionfind.New(n)
	commit := func(u, v int) {
		if v < u {
			u, v = v, u
		}
		res.Edges = append(res.Edges, proximity.Edge{U: u, V: v, Weight: weight(u, v)})
		res.Committed++
		res.Processed++
		dsu.Union(u, v)
	}

	if n < 4 {
		// Degenerate triangulation: the complete graph is planar as is.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				commit(i, j)
			}
		}
		res.Components = dsu.Count()
		res.Elapsed = time.Since(start)
		if res.Bound > 0 && res.Committed == res.Bound {
			res.Stop = pmfg.StopBoundReached
		}

		return res, nil
	}

	// Seed tetrahedron: the four nodes with the highest total proximity,
	// ties broken by ascending index.
	seed := topFour(m, n)
	placed := make([]bool, n)
	for _, v := range seed {
		placed[v] = true
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			commit(seed[i], seed[j])
		}
	}
	faces := []face{
		{seed[0], seed[1], seed[2]},
		{seed[0], seed[1], seed[3]},
		{seed[0], seed[2], seed[3]},
		{seed[1], seed[2], seed[3]},
	}

	// Each round inserts the (node, face) pair with the maximum gain; the
	// chosen face splits into three. Ties resolve to the earliest scanned
	// pair, so the construction is deterministic.
	for remaining := n - 4; remaining > 0; remaining-- {
		bestGain := math.Inf(-1)
		bestV, bestF := -1, -1
		for v := 0; v < n; v++ {
			if placed[v] {
				continue
			}
			for fi, f := range faces {
				g := weight(v, f[0]) + weight(v, f[1]) + weight(v, f[2])
				if g > bestGain {
					bestGain, bestV, bestF = g, v, fi
				}
			}
		}

		f := faces[bestF]
		placed[bestV] = true
		commit(bestV, f[0])
		commit(bestV, f[1])
		commit(bestV, f[2])
		faces[bestF] = face{f[0], f[1], bestV}
		faces = append(faces, face{f[0], f[2], bestV}, face{f[1], f[2], bestV})
	}

	res.Components = dsu.Count()
	res.Elapsed = time.Since(start)
	if res.Committed == res.Bound {
		res.Stop = pmfg.StopBoundReached
	}

	return res, nil
}

// topFour returns the indices of the four nodes with the highest row sums,
// non-finite entries contributing nothing, ties by ascending index.
func topFour(m [][]float64, n int) [4]int {
	sums := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && isFinite(m[i][j]) {
				sums[i] += m[i][j]
			}
		}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return sums[idx[a]] > sums[idx[b]] })

	var top [4]int
	copy(top[:], idx[:4])
	sort.Ints(top[:])

	return top
}

func isFinite(w float64) bool { return !math.IsNaN(w) && !math.IsInf(w, 0) }
