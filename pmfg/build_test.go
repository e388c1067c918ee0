package pmfg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduardo-zampirolli/planfilt/planarity"
	"github.com/Eduardo-zampirolli/planfilt/pmfg"
	"github.com/Eduardo-zampirolli/planfilt/proximity"
)

// completeMatrix returns a symmetric n x n matrix with distinct positive
// weights, higher for lower-indexed pairs, zero diagonal.
func completeMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	w := float64(n * n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m[i][j] = w
			m[j][i] = w
			w--
		}
	}

	return m
}

func buildMatrix(t *testing.T, m [][]float64, opts ...pmfg.Option) *pmfg.Result {
	t.Helper()
	es, err := proximity.FromMatrix(m)
	require.NoError(t, err)
	res, err := pmfg.Build(es, opts...)
	require.NoError(t, err)

	return res
}

// TestBuild_CompleteK4 filters the complete graph on 4 nodes: the bound
// 3*4-6 equals C(4,2), so every candidate commits.
func TestBuild_CompleteK4(t *testing.T) {
	m := [][]float64{
		{0, 0.9, 0.8, 0.7},
		{0.9, 0, 0.6, 0.5},
		{0.8, 0.6, 0, 0.4},
		{0.7, 0.5, 0.4, 0},
	}
	res := buildMatrix(t, m)

	assert.Equal(t, 6, res.Bound)
	assert.Equal(t, 6, res.Committed)
	assert.Zero(t, res.Rejected)
	assert.Equal(t, 6, res.Processed)
	assert.Equal(t, pmfg.StopBoundReached, res.Stop)
	assert.Equal(t, 1, res.Components)

	// Commit order follows descending weight.
	assert.Equal(t, proximity.Edge{U: 0, V: 1, Weight: 0.9}, res.Edges[0])
	assert.Equal(t, proximity.Edge{U: 2, V: 3, Weight: 0.4}, res.Edges[5])
}

// TestBuild_CompleteK5 filters the complete graph on 5 nodes: K5 is not
// planar, so exactly the lowest-weight candidate is rejected and the result
// fills the bound 3*5-6 = 9.
func TestBuild_CompleteK5(t *testing.T) {
	res := buildMatrix(t, completeMatrix(5), pmfg.WithVerifyFinal())

	assert.Equal(t, 9, res.Bound)
	assert.Equal(t, 9, res.Committed)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 10, res.Processed)
	assert.Equal(t, pmfg.StopBoundReached, res.Stop)

	// The rejected candidate is the last one attempted: pair (3,4).
	for _, e := range res.Edges {
		assert.False(t, e.U == 3 && e.V == 4)
	}
}

// TestBuild_NaNEntry verifies that a NaN proximity at (2,3) surfaces as a
// dropped-nonfinite count, never as a planarity rejection.
func TestBuild_NaNEntry(t *testing.T) {
	m := completeMatrix(4)
	m[2][3] = math.NaN()
	m[3][2] = math.NaN()
	res := buildMatrix(t, m)

	assert.Equal(t, 1, res.DroppedNonFinite)
	assert.Equal(t, 5, res.Committed)
	assert.Zero(t, res.Rejected)
	assert.Equal(t, pmfg.StopExhausted, res.Stop)
	for _, e := range res.Edges {
		assert.False(t, e.U == 2 && e.V == 3)
	}
}

// TestBuild_Degenerate covers n = 0 and n = 1: zero committed edges, bound
// clamped to zero, no error.
func TestBuild_Degenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		res := buildMatrix(t, completeMatrix(n))
		assert.Zero(t, res.Bound)
		assert.Zero(t, res.Committed)
		assert.Equal(t, pmfg.StopExhausted, res.Stop)
		assert.Equal(t, n, res.Components)
	}
}

// TestBuild_TwoNodes: a single candidate exists but the clamped bound is
// zero, so nothing commits.
func TestBuild_TwoNodes(t *testing.T) {
	res := buildMatrix(t, completeMatrix(2))

	assert.Zero(t, res.Bound)
	assert.Zero(t, res.Committed)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, pmfg.StopBoundReached, res.Stop)
}

// TestBuild_PlanarityInvariant cross-checks larger filtrations against the
// static test.
func TestBuild_PlanarityInvariant(t *testing.T) {
	for _, n := range []int{6, 8, 12, 20} {
		res := buildMatrix(t, completeMatrix(n))
		assert.Equal(t, res.Bound, res.Committed, "complete input fills the budget, n=%d", n)

		pairs := make([][2]int, len(res.Edges))
		for i, e := range res.Edges {
			pairs[i] = [2]int{e.U, e.V}
		}
		assert.True(t, planarity.IsPlanar(n, pairs), "n=%d", n)
	}
}

// TestBuild_Determinism runs the same input twice and compares results
// field by field.
func TestBuild_Determinism(t *testing.T) {
	m := completeMatrix(10)
	a := buildMatrix(t, m)
	b := buildMatrix(t, m)

	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Rejected, b.Rejected)
	assert.Equal(t, a.Stop, b.Stop)
}

// TestBuild_SpanningFirst verifies the option floats tree edges forward
// while the result stays planar and within bound.
func TestBuild_SpanningFirst(t *testing.T) {
	// Two dense clusters joined by a weak bridge. Without prioritization
	// the bridge is scanned last; with it, the bridge is in the forest
	// and commits before the clusters fill in.
	m := make([][]float64, 8)
	for i := range m {
		m[i] = make([]float64, 8)
	}
	set := func(i, j int, w float64) { m[i][j], m[j][i] = w, w }
	w := 100.0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			set(i, j, w)
			set(i+4, j+4, w-50)
			w--
		}
	}
	set(3, 4, 0.5) // bridge

	res := buildMatrix(t, m, pmfg.WithSpanningFirst(), pmfg.WithVerifyFinal())

	assert.Equal(t, 1, res.Components)
	require.GreaterOrEqual(t, len(res.Edges), 8)
	// The forest has 7 edges; the bridge is among the first 7 committed.
	sawBridge := false
	for _, e := range res.Edges[:7] {
		if e.U == 3 && e.V == 4 {
			sawBridge = true
		}
	}
	assert.True(t, sawBridge)
}

// TestBuild_DisconnectedComponents: candidates only inside two groups leave
// two components, reported via the informational union-find.
func TestBuild_DisconnectedComponents(t *testing.T) {
	edges := []proximity.Edge{
		{U: 0, V: 1, Weight: 0.9},
		{U: 1, V: 2, Weight: 0.8},
		{U: 3, V: 4, Weight: 0.7},
	}
	es, err := proximity.FromEdges(edges, 5)
	require.NoError(t, err)
	res, err := pmfg.Build(es)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Committed)
	assert.Equal(t, 2, res.Components)
	assert.Equal(t, pmfg.StopExhausted, res.Stop)
}

// TestBuild_NilEdgeSet verifies the guard sentinel.
func TestBuild_NilEdgeSet(t *testing.T) {
	_, err := pmfg.Build(nil)
	assert.ErrorIs(t, err, pmfg.ErrNilEdgeSet)
}

// TestStats verifies the derived summary figures.
func TestStats(t *testing.T) {
	res := buildMatrix(t, completeMatrix(5))
	s := res.Stats()

	assert.Equal(t, 5, s.Order)
	assert.Equal(t, 9, s.Edges)
	assert.Equal(t, 9, s.Bound)
	assert.InDelta(t, 100.0, s.Utilization, 1e-9)
	assert.InDelta(t, 3.6, s.AvgDegree, 1e-9) // 2*9/5
	assert.Equal(t, 1, s.Components)

	empty := buildMatrix(t, nil)
	zero := empty.Stats()
	assert.Zero(t, zero.Utilization)
	assert.Zero(t, zero.AvgDegree)
}

// TestStopReasonString covers the Stringer.
func TestStopReasonString(t *testing.T) {
	assert.Equal(t, "exhausted", pmfg.StopExhausted.String())
	assert.Equal(t, "bound-reached", pmfg.StopBoundReached.String())
	assert.Equal(t, "unknown", pmfg.StopReason(99).String())
}
