package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduardo-zampirolli/planfilt/unionfind"
)

// TestNew_Singletons verifies that a fresh DSU has n singleton components,
// each node being its own root.
func TestNew_Singletons(t *testing.T) {
	d := unionfind.New(5)
	assert.Equal(t, 5, d.Count())
	assert.Equal(t, 5, d.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Equal(t, 1, d.SizeOf(i))
	}
}

// TestUnion_MergeReporting verifies that Union reports true exactly once per
// distinct pair of components and that Count decreases accordingly.
func TestUnion_MergeReporting(t *testing.T) {
	d := unionfind.New(4)

	assert.True(t, d.Union(0, 1))  // first merge
	assert.False(t, d.Union(1, 0)) // already joined, order irrelevant
	assert.Equal(t, 3, d.Count())

	assert.True(t, d.Union(2, 3))
	assert.True(t, d.Union(0, 3)) // joins {0,1} with {2,3}
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 4, d.SizeOf(1))

	// All nodes now share one root.
	root := d.Find(0)
	for i := 1; i < 4; i++ {
		assert.Equal(t, root, d.Find(i))
	}
}

// TestConnected tracks pairwise connectivity through a chain of unions.
func TestConnected(t *testing.T) {
	d := unionfind.New(6)
	d.Union(0, 1)
	d.Union(2, 3)

	assert.True(t, d.Connected(0, 1))
	assert.True(t, d.Connected(3, 2))
	assert.False(t, d.Connected(1, 2))
	assert.False(t, d.Connected(4, 5))

	d.Union(1, 2)
	assert.True(t, d.Connected(0, 3))
	assert.False(t, d.Connected(0, 4))
}

// TestZeroNodes verifies that an empty DSU is valid and inert.
func TestZeroNodes(t *testing.T) {
	d := unionfind.New(0)
	assert.Zero(t, d.Count())
	assert.Zero(t, d.Len())
}

// TestIndexContract verifies that out-of-range indexes fail fast: they are
// programming errors, not recoverable data errors.
func TestIndexContract(t *testing.T) {
	d := unionfind.New(3)

	require.Panics(t, func() { d.Find(3) })
	require.Panics(t, func() { d.Find(-1) })
	require.Panics(t, func() { d.Union(0, 7) })
	require.Panics(t, func() { unionfind.New(-1) })
}

// TestPathCompression_LongChain exercises compression on a long chain; the
// structure must stay correct regardless of union order.
func TestPathCompression_LongChain(t *testing.T) {
	const n = 1000
	d := unionfind.New(n)
	for i := 1; i < n; i++ {
		require.True(t, d.Union(i-1, i))
	}
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, n, d.SizeOf(0))
	assert.Equal(t, d.Find(0), d.Find(n-1))
}
