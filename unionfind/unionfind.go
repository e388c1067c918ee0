package unionfind

import "fmt"

// panicIndexRange is the stable message used for contract violations.
// Out-of-range indexes signal a bug in the caller, never bad input data.
const panicIndexRange = "unionfind: node index out of range"

// DSU is a disjoint-set forest over node indexes [0, n).
//
// The zero value is unusable; construct with New. A DSU is exclusively owned
// by one build and must not be mutated concurrently.
type DSU struct {
	parent []int // parent[x] == x for roots
	size   []int // size[r] = component size, valid for roots only
	count  int   // number of disjoint components
}

// New returns a DSU with n singleton components. n must be non-negative;
// a negative n panics (programmer error).
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		panic(fmt.Sprintf("%s: New(%d)", panicIndexRange, n))
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the root of the component containing x, compressing the path
// as it walks (each visited node is pointed at its grandparent).
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) int {
	d.check(x)
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]] // halve the path
		x = d.parent[x]
	}

	return x
}

// Union merges the components containing a and b, attaching the smaller tree
// under the larger root. It returns true iff a and b were in different
// components (i.e. a merge actually occurred).
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	// Attach smaller component under the larger one.
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b are currently in the same component.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// SizeOf returns the size of the component containing x.
func (d *DSU) SizeOf(x int) int {
	return d.size[d.Find(x)]
}

// Count returns the number of disjoint components.
// A filtration over n nodes is fully connected exactly when Count() == 1
// (or n == 0).
func (d *DSU) Count() int {
	return d.count
}

// Len returns n, the number of nodes the structure was created with.
func (d *DSU) Len() int {
	return len(d.parent)
}

// check panics when x is outside [0, n). Kept separate so every public
// operation fails fast with the same message.
func (d *DSU) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("%s: %d of %d", panicIndexRange, x, len(d.parent)))
	}
}
