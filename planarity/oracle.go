// SPDX-License-Identifier: MIT

// File: oracle.go
// Role: incremental planarity oracle (test-and-commit edge insertion).
//
// The oracle keeps the committed graph decomposed rather than re-testing it
// wholesale: a union-find tracks connected components, and same-component
// insertions are tested only on the blocks (biconnected components) that the
// new edge would merge - the path between u's and v's blocks in the
// block-cut tree. Everything outside that path is untouched by the insertion
// and cannot change planarity.

package planarity

import (
	"fmt"
	"sort"

	"github.com/Eduardo-zampirolli/planfilt/unionfind"
)

// panicNodeRange is the stable message for index contract violations.
const panicNodeRange = "planarity: node index out of range"

// Oracle maintains a growing planar graph over nodes [0, n) and answers
// whether one more edge keeps it planar, committing the edge when it does.
//
// Invariant: the committed graph is planar after every successful TryInsert.
// The zero value is unusable; construct with NewOracle. Not goroutine-safe.
type Oracle struct {
	n     int
	adj   [][]int  // committed adjacency
	edges [][2]int // committed edges in commit order
	dsu   *unionfind.DSU
}

// NewOracle returns an oracle over n isolated nodes. n must be non-negative;
// n of 0, 1 or 2 is fully supported (every simple edge is trivially planar).
// Complexity: O(n).
func NewOracle(n int) *Oracle {
	if n < 0 {
		panic(fmt.Sprintf("%s: NewOracle(%d)", panicNodeRange, n))
	}

	return &Oracle{
		n:   n,
		adj: make([][]int, n),
		dsu: unionfind.New(n),
	}
}

// TryInsert atomically tests edge (u,v) and commits it when the graph stays
// planar. It returns true iff the edge was committed; on false the oracle is
// exactly as it was before the call.
//
// Self-loops and already-committed pairs are rejected (false) without a
// planarity test; deduplication is the caller's responsibility, this is a
// defensive backstop. Out-of-range indexes panic.
//
// Complexity: O(α(n)) for a cross-component edge; O(|affected component|)
// otherwise.
func (o *Oracle) TryInsert(u, v int) bool {
	o.check(u)
	o.check(v)
	if u == v || o.HasEdge(u, v) {
		return false
	}

	// Joining two components can never create a crossing: each component
	// keeps its own planar drawing.
	if o.dsu.Find(u) != o.dsu.Find(v) {
		o.commit(u, v)

		return true
	}

	// Same component: isolate the blocks the new edge would merge and test
	// only that region (plus the candidate) on a scratch subgraph.
	verts, regionEdges := o.affectedRegion(u, v)
	index := make(map[int]int, len(verts))
	for i, x := range verts {
		index[x] = i
	}
	local := make([][2]int, 0, len(regionEdges)+1)
	for _, e := range regionEdges {
		local = append(local, [2]int{index[e[0]], index[e[1]]})
	}
	local = append(local, [2]int{index[u], index[v]})

	if !IsPlanar(len(verts), local) {
		return false
	}
	o.commit(u, v)

	return true
}

// HasEdge reports whether (u,v) is already committed.
// Complexity: O(min(deg u, deg v)).
func (o *Oracle) HasEdge(u, v int) bool {
	o.check(u)
	o.check(v)
	a, b := u, v
	if len(o.adj[b]) < len(o.adj[a]) {
		a, b = b, a
	}
	for _, w := range o.adj[a] {
		if w == b {
			return true
		}
	}

	return false
}

// Order returns the number of nodes.
func (o *Oracle) Order() int { return o.n }

// EdgeCount returns the number of committed edges.
func (o *Oracle) EdgeCount() int { return len(o.edges) }

// Degree returns the committed degree of v.
func (o *Oracle) Degree(v int) int {
	o.check(v)

	return len(o.adj[v])
}

// Components returns the number of connected components.
func (o *Oracle) Components() int { return o.dsu.Count() }

// AppendEdges appends the committed edges, in commit order, to dst and
// returns the extended slice. The oracle retains no reference to the result.
func (o *Oracle) AppendEdges(dst [][2]int) [][2]int {
	return append(dst, o.edges...)
}

func (o *Oracle) commit(u, v int) {
	o.adj[u] = append(o.adj[u], v)
	o.adj[v] = append(o.adj[v], u)
	o.edges = append(o.edges, [2]int{u, v})
	o.dsu.Union(u, v)
}

func (o *Oracle) check(v int) {
	if v < 0 || v >= o.n {
		panic(fmt.Sprintf("%s: %d of %d", panicNodeRange, v, o.n))
	}
}

// affectedRegion returns the vertices and edges of the blocks along the
// block-cut-tree path between u and v within their shared component. Those
// blocks merge into a single biconnected component if (u,v) is inserted;
// the insertion preserves planarity iff that merged region stays planar.
//
// All bookkeeping is keyed by maps so the cost is proportional to the
// component containing u, never to the whole graph.
func (o *Oracle) affectedRegion(u, v int) ([]int, [][2]int) {
	var (
		disc      = make(map[int]int) // DFS discovery time
		low       = make(map[int]int)
		isCut     = make(map[int]bool)
		edgeStack [][2]int
		blocks    [][][2]int // per block: its edges
		timer     int
		rootKids  int
	)

	// Tarjan biconnected components over the component containing u.
	var dfs func(x, parent int)
	dfs = func(x, parent int) {
		timer++
		disc[x] = timer
		low[x] = timer
		for _, y := range o.adj[x] {
			if y == parent {
				continue
			}
			if d, seen := disc[y]; seen {
				if d < disc[x] { // back edge
					edgeStack = append(edgeStack, [2]int{x, y})
					if d < low[x] {
						low[x] = d
					}
				}

				continue
			}
			edgeStack = append(edgeStack, [2]int{x, y})
			dfs(y, x)
			if low[y] < low[x] {
				low[x] = low[y]
			}
			if parent == -1 || low[y] >= disc[x] {
				// x separates the subtree under y: pop one block.
				var blk [][2]int
				for {
					e := edgeStack[len(edgeStack)-1]
					edgeStack = edgeStack[:len(edgeStack)-1]
					blk = append(blk, e)
					if e[0] == x && e[1] == y {
						break
					}
				}
				blocks = append(blocks, blk)
				if parent == -1 {
					rootKids++
				} else {
					isCut[x] = true
				}
			}
		}
	}
	dfs(u, -1)
	if rootKids > 1 {
		isCut[u] = true
	}

	// Vertex membership per block.
	blockVerts := make([][]int, len(blocks))
	homeBlock := make(map[int]int) // any block containing the vertex
	for bi, blk := range blocks {
		member := make(map[int]struct{}, len(blk)+1)
		for _, e := range blk {
			member[e[0]] = struct{}{}
			member[e[1]] = struct{}{}
		}
		for x := range member {
			blockVerts[bi] = append(blockVerts[bi], x)
			homeBlock[x] = bi
		}
	}

	// Block-cut tree: block nodes [0, B), then one node per cut vertex.
	cutNode := make(map[int]int, len(isCut))
	next := len(blocks)
	for x := range isCut {
		cutNode[x] = next
		next++
	}
	treeAdj := make([][]int, next)
	for bi, vs := range blockVerts {
		for _, x := range vs {
			if c, ok := cutNode[x]; ok {
				treeAdj[bi] = append(treeAdj[bi], c)
				treeAdj[c] = append(treeAdj[c], bi)
			}
		}
	}

	nodeFor := func(x int) int {
		if c, ok := cutNode[x]; ok {
			return c
		}

		return homeBlock[x]
	}

	// The tree path between u's and v's nodes is unique; BFS recovers it.
	start, goal := nodeFor(u), nodeFor(v)
	parent := map[int]int{start: -1}
	queue := []int{start}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		if x == goal {
			break
		}
		for _, y := range treeAdj[x] {
			if _, seen := parent[y]; !seen {
				parent[y] = x
				queue = append(queue, y)
			}
		}
	}

	pathBlocks := make(map[int]struct{})
	for x := goal; x != -1; x = parent[x] {
		if x < len(blocks) {
			pathBlocks[x] = struct{}{}
		}
	}

	// Assemble the merged region deterministically (sorted vertex order).
	vertSet := make(map[int]struct{})
	var regionEdges [][2]int
	for bi := range pathBlocks {
		for _, x := range blockVerts[bi] {
			vertSet[x] = struct{}{}
		}
		regionEdges = append(regionEdges, blocks[bi]...)
	}
	verts := make([]int, 0, len(vertSet))
	for x := range vertSet {
		verts = append(verts, x)
	}
	sort.Ints(verts)

	return verts, regionEdges
}
