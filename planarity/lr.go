// SPDX-License-Identifier: MIT

// File: lr.go
// Role: static left-right (LR) planarity test.
//
// The test follows the two-pass structure of the de Fraysseix-Rosenstiehl
// criterion:
//
//  1. Orientation DFS: orient every edge, classify tree vs. back arcs, and
//     compute for each arc its lowpoint, second lowpoint and nesting depth.
//  2. Testing DFS: walk tree arcs in nesting-depth order while maintaining a
//     stack of conflict pairs of return-edge intervals; a forced same-side
//     assignment of two conflicting return edges proves non-planarity.
//
// Only the boolean answer is needed by this module, so the third
// (embedding) pass of the full algorithm is intentionally absent.

package planarity

import "sort"

// arc is an oriented edge u->v produced by the orientation DFS.
type arc [2]int

// noArc is the "absent arc" sentinel used in intervals and reference chains.
var noArc = arc{-1, -1}

// interval is a range of return edges, bounded by the lowest and the highest
// return arc. Both bounds are noArc when the interval is empty.
type interval struct {
	low, high arc
}

func (i interval) empty() bool { return i.low == noArc && i.high == noArc }

// conflictPair holds two intervals of return edges that must end up on
// opposite sides of the DFS tree path.
type conflictPair struct {
	l, r interval
}

func (p *conflictPair) swap() { p.l, p.r = p.r, p.l }

// lrState carries all per-run state of the static test. A fresh state is
// built per call; nothing is shared or reused.
type lrState struct {
	adj     [][]int // undirected adjacency, deduplicated
	height  []int   // DFS height per vertex; -1 = unvisited
	parent  []arc   // parent tree arc per vertex; noArc at roots
	roots   []int
	ordered [][]int // adjacency reordered by nesting depth

	lowpt    map[arc]int
	lowpt2   map[arc]int
	nesting  map[arc]int
	lowptArc map[arc]arc
	ref      map[arc]arc

	stack  []*conflictPair
	bottom map[arc]int // stack height when the arc started being processed
}

// IsPlanar reports whether the undirected graph on n nodes with the given
// edges can be drawn in the plane without crossings.
//
// Self-loops and duplicate edges are ignored: neither affects planarity of
// the remaining simple graph, and the incremental Oracle never produces
// them. Node indexes must lie in [0, n); violations panic (programmer error).
//
// Complexity: O(n + m) time and space.
func IsPlanar(n int, edges [][2]int) bool {
	if n < 0 {
		panic(panicNodeRange)
	}
	// Deduplicate into a simple graph first; the Euler bound and the LR
	// test both assume simple input.
	seen := make(map[arc]struct{}, len(edges))
	simple := make([][2]int, 0, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			panic(panicNodeRange)
		}
		if u == v {
			continue
		}
		if v < u {
			u, v = v, u
		}
		key := arc{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		simple = append(simple, [2]int{u, v})
	}

	// Euler bound: a simple planar graph on n >= 3 nodes has at most 3n-6
	// edges. This also caps the work of the full test below.
	if n > 2 && len(simple) > 3*n-6 {
		return false
	}
	// With fewer than three nodes at most one simple edge exists; planar.
	if n < 3 {
		return true
	}

	s := newLRState(n, simple)
	s.orient()
	s.reorder()

	return s.test()
}

func newLRState(n int, edges [][2]int) *lrState {
	s := &lrState{
		adj:      make([][]int, n),
		height:   make([]int, n),
		parent:   make([]arc, n),
		lowpt:    make(map[arc]int, 2*len(edges)),
		lowpt2:   make(map[arc]int, 2*len(edges)),
		nesting:  make(map[arc]int, 2*len(edges)),
		lowptArc: make(map[arc]arc, 2*len(edges)),
		ref:      make(map[arc]arc, 2*len(edges)),
		bottom:   make(map[arc]int, 2*len(edges)),
	}
	for i := range s.height {
		s.height[i] = -1
		s.parent[i] = noArc
	}
	for _, e := range edges {
		s.adj[e[0]] = append(s.adj[e[0]], e[1])
		s.adj[e[1]] = append(s.adj[e[1]], e[0])
	}

	return s
}

// orient runs the orientation DFS from every unvisited vertex, computing
// lowpt, lowpt2 and nesting depth for each oriented arc.
func (s *lrState) orient() {
	oriented := make(map[arc]struct{}, len(s.lowpt))

	var dfs func(v int)
	dfs = func(v int) {
		e := s.parent[v]
		for _, w := range s.adj[v] {
			vw := arc{v, w}
			if _, done := oriented[vw]; done {
				continue
			}
			if _, done := oriented[arc{w, v}]; done {
				continue
			}
			oriented[vw] = struct{}{}

			s.lowpt[vw] = s.height[v]
			s.lowpt2[vw] = s.height[v]
			if s.height[w] == -1 { // tree arc
				s.parent[w] = vw
				s.height[w] = s.height[v] + 1
				dfs(w)
			} else { // back arc
				s.lowpt[vw] = s.height[w]
			}

			// Nesting depth orders children; chordal arcs (those with a
			// second return below v) nest one level deeper.
			s.nesting[vw] = 2 * s.lowpt[vw]
			if s.lowpt2[vw] < s.height[v] {
				s.nesting[vw]++
			}

			// Fold this arc's lowpoints into the parent arc.
			if e != noArc {
				switch {
				case s.lowpt[vw] < s.lowpt[e]:
					s.lowpt2[e] = minInt(s.lowpt[e], s.lowpt2[vw])
					s.lowpt[e] = s.lowpt[vw]
				case s.lowpt[vw] > s.lowpt[e]:
					s.lowpt2[e] = minInt(s.lowpt2[e], s.lowpt[vw])
				default:
					s.lowpt2[e] = minInt(s.lowpt2[e], s.lowpt2[vw])
				}
			}
		}
	}

	for v := range s.adj {
		if s.height[v] == -1 {
			s.height[v] = 0
			s.roots = append(s.roots, v)
			dfs(v)
		}
	}
}

// reorder sorts each adjacency list by nesting depth (ties by neighbor index
// for determinism), keeping only arcs oriented out of the vertex.
func (s *lrState) reorder() {
	s.ordered = make([][]int, len(s.adj))
	for v, nbrs := range s.adj {
		out := make([]int, 0, len(nbrs))
		for _, w := range nbrs {
			if _, ok := s.nesting[arc{v, w}]; ok {
				out = append(out, w)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			ni, nj := s.nesting[arc{v, out[i]}], s.nesting[arc{v, out[j]}]
			if ni != nj {
				return ni < nj
			}

			return out[i] < out[j]
		})
		s.ordered[v] = out
	}
}

// test runs the testing DFS from every root. Returns false as soon as two
// return edges are forced onto the same side.
func (s *lrState) test() bool {
	var dfs func(v int) bool
	dfs = func(v int) bool {
		e := s.parent[v]
		for i, w := range s.ordered[v] {
			ei := arc{v, w}
			s.bottom[ei] = len(s.stack)

			if s.parent[w] == ei { // tree arc: recurse first
				if !dfs(w) {
					return false
				}
			} else { // back arc: a one-element interval of its own
				s.lowptArc[ei] = ei
				s.stack = append(s.stack, &conflictPair{
					l: interval{noArc, noArc},
					r: interval{ei, ei},
				})
			}

			// Integrate ei's return edges into the constraints of e.
			if s.lowpt[ei] < s.height[v] { // ei has a return edge
				if i == 0 {
					if e != noArc {
						s.lowptArc[e] = s.lowptArc[ei]
					}
				} else if !s.addConstraints(ei, e) {
					return false
				}
			}
		}

		if e != noArc { // v is not a root: finish the parent arc
			u := e[0]
			s.trimBackEdges(u)
			// The parent arc inherits the side of its highest return edge.
			if s.lowpt[e] < s.height[u] && len(s.stack) > 0 {
				top := s.stack[len(s.stack)-1]
				hl, hr := top.l.high, top.r.high
				if hl != noArc && (hr == noArc || s.lowpt[hl] > s.lowpt[hr]) {
					s.ref[e] = hl
				} else {
					s.ref[e] = hr
				}
			}
		}

		return true
	}

	for _, r := range s.roots {
		if !dfs(r) {
			return false
		}
	}

	return true
}

// addConstraints merges the conflict pairs produced while processing arc ei
// into a single pair constrained against the parent arc e. It reports false
// when two return edges cannot be assigned to opposite sides.
func (s *lrState) addConstraints(ei, e arc) bool {
	p := &conflictPair{l: interval{noArc, noArc}, r: interval{noArc, noArc}}

	// Merge the return edges of ei into p.r.
	for len(s.stack) > s.bottom[ei] {
		q := s.pop()
		if !q.l.empty() {
			q.swap()
		}
		if !q.l.empty() {
			return false // both sides occupied: not planar
		}
		if s.lowpt[q.r.low] > s.lowpt[e] {
			// Interval still returns above e: chain it onto p.r.
			if p.r.empty() {
				p.r.high = q.r.high
			} else {
				s.ref[p.r.low] = q.r.high
			}
			p.r.low = q.r.low
		} else {
			// Returns at or below lowpt(e): align with e's lowpoint arc.
			s.ref[q.r.low] = s.lowptArc[e]
		}
	}

	// Merge the conflicting return edges of e1..e(i-1) into p.l.
	for len(s.stack) > 0 && (s.conflicting(s.top().l, ei) || s.conflicting(s.top().r, ei)) {
		q := s.pop()
		if s.conflicting(q.r, ei) {
			q.swap()
		}
		if s.conflicting(q.r, ei) {
			return false // conflicts on both sides: not planar
		}
		// The non-conflicting interval below lowpt(ei) joins p.r.
		if p.r.low != noArc {
			s.ref[p.r.low] = q.r.high
		}
		if q.r.low != noArc {
			p.r.low = q.r.low
		}
		if p.l.empty() {
			p.l.high = q.l.high
		} else {
			s.ref[p.l.low] = q.l.high
		}
		p.l.low = q.l.low
	}

	if !p.l.empty() || !p.r.empty() {
		s.stack = append(s.stack, p)
	}

	return true
}

// trimBackEdges removes return edges ending at u, dropping whole conflict
// pairs that return no higher than u and trimming the topmost survivor.
func (s *lrState) trimBackEdges(u int) {
	// Drop conflict pairs returning exactly to u.
	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		s.pop()
	}

	if len(s.stack) == 0 {
		return
	}
	p := s.pop()

	// Trim the left interval.
	for p.l.high != noArc && p.l.high[1] == u {
		p.l.high = s.refOf(p.l.high)
	}
	if p.l.high == noArc && p.l.low != noArc { // interval just emptied
		s.ref[p.l.low] = p.r.low
		p.l.low = noArc
	}

	// Trim the right interval symmetrically.
	for p.r.high != noArc && p.r.high[1] == u {
		p.r.high = s.refOf(p.r.high)
	}
	if p.r.high == noArc && p.r.low != noArc {
		s.ref[p.r.low] = p.l.low
		p.r.low = noArc
	}

	s.stack = append(s.stack, p)
}

// conflicting reports whether interval i has a return edge strictly above
// the lowpoint of arc b.
func (s *lrState) conflicting(i interval, b arc) bool {
	return !i.empty() && s.lowpt[i.high] > s.lowpt[b]
}

// lowest returns the lowest return height of a conflict pair.
func (s *lrState) lowest(p *conflictPair) int {
	if p.l.empty() {
		return s.lowpt[p.r.low]
	}
	if p.r.empty() {
		return s.lowpt[p.l.low]
	}

	return minInt(s.lowpt[p.l.low], s.lowpt[p.r.low])
}

func (s *lrState) top() *conflictPair { return s.stack[len(s.stack)-1] }

func (s *lrState) pop() *conflictPair {
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return p
}

// refOf follows the reference chain one step; absent entries mean noArc.
func (s *lrState) refOf(a arc) arc {
	if r, ok := s.ref[a]; ok {
		return r
	}

	return noArc
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
