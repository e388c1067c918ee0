// Package planarity answers the single question the greedy filtration loop
// keeps asking: "does this graph stay planar if I add edge (u,v)?".
//
// Two layers are provided:
//
//   - IsPlanar - a static left-right planarity test (de Fraysseix-Rosenstiehl,
//     in the formulation popularized by Brandes). Linear-time in the size of
//     the tested graph: a DFS orientation computing lowpoints and nesting
//     depths, followed by a testing DFS that maintains a stack of
//     conflict pairs of return-edge intervals.
//
//   - Oracle - the incremental test-and-commit structure. It maintains the
//     committed graph, a union-find over its connected components, and
//     answers TryInsert(u, v) without ever re-testing the whole graph:
//
//     1. If u and v lie in different components, the insertion can never
//     create a crossing; it is accepted outright.
//     2. Otherwise the affected region is isolated first: the biconnected
//     components (blocks) of u's component are computed, and only the
//     blocks along the block-cut-tree path from u to v - the blocks that
//     the new edge would merge into a single block - are extracted. The
//     static test runs on that merged region plus the candidate edge.
//
//     A graph is planar iff every biconnected component is planar, and the
//     insertion changes exactly one (merged) block, so testing that region is
//     equivalent to testing the whole graph. The test runs on a scratch copy;
//     a rejected candidate leaves the Oracle bit-for-bit as it was.
//
// TryInsert is atomic by contract: when it returns true the edge has been
// committed, when it returns false nothing changed. There is no separate
// "query then commit" pair and therefore no moment of inconsistency.
//
// Degenerate orders are handled without special cases: with fewer than three
// nodes no planarity constraint can be violated, so every simple edge is
// accepted.
//
// Error handling follows the module convention: out-of-range node indexes are
// programming errors and panic with a stable message; there are no
// user-recoverable error conditions in this package.
//
// Complexity: a cross-component insert costs O(α(n)); a same-component insert
// costs O(|region|) for the block decomposition and the static test, where
// the region is the affected component only - never the whole graph.
//
// Oracle is not safe for concurrent use; each build owns a fresh instance.
package planarity
