// Package unionfind provides a disjoint-set (union-find) structure over the
// integer node indexes [0, n).
//
// It tracks which nodes have already been linked by committed edges, so the
// greedy filtration loop can tell cross-component insertions (always safe)
// apart from intra-component ones, and can report when the result is fully
// connected.
//
// Overview:
//
//   - New(n) creates n singleton components.
//   - Find(x) returns the canonical root of x's component.
//   - Union(a, b) merges two components and reports whether a merge occurred.
//   - Count() reports the number of remaining components.
//
// Both Find and Union use path compression (grandparent pointer walk) and
// union by size, giving near-O(1) amortized cost per operation - O(α(n)),
// where α is the inverse Ackermann function.
//
// Passing an index outside [0, n) is a programming error, not a data error:
// all operations panic with a stable message rather than returning a sentinel.
// Structures are not safe for concurrent mutation; each build owns its own.
package unionfind
