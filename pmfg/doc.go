// Package pmfg builds the Planar Maximally Filtered Graph of a weighted
// proximity network.
//
// The filtration is a single greedy pass: candidate edges arrive sorted by
// descending weight (ties broken deterministically by the proximity package),
// and each is committed exactly when adding it keeps the running graph
// planar. The planarity question is answered by planarity.Oracle, whose
// test-and-commit contract guarantees that a rejected candidate leaves the
// graph untouched. A planar simple graph on n nodes carries at most 3n-6
// edges; once that bound is hit the graph is edge-maximal, so remaining
// candidates are rejected outright without consulting the oracle.
//
// Rejections are permanent. Planarity is monotone under edge addition - a
// graph that cannot absorb an edge now never can later - so each candidate
// is visited at most once and the pass is linear in the candidate count
// (times the per-candidate oracle cost).
//
// Build is a pure function of its input: it allocates a fresh oracle and a
// fresh component tracker per call, holds no package state, and returns a
// Result that the caller owns outright. Concurrent Build calls on different
// inputs are safe; a single Build is strictly sequential because the commit
// order defines the output.
//
// Two options adjust the pass without changing the acceptance rule:
// WithSpanningFirst floats a maximum-weight spanning forest to the front of
// the scan (connectivity before density), and WithVerifyFinal re-checks the
// finished graph with the static planarity test.
//
// Complexity: O(m * c) where m is the candidate count and c the incremental
// test cost on the affected region, plus O(m log m) spent sorting upstream.
package pmfg
