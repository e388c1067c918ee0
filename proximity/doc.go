// Package proximity turns raw pairwise proximity data into the ordered
// candidate edge sequence the filtration loop consumes.
//
// The central type is EdgeSet: at most C(n,2) candidate edges, sorted by
// descending weight with a deterministic tie-break (ascending (U,V) pair),
// so that two runs over identical input always visit candidates in the same
// order. Ordering is a correctness requirement of the greedy filtration, not
// an optimization: the accepted edge set depends on visitation order.
//
// Two builders cover the supported input shapes:
//
//   - FromMatrix: a dense symmetric n x n proximity matrix. Only the upper
//     triangle is read, the diagonal is skipped, and non-finite entries
//     (NaN, +/-Inf) are silently dropped and counted - a recoverable data
//     condition, not an error.
//   - FromEdges: an explicit edge list. Self-loops and duplicate normalized
//     pairs are dropped and counted (first occurrence wins); an index
//     outside [0, n) is malformed input and aborts the build.
//
// The CSV loaders are the narrow collaborator interface to the outside
// world: delimiter-configurable, header-sniffing (a non-numeric first line
// or the usual source/target/from/node keywords), tolerant of malformed
// edge-list lines (skipped and counted) and of a leading label column on
// matrices. All hard failures wrap ErrMalformedInput so callers match the
// whole family with a single errors.Is.
//
// Builders have no side effects beyond their return value and never mutate
// shared state; the sort/prepare phase is the only place where a caller may
// parallelize without affecting the sequential commit loop downstream.
package proximity
