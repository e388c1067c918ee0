// Package planfilt reduces dense weighted networks to their planar
// backbone.
//
// Given an n x n proximity matrix (correlations, similarities, affinities)
// the filtration keeps only the strongest relations that can still be drawn
// in the plane, at most 3n-6 edges. The result preserves the hierarchical
// backbone of the original network while discarding the noisy bulk of weak
// pairs, the standard preprocessing step for cluster and topology analysis
// of dense similarity data.
//
// The work happens in the subpackages; this root package only documents the
// module:
//
//	proximity/ — candidate edge sets: matrix and edge-list loading, the
//	             descending-weight ordering, CSV writers
//	unionfind/ — disjoint-set connectivity tracking
//	planarity/ — the static left-right planarity test and the incremental
//	             test-and-commit Oracle built on it
//	pmfg/      — the greedy Planar Maximally Filtered Graph builder
//	tmfg/      — the Triangulated Maximally Filtered Graph variant
//	cmd/       — the planfilt command-line interface
//
// Typical use:
//
//	es, err := proximity.FromMatrix(m)
//	if err != nil { ... }
//	res, err := pmfg.Build(es)
//	if err != nil { ... }
//	fmt.Println(res.Stats())
//
// All builders are pure: fresh state per call, no package-level mutability,
// deterministic output for identical input.
package planfilt
