// SPDX-License-Identifier: MIT
package pmfg

import (
	"errors"
	"time"

	"github.com/Eduardo-zampirolli/planfilt/planarity"
	"github.com/Eduardo-zampirolli/planfilt/proximity"
	"github.com/Eduardo-zampirolli/planfilt/unionfind"
)

var (
	// ErrNilEdgeSet is returned when Build receives a nil candidate set.
	ErrNilEdgeSet = errors.New("pmfg: nil edge set")

	// ErrVerification is returned by WithVerifyFinal when the finished
	// graph fails the static planarity re-check. Seeing it means the
	// incremental oracle committed an edge it should have rejected.
	ErrVerification = errors.New("pmfg: final planarity verification failed")
)

// Build runs the greedy filtration over the candidate set and returns the
// committed planar graph. The candidate order inside es is the visitation
// order; identical input always yields an identical result.
//
// Build allocates all working state per call and never mutates es.
// Complexity: O(m) oracle probes over m candidates; cross-component
// candidates commit in near-constant time, same-component candidates cost a
// planarity test on the affected region.
func Build(es *proximity.EdgeSet, opts ...Option) (*Result, error) {
	if es == nil {
		return nil, ErrNilEdgeSet
	}
	o := gatherOptions(opts...)
	start := time.Now()

	n := es.Order
	bound := 3*n - 6
	if bound < 0 {
		bound = 0
	}
	res := &Result{
		Order:            n,
		Bound:            bound,
		DroppedNonFinite: es.Dropped,
		Stop:             StopExhausted,
	}

	oracle := planarity.NewOracle(n)
	dsu := unionfind.New(n)

	for _, e := range scanOrder(es, o) {
		res.Processed++
		if oracle.HasEdge(e.U, e.V) {
			continue // duplicate slipped past the loader, skip defensively
		}
		if res.Committed == bound {
			// The graph is edge-maximal planar: any further candidate
			// would push past 3n-6, so it is rejected without a probe.
			res.Stop = StopBoundReached
			res.Rejected++

			continue
		}
		if oracle.TryInsert(e.U, e.V) {
			res.Edges = append(res.Edges, e)
			res.Committed++
			dsu.Union(e.U, e.V)
		} else {
			res.Rejected++
		}
	}
	if bound > 0 && res.Committed == bound {
		res.Stop = StopBoundReached
	}
	res.Components = dsu.Count()
	res.Elapsed = time.Since(start)

	if o.verifyFinal && !isPlanarResult(res) {
		return res, ErrVerification
	}

	return res, nil
}

// scanOrder yields the visitation order: the sorted candidate sequence as
// is, or with a maximum-weight spanning forest floated to the front. The
// partition is stable, so determinism is preserved either way.
func scanOrder(es *proximity.EdgeSet, o options) []proximity.Edge {
	if !o.spanningFirst {
		return es.Edges
	}

	// Kruskal over the already-sorted candidates marks the forest edges.
	dsu := unionfind.New(es.Order)
	tree := make([]proximity.Edge, 0, es.Order)
	rest := make([]proximity.Edge, 0, len(es.Edges))
	for _, e := range es.Edges {
		if dsu.Union(e.U, e.V) {
			tree = append(tree, e)
		} else {
			rest = append(rest, e)
		}
	}

	return append(tree, rest...)
}

func isPlanarResult(res *Result) bool {
	pairs := make([][2]int, len(res.Edges))
	for i, e := range res.Edges {
		pairs[i] = [2]int{e.U, e.V}
	}

	return planarity.IsPlanar(res.Order, pairs)
}
