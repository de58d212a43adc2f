// Package kruskal - the MST accept loop and final span validation.
package kruskal

import (
	"fmt"

	"github.com/geomst/geomst/geom"
)

// Compute builds the Minimum Spanning Tree of the complete geometric graph
// over pts and returns the accepted edges in acceptance order together
// with their total cost.
//
// Steps:
//  1. Resolve Options (seed) and build the tie-break RNG.
//  2. Enumerate all C(n, 2) candidates; ErrTooFewPoints when n < 2.
//  3. Rank candidates ascending by (cost, random key).
//  4. Kruskal loop: Classify each candidate against the Partition; discard
//     Cyclic ones, otherwise Apply and accept. Stop at n−1 acceptances:
//     every remaining candidate would close a cycle, so stopping early and
//     scanning to the end produce the same tree.
//  5. If the candidates ran out first, fail with ErrEdgesExhausted (a
//     complete graph cannot be disconnected; this is an internal defect).
//  6. Validate the span: the accepted edges must touch exactly n distinct
//     indices, else ErrIncompleteSpan.
//
// The input slice is read-only for the whole run. Not safe for concurrent
// mutation of pts by the caller; the returned Result is freshly allocated.
//
// Complexity: Θ(n²) candidates, O(n² log n) ranking, O(n) per cycle check.
func Compute(pts []geom.Point, opts ...Option) (*Result, error) {
	// 1. Resolve options into a concrete seed policy.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Enumerate all candidates, consuming the RNG once per edge.
	cands, err := enumerate(pts, rngFromSeed(o.Seed))
	if err != nil {
		return nil, err
	}

	// 3. Total order: ascending (cost, key).
	rank(cands)

	// 4. Accept loop over ranked candidates.
	var (
		n    = len(pts)
		part = NewPartition()
		res  = &Result{Edges: make([]Edge, 0, n-1)}
		pl   Placement
	)
	for i := range cands {
		c := &cands[i]
		pl, err = part.Classify(c.u, c.v)
		if err != nil {
			return nil, fmt.Errorf("%w: candidate %d–%d", err, c.u, c.v)
		}
		if pl.Class == Cyclic {
			// Would close a cycle; skip and keep scanning.
			continue
		}
		part.Apply(c.u, c.v, pl)
		res.Edges = append(res.Edges, Edge{Cost: c.cost, U: c.u, V: c.v})
		res.Total += c.cost
		if len(res.Edges) == n-1 {
			break
		}
	}

	// 5. Exhausting candidates before n−1 acceptances means the implicit
	//    graph was not complete after all, i.e. an enumeration defect.
	if len(res.Edges) < n-1 {
		return nil, fmt.Errorf("%w: accepted %d of %d", ErrEdgesExhausted, len(res.Edges), n-1)
	}

	// 6. Final span check.
	if err = validateSpan(n, res.Edges); err != nil {
		return nil, err
	}

	return res, nil
}

// validateSpan confirms that the distinct endpoint indices across edges
// have cardinality exactly n. Any mismatch is an internal invariant
// failure: never recoverable, never retried.
//
// Complexity: O(n).
func validateSpan(n int, edges []Edge) error {
	covered := make(map[int]struct{}, n)
	for _, e := range edges {
		covered[e.U] = struct{}{}
		covered[e.V] = struct{}{}
	}
	if len(covered) != n {
		return fmt.Errorf("%w: covered %d of %d points", ErrIncompleteSpan, len(covered), n)
	}

	return nil
}
