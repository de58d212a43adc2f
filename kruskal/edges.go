// Package kruskal - candidate edge enumeration and ranking.
package kruskal

import (
	"math/rand"
	"sort"

	"github.com/geomst/geomst/geom"
)

// candidate is one not-yet-accepted edge: the eventual Edge fields plus the
// random key that orders it among equal-cost candidates. Keys exist purely
// to vary which of several equally optimal trees gets picked; they are
// never part of the result.
type candidate struct {
	cost int64
	key  int64
	u    int
	v    int
}

// newCandidate builds the candidate for indices i and j of pts.
// Endpoints are normalized to (min, max); the key is drawn uniformly from
// [0, len(pts)], a bounded range wide enough to scatter most ties, with
// collisions falling back to stable enumeration order in rank.
func newCandidate(pts []geom.Point, rng *rand.Rand, i, j int) candidate {
	var u, v int
	u, v = i, j
	if v < u {
		u, v = v, u
	}

	return candidate{
		cost: geom.Dist(pts[i], pts[j]),
		key:  int64(rng.Intn(len(pts) + 1)),
		u:    u,
		v:    v,
	}
}

// enumerate returns every unordered pair of distinct indices of pts as a
// candidate edge, consuming rng once per candidate.
//
// Returns ErrTooFewPoints when len(pts) < 2: a single point or an empty
// instance admits no spanning tree of positive size, and silently handing
// back zero candidates would let that defect travel downstream.
//
// Complexity: Θ(n²) time and space by construction; accepted trade-off.
func enumerate(pts []geom.Point, rng *rand.Rand) ([]candidate, error) {
	var n int
	n = len(pts)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	edges := make([]candidate, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, newCandidate(pts, rng, i, j))
		}
	}

	return edges, nil
}

// rank orders candidates in place, ascending by (cost, key). The sort is
// stable, so candidates whose keys collide keep enumeration order; for a
// fixed seed the ranked sequence is fully deterministic.
//
// Complexity: O(m log m) for m candidates.
func rank(edges []candidate) {
	sort.SliceStable(edges, func(a, b int) bool {
		if edges[a].cost != edges[b].cost {
			return edges[a].cost < edges[b].cost
		}

		return edges[a].key < edges[b].key
	})
}
