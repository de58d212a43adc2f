// Package kruskal computes the Minimum Spanning Tree (MST) of the complete
// geometric graph induced by a slice of 2D points.
//
// What & Why
//
//   - What is an MST?
//     Given points p₀..p₍n₋₁₎, consider the complete graph whose vertices
//     are the point indices and whose edge (i, j) costs the Euclidean
//     distance between pᵢ and pⱼ rounded to the nearest integer. An MST is
//     an acyclic edge subset connecting every index with minimum total cost.
//
//   - Why Kruskal here?
//     One global pass over all candidate edges in ascending cost order,
//     accepting each edge unless it would close a cycle, is the most direct
//     rendition of the cut property. This package aims for implementation
//     transparency rather than asymptotic efficiency.
//
// Pipeline
//
//	enumerate  — all C(n, 2) unordered index pairs become candidates, each
//	             carrying its rounded cost and a random tie-break key
//	rank       — candidates sorted ascending by (cost, key)
//	accept     — the Kruskal loop, consulting a Partition for cycle checks
//	validate   — the finished tree must cover all n indices
//
// Component tracking
//
//	Cycles are detected against a Partition: an ordered collection of
//	pairwise-disjoint sets holding exactly the indices touched by accepted
//	edges. Classify scans the component list once per edge, O(n) rather
//	than the near-O(1) of a disjoint-set forest, a deliberate
//	simplicity-over-efficiency trade. See Partition for the contract.
//
// Determinism & tie-breaking
//
//	Equal-cost candidates are ordered by a key drawn uniformly per edge
//	from a seeded generator. Different seeds may therefore pick different
//	(equally optimal) trees when distances collide; the total cost is
//	invariant across seeds by the cut property. Seed 0 selects a fixed
//	default stream, so library calls are reproducible out of the box;
//	pass WithSeed for explicit control.
//
// Error Conditions
//
//	All errors are terminal; no retry, no partial result:
//
//	- ErrTooFewPoints
//	    - fewer than two points; no spanning tree of positive size exists.
//
//	- ErrPartitionCorrupt
//	    - an edge's endpoints matched more than two components, which
//	      disjointness makes impossible; indicates a bookkeeping bug.
//
//	- ErrEdgesExhausted
//	    - the ranked candidates ran out before n−1 acceptances. A complete
//	      graph cannot be disconnected, so this indicates an enumeration bug.
//
//	- ErrIncompleteSpan
//	    - the finished tree fails to touch all n indices.
//
// GoDoc Summary
//
//   - Compute(points []geom.Point, opts ...Option) (*Result, error)
//     Run the full pipeline; Result lists accepted edges in acceptance
//     order plus their total cost.
//
// Complexity: Θ(n²) candidates, O(n² log n) ranking, O(n) per cycle check.
package kruskal
