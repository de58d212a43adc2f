// Package geomst computes Minimum Spanning Trees over the complete
// geometric graph induced by a set of 2D points, and compares them
// against reference tours from TSPLIB-style files.
//
// What is geomst?
//
//	A small, deliberately simple toolkit that brings together:
//		• geom       — 2D points and integer-rounded Euclidean distance
//		• kruskal    — Kruskal's MST over all point pairs, tracking components
//		               with an explicit partition instead of a union-find
//		• tsplib     — NODE_COORD_SECTION / TOUR_SECTION file readers
//		• render     — plots of the MST, a tour, and their symmetric difference
//		• cmd/geomst — the command-line entry point
//
// Why an explicit partition?
//
//	The cycle check scans an ordered list of disjoint node sets instead of
//	consulting a disjoint-set forest. That costs O(n) per candidate edge,
//	and is intentional: the partition is the interesting object here, and
//	every state transition (new pair, extend, merge) stays visible and
//	individually testable.
//
// Quick ASCII example:
//
//	    C(3,4)
//	     │
//	    B(3,0)──A(0,0)
//
//	AB costs 3, BC costs 4, AC rounds to 5 ⇒ MST = {AB, BC}, total 7.
//
// Determinism: equal-cost edges are ordered by a random key drawn from a
// seeded generator; pass kruskal.WithSeed to reproduce a run exactly.
// The optimal total cost never depends on the seed.
//
//	go get github.com/geomst/geomst
package geomst
