// Package render - tour edge-set extraction and tour↔MST difference.
package render

import (
	"errors"

	"github.com/geomst/geomst/kruskal"
)

// ErrEmptyTour indicates a tour with no vertices; it has no closing edge
// and nothing meaningful to diff against.
var ErrEmptyTour = errors.New("render: tour is empty")

// ErrIndexRange indicates an edge or tour entry referencing a point index
// outside the point slice being drawn.
var ErrIndexRange = errors.New("render: vertex index outside point set")

// Pair is an undirected edge as normalized 0-based point indices (U < V).
type Pair struct {
	U int
	V int
}

// NewPair normalizes (a, b) into a Pair.
func NewPair(a, b int) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// TourEdges converts a closed tour of 1-based vertex indices into its edge
// set as normalized 0-based Pairs. The tour wraps: the edge from the last
// vertex back to the first is included, so n vertices yield n edges.
//
// Returns ErrEmptyTour for an empty tour.
//
// Complexity: O(n).
func TourEdges(tour []int) ([]Pair, error) {
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}

	edges := make([]Pair, 0, len(tour))
	prev := tour[len(tour)-1]
	for _, i := range tour {
		edges = append(edges, NewPair(i-1, prev-1))
		prev = i
	}

	return edges, nil
}

// Diff splits the tour and MST edge sets into their symmetric difference:
// adds are MST edges the tour lacks, dels are tour edges the MST lacks.
// Output order is deterministic: adds in MST order, dels in tour order,
// duplicates collapsed.
//
// Complexity: O(|tour| + |mst|).
func Diff(tourEdges []Pair, mst []kruskal.Edge) (adds, dels []Pair) {
	inTour := make(map[Pair]struct{}, len(tourEdges))
	for _, p := range tourEdges {
		inTour[p] = struct{}{}
	}

	inMST := make(map[Pair]struct{}, len(mst))
	var p Pair
	for _, e := range mst {
		p = Pair{U: e.U, V: e.V}
		if _, dup := inMST[p]; dup {
			continue
		}
		inMST[p] = struct{}{}
		if _, ok := inTour[p]; !ok {
			adds = append(adds, p)
		}
	}

	seen := make(map[Pair]struct{}, len(tourEdges))
	for _, p = range tourEdges {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if _, ok := inMST[p]; !ok {
			dels = append(dels, p)
		}
	}

	return adds, dels
}
