// Package geom provides the 2D point primitive shared by the MST core and
// its file/rendering collaborators.
package geom

import "math"

// Point is an (x, y) coordinate pair. A Point carries no identity of its
// own; throughout this module a point is identified solely by its index in
// the owning slice, and the slice is never mutated by the algorithms.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q rounded to the
// nearest integer, half away from zero (math.Round).
//
// Rounding policy: half-away-from-zero is used consistently everywhere.
// The policy decides which pairwise distances collide (and therefore how
// often random tie-breaking engages); it never changes the optimal total
// MST cost.
//
// Complexity: O(1).
func Dist(p, q Point) int64 {
	var dx, dy float64
	dx = q.X - p.X
	dy = q.Y - p.Y

	return int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
}
