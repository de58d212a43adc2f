// Package kruskal - sentinel errors, result types and configuration options.
package kruskal

import "errors"

// ErrTooFewPoints indicates an input of fewer than two points. No candidate
// edge exists, so no spanning tree of positive size can be formed.
var ErrTooFewPoints = errors.New("kruskal: at least two points are required")

// ErrPartitionCorrupt indicates that a candidate edge's endpoints matched
// more than two components. Disjointness makes that impossible, so the
// partition bookkeeping is broken; the run must abort.
var ErrPartitionCorrupt = errors.New("kruskal: edge endpoints matched more than two components")

// ErrEdgesExhausted indicates the ranked candidate sequence ran out before
// the tree reached n−1 edges. A complete graph over n ≥ 2 points cannot be
// disconnected, so this signals an enumeration defect, not bad input.
var ErrEdgesExhausted = errors.New("kruskal: candidates exhausted before the tree spanned every point")

// ErrIncompleteSpan indicates the finished tree does not touch every point
// index. Like ErrEdgesExhausted this is an internal invariant failure.
var ErrIncompleteSpan = errors.New("kruskal: accepted edges do not cover every point")

// Edge is one accepted MST edge. U and V are indices into the point slice
// handed to Compute, normalized so that U < V; the same undirected edge
// therefore has exactly one representation.
type Edge struct {
	// Cost is the rounded Euclidean distance between the endpoints.
	Cost int64

	// U is the smaller endpoint index.
	U int

	// V is the larger endpoint index.
	V int
}

// Result is the outcome of Compute.
//
// Invariants on a returned Result: len(Edges) == n−1 for n input points,
// the union of all endpoint indices is exactly {0..n−1}, and the edge set
// is acyclic by construction (cyclic candidates are discarded before
// acceptance).
type Result struct {
	// Edges lists the accepted edges in acceptance (ascending rank) order.
	Edges []Edge

	// Total is the sum of the accepted edges' costs.
	Total int64
}

// Options configures a Compute run. Use DefaultOptions() for the default
// setup (fixed default seed).
type Options struct {
	// Seed feeds the tie-break key generator. Seed 0 selects a fixed
	// default stream; any other value is used verbatim.
	Seed int64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed returns an Option that sets the tie-break seed. Runs with equal
// inputs and equal seeds produce identical Results.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.Seed = seed
	}
}

// DefaultOptions returns Options initialized with Seed = 0 (the fixed
// default stream).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{Seed: 0}
}
