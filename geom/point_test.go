package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geomst/geomst/geom"
)

// TestDist_PythagoreanTriple verifies exact integer distances on a 3-4-5
// right triangle: no rounding is involved for these pairs.
func TestDist_PythagoreanTriple(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 0}
	c := geom.Point{X: 3, Y: 4}

	assert.Equal(t, int64(3), geom.Dist(a, b))
	assert.Equal(t, int64(4), geom.Dist(b, c))
	assert.Equal(t, int64(5), geom.Dist(a, c))
}

// TestDist_Rounding pins the documented half-away-from-zero policy and a
// couple of irrational distances.
func TestDist_Rounding(t *testing.T) {
	o := geom.Point{X: 0, Y: 0}

	// Exact half: 2.5 rounds away from zero to 3 (half-to-even would give 2).
	assert.Equal(t, int64(3), geom.Dist(o, geom.Point{X: 2.5, Y: 0}))
	// Exact half: 0.5 rounds to 1 (half-to-even would give 0).
	assert.Equal(t, int64(1), geom.Dist(o, geom.Point{X: 0.5, Y: 0}))
	// Unit square diagonal: sqrt(2) ≈ 1.414 rounds down to 1.
	assert.Equal(t, int64(1), geom.Dist(o, geom.Point{X: 1, Y: 1}))
	// sqrt(8) ≈ 2.828 rounds up to 3.
	assert.Equal(t, int64(3), geom.Dist(o, geom.Point{X: 2, Y: 2}))
}

// TestDist_SymmetryAndZero verifies Dist(p, q) == Dist(q, p) and that a
// point is at distance zero from itself.
func TestDist_SymmetryAndZero(t *testing.T) {
	p := geom.Point{X: -1.5, Y: 7.25}
	q := geom.Point{X: 4, Y: -2}

	assert.Equal(t, geom.Dist(p, q), geom.Dist(q, p))
	assert.Zero(t, geom.Dist(p, p))
}
