package kruskal_test

import (
	"testing"

	"github.com/geomst/geomst/kruskal"
)

// BenchmarkCompute measures the full pipeline on 200 random points
// (19 900 candidates through the linear-scan partition).
func BenchmarkCompute(b *testing.B) {
	pts := randomPoints(200, 42) // pre-build the instance once
	b.ResetTimer()               // exclude fixture construction
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Compute(pts, kruskal.WithSeed(1))
	}
}

// BenchmarkCompute_Small measures the loop overhead on a 20-point instance.
func BenchmarkCompute_Small(b *testing.B) {
	pts := randomPoints(20, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Compute(pts, kruskal.WithSeed(1))
	}
}
