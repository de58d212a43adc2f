package kruskal_test

import (
	"fmt"

	"github.com/geomst/geomst/geom"
	"github.com/geomst/geomst/kruskal"
)

// ExampleCompute demonstrates the MST of a 3-4-5 right triangle.
// All pairwise costs are distinct, so the result is the same for every
// tie-break seed: the two legs, never the hypotenuse.
func ExampleCompute() {
	// 1. Three points: A(0,0), B(3,0), C(3,4).
	pts := []geom.Point{
		{X: 0, Y: 0},
		{X: 3, Y: 0},
		{X: 3, Y: 4},
	}

	// 2. Run Kruskal over the complete graph on the indices 0..2.
	res, err := kruskal.Compute(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total cost and the accepted edges.
	fmt.Printf("total cost: %d\n", res.Total)
	for _, e := range res.Edges {
		fmt.Printf("%d-%d (%d)\n", e.U, e.V, e.Cost)
	}
	// Output:
	// total cost: 7
	// 0-1 (3)
	// 1-2 (4)
}
