package kselect_test

import (
	"fmt"

	"github.com/katalvlaran/rfmseg/kselect"
)

// ExampleSweep surveys candidate cluster counts; the metric values are
// for a human to chart, so only the candidate list is printed here.
func ExampleSweep() {
	points := [][]float64{
		{0.0, 0.0}, {0.2, 0.1}, {0.1, 0.3},
		{5.0, 5.1}, {5.2, 5.0}, {5.1, 5.2},
		{10.0, 0.1}, {10.2, 0.0}, {10.1, 0.2},
	}

	diags, err := kselect.Sweep(points, 2, 4, kselect.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, d := range diags {
		fmt.Printf("k=%d inertia>=0=%t silhouette in [-1,1]=%t\n",
			d.K, d.Inertia >= 0, d.Silhouette >= -1 && d.Silhouette <= 1)
	}
	// Output:
	// k=2 inertia>=0=true silhouette in [-1,1]=true
	// k=3 inertia>=0=true silhouette in [-1,1]=true
	// k=4 inertia>=0=true silhouette in [-1,1]=true
}
