package kmeans_test

import (
	"fmt"

	"github.com/katalvlaran/rfmseg/kmeans"
)

// ExampleFit clusters two obvious groups and classifies a new point
// without retraining.
func ExampleFit() {
	points := [][]float64{
		{0.0, 0.1}, {0.2, 0.0}, {0.1, 0.2}, // group near the origin
		{10.0, 10.1}, {10.2, 10.0}, {10.1, 10.2}, // group near (10,10)
	}

	model, err := kmeans.Fit(points, 2, kmeans.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Cluster ids themselves are arbitrary; the grouping is what holds.
	fmt.Println("origin group together:", model.Labels[0] == model.Labels[1] && model.Labels[1] == model.Labels[2])
	fmt.Println("far group together:", model.Labels[3] == model.Labels[4] && model.Labels[4] == model.Labels[5])
	fmt.Println("groups apart:", model.Labels[0] != model.Labels[3])

	// Predict-only path for a newcomer near the origin.
	labels, err := model.Predict([][]float64{{0.3, 0.3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("newcomer joins origin group:", labels[0] == model.Labels[0])

	// Output:
	// origin group together: true
	// far group together: true
	// groups apart: true
	// newcomer joins origin group: true
}
