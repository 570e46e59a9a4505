package kmeans_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rfmseg/kmeans"
)

// benchPoints generates n points in dim dimensions around k loose
// centers, deterministically.
func benchPoints(n, dim, k int) [][]float64 {
	rng := rand.New(rand.NewSource(99))
	points := make([][]float64, n)
	for i := range points {
		center := float64(i % k * 10)
		p := make([]float64, dim)
		for d := range p {
			p[d] = center + rng.Float64()
		}
		points[i] = p
	}
	return points
}

// BenchmarkFit_500x3_K4 measures a typical RFM-sized fit:
// 500 customers, 3 features, 4 clusters, default init count.
func BenchmarkFit_500x3_K4(b *testing.B) {
	points := benchPoints(500, 3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmeans.Fit(points, 4, kmeans.WithSeed(42)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPredict_500x3 measures nearest-centroid classification of a
// full batch against a fitted model.
func BenchmarkPredict_500x3(b *testing.B) {
	points := benchPoints(500, 3, 4)
	model, err := kmeans.Fit(points, 4, kmeans.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := model.Predict(points); err != nil {
			b.Fatal(err)
		}
	}
}
