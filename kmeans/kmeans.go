// Package kmeans - seeded multi-init k-means (k-means++ / Lloyd).
//
// Fit pipeline:
//
//	Stage 1 - validate points and Options (fail before any work).
//	Stage 2 - for each restart r in 0..NumInit-1:
//	            seed centroids with k-means++ on stream (Seed, r),
//	            run Lloyd iterations until labels stabilize or the
//	            iteration cap is hit, compute inertia.
//	Stage 3 - keep the restart with the lowest inertia (ties: lowest
//	          restart index), so results are independent of restart
//	          execution order.
//
// Empty clusters (possible on pathological inputs) are repaired by
// moving the centroid onto the point currently farthest from its
// assigned centroid; the repair scan order is fixed, preserving
// determinism.
package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Fit clusters points into opts-configured K groups.
//
// Contracts:
//   - points must be non-empty and rectangular (equal row lengths).
//   - 1 <= K <= len(points); violations fail with ErrBadK or
//     ErrTooFewPoints before any clustering begins.
//   - Re-running with identical points and Options yields an identical
//     Model (labels, centroids, inertia).
//
// Errors: ErrNoPoints, ErrBadK, ErrTooFewPoints, ErrDimensionMismatch.
//
// Complexity: O(NumInit · MaxIterations · n · K · d) worst case.
func Fit(points [][]float64, k int, opts ...Option) (*Model, error) {
	options := DefaultOptions(k)
	for _, opt := range opts {
		opt(&options)
	}
	return FitWithOptions(points, options)
}

// FitWithOptions is Fit with a fully materialized Options value.
// Useful when the caller threads one Options through several fits
// (e.g. the kselect sweep).
func FitWithOptions(points [][]float64, options Options) (*Model, error) {
	// Stage 1 - validation.
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if options.K < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, options.K)
	}
	if len(points) < options.K {
		return nil, fmt.Errorf("%w: %d points, k=%d", ErrTooFewPoints, len(points), options.K)
	}
	if options.NumInit <= 0 {
		options.NumInit = DefaultNumInit
	}
	if options.MaxIterations <= 0 {
		options.MaxIterations = DefaultMaxIterations
	}

	// Stage 2/3 - independent restarts, best inertia wins.
	best := &Model{Inertia: math.Inf(1)}
	for restart := 0; restart < options.NumInit; restart++ {
		rng := restartRNG(options.Seed, restart)
		m := runLloyd(points, options.K, dim, options.MaxIterations, rng)
		if m.Inertia < best.Inertia {
			best = m
		}
	}

	return best, nil
}

// Predict assigns each point to the nearest fitted centroid by
// Euclidean distance, without retraining. Use it to segment new
// customers against a stable baseline.
//
// Errors: ErrNotFitted, ErrNoPoints, ErrDimensionMismatch.
//
// Complexity: O(n · K · d).
func (m *Model) Predict(points [][]float64) ([]int, error) {
	if m == nil || len(m.Centroids) == 0 {
		return nil, ErrNotFitted
	}
	dim, err := validatePoints(points)
	if err != nil {
		return nil, err
	}
	if dim != len(m.Centroids[0]) {
		return nil, fmt.Errorf("%w: point dim %d, centroid dim %d",
			ErrDimensionMismatch, dim, len(m.Centroids[0]))
	}

	labels := make([]int, len(points))
	for i, p := range points {
		labels[i], _ = nearest(p, m.Centroids)
	}
	return labels, nil
}

// Restore rebuilds a predict-only Model from a persisted centroid set.
// The result has no training labels and zero inertia; it exists purely
// to classify future points consistently with the original fit.
//
// Errors: ErrNoPoints (empty centroid set), ErrDimensionMismatch
// (ragged centroids).
func Restore(centroids [][]float64) (*Model, error) {
	if _, err := validatePoints(centroids); err != nil {
		return nil, err
	}
	copied := make([][]float64, len(centroids))
	for i, c := range centroids {
		copied[i] = append([]float64(nil), c...)
	}
	return &Model{Centroids: copied}, nil
}

// validatePoints checks for a non-empty rectangular point set and
// returns the shared dimensionality.
func validatePoints(points [][]float64) (int, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}
	dim := len(points[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: zero-dimensional points", ErrDimensionMismatch)
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: row %d has dim %d, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
	}
	return dim, nil
}

// runLloyd performs one restart: k-means++ seeding plus Lloyd
// iterations until labels stabilize or maxIter is reached.
func runLloyd(points [][]float64, k, dim, maxIter int, rng *rand.Rand) *Model {
	centroids := seedPlusPlus(points, k, rng)
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	counts := make([]int, k)
	for iter := 0; iter < maxIter; iter++ {
		// Assignment step.
		changed := false
		for i, p := range points {
			j, _ := nearest(p, centroids)
			if labels[i] != j {
				labels[i] = j
				changed = true
			}
		}
		if !changed {
			break
		}

		// Update step: centroid = mean of assigned points.
		for j := range centroids {
			for d := 0; d < dim; d++ {
				centroids[j][d] = 0
			}
			counts[j] = 0
		}
		for i, p := range points {
			floats.Add(centroids[labels[i]], p)
			counts[labels[i]]++
		}
		for j := range centroids {
			if counts[j] == 0 {
				// Empty cluster: adopt the point farthest from its centroid.
				centroids[j] = append([]float64(nil), points[farthestPoint(points, labels, centroids)]...)
				continue
			}
			floats.Scale(1/float64(counts[j]), centroids[j])
		}
	}

	return &Model{
		Centroids: centroids,
		Labels:    labels,
		Inertia:   inertia(points, labels, centroids),
	}
}

// seedPlusPlus selects k initial centroids with the k-means++ scheme:
// first uniformly at random, each next proportional to the squared
// distance from the nearest already-chosen centroid.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, append([]float64(nil), points[rng.Intn(len(points))]...))

	d2 := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			_, d := nearest(p, centroids)
			d2[i] = d * d
			total += d2[i]
		}
		if total == 0 {
			// All points coincide with chosen centroids; duplicate the
			// first point deterministically.
			centroids = append(centroids, append([]float64(nil), points[0]...))
			continue
		}
		target := rng.Float64() * total
		idx := len(points) - 1
		cum := 0.0
		for i := range points {
			cum += d2[i]
			if cum >= target {
				idx = i
				break
			}
		}
		centroids = append(centroids, append([]float64(nil), points[idx]...))
	}

	return centroids
}

// nearest returns the index of the closest centroid and the Euclidean
// distance to it. Ties break toward the lower index (fixed scan order).
func nearest(p []float64, centroids [][]float64) (int, float64) {
	bestIdx, bestDist := 0, math.Inf(1)
	for j, c := range centroids {
		if d := floats.Distance(p, c, 2); d < bestDist {
			bestIdx, bestDist = j, d
		}
	}
	return bestIdx, bestDist
}

// inertia is the sum of squared point-to-assigned-centroid distances.
func inertia(points [][]float64, labels []int, centroids [][]float64) float64 {
	total := 0.0
	for i, p := range points {
		d := floats.Distance(p, centroids[labels[i]], 2)
		total += d * d
	}
	return total
}

// farthestPoint returns the index of the point with the maximum
// distance to its assigned centroid (first maximum wins).
func farthestPoint(points [][]float64, labels []int, centroids [][]float64) int {
	bestIdx, bestDist := 0, -1.0
	for i, p := range points {
		if d := floats.Distance(p, centroids[labels[i]], 2); d > bestDist {
			bestIdx, bestDist = i, d
		}
	}
	return bestIdx
}
