// Package silhouette - mean silhouette coefficient kernel.
//
// Single-function numeric kernel with strict sentinel errors; see
// doc.go for the metric definition.
package silhouette

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by Score.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("silhouette: no points")

	// ErrLengthMismatch indicates len(points) != len(labels).
	ErrLengthMismatch = errors.New("silhouette: points and labels length mismatch")

	// ErrSingleCluster indicates fewer than two distinct labels.
	// The silhouette is undefined for a single cluster; callers must
	// never receive a numeric value for k=1.
	ErrSingleCluster = errors.New("silhouette: silhouette is undefined for fewer than two clusters")

	// ErrDimensionMismatch indicates ragged input rows.
	ErrDimensionMismatch = errors.New("silhouette: dimension mismatch")

	// ErrBadLabel indicates a negative cluster label.
	ErrBadLabel = errors.New("silhouette: labels must be non-negative")
)

// Score computes the mean silhouette coefficient over all points.
//
// Contracts:
//   - points must be non-empty and rectangular; labels same length,
//     non-negative.
//   - At least two distinct labels must be present, otherwise
//     ErrSingleCluster.
//   - Deterministic: identical input yields an identical score.
//
// Complexity: O(n² · d) time, O(n + k) space.
func Score(points [][]float64, labels []int) (float64, error) {
	n := len(points)
	if n == 0 {
		return 0, ErrNoPoints
	}
	if len(labels) != n {
		return 0, fmt.Errorf("%w: %d points, %d labels", ErrLengthMismatch, n, len(labels))
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: row %d has dim %d, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
	}

	// Cluster sizes, indexed by label.
	maxLabel := 0
	for i, l := range labels {
		if l < 0 {
			return 0, fmt.Errorf("%w: label %d at index %d", ErrBadLabel, l, i)
		}
		if l > maxLabel {
			maxLabel = l
		}
	}
	sizes := make([]int, maxLabel+1)
	distinct := 0
	for _, l := range labels {
		if sizes[l] == 0 {
			distinct++
		}
		sizes[l]++
	}
	if distinct < 2 {
		return 0, ErrSingleCluster
	}

	// Per-point silhouette via mean distance to every cluster.
	sums := make([]float64, maxLabel+1)
	total := 0.0
	for i, p := range points {
		for j := range sums {
			sums[j] = 0
		}
		for j, q := range points {
			if i == j {
				continue
			}
			sums[labels[j]] += floats.Distance(p, q, 2)
		}

		own := labels[i]
		if sizes[own] == 1 {
			// Singleton cluster: s(i) = 0 by convention.
			continue
		}

		a := sums[own] / float64(sizes[own]-1)
		b := minOtherMean(sums, sizes, own)
		if m := max(a, b); m > 0 {
			total += (b - a) / m
		}
	}

	return total / float64(n), nil
}

// minOtherMean returns the lowest mean distance to a non-own, non-empty
// cluster. At least one exists because distinct >= 2.
func minOtherMean(sums []float64, sizes []int, own int) float64 {
	best := -1.0
	for l, size := range sizes {
		if l == own || size == 0 {
			continue
		}
		mean := sums[l] / float64(size)
		if best < 0 || mean < best {
			best = mean
		}
	}
	return best
}
