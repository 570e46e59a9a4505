package silhouette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfmseg/silhouette"
)

// TestScore_SingleClusterRejected verifies the core contract: the
// silhouette is undefined for one cluster and must never come back as
// a number.
func TestScore_SingleClusterRejected(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}, {2, 2}}

	_, err := silhouette.Score(points, []int{0, 0, 0})
	assert.ErrorIs(t, err, silhouette.ErrSingleCluster, "k=1 labeling must error, not score")
}

// TestScore_WellSeparatedNearOne checks that two tight, distant blobs
// score close to 1.
func TestScore_WellSeparatedNearOne(t *testing.T) {
	points := [][]float64{
		{0.0, 0.0}, {0.1, 0.0}, {0.0, 0.1},
		{10.0, 10.0}, {10.1, 10.0}, {10.0, 10.1},
	}
	labels := []int{0, 0, 0, 1, 1, 1}

	s, err := silhouette.Score(points, labels)
	require.NoError(t, err)
	assert.Greater(t, s, 0.9, "tight distant blobs must score near 1, got %f", s)
	assert.LessOrEqual(t, s, 1.0, "silhouette is bounded by 1")
}

// TestScore_BadClusteringGoesNegative checks that labels crossing the
// true blobs drag the score below the well-separated one.
func TestScore_BadClusteringGoesNegative(t *testing.T) {
	points := [][]float64{
		{0.0, 0.0}, {0.1, 0.0},
		{10.0, 10.0}, {10.1, 10.0},
	}
	// Deliberately mismatched: each cluster holds one point from each blob.
	labels := []int{0, 1, 0, 1}

	s, err := silhouette.Score(points, labels)
	require.NoError(t, err)
	assert.Less(t, s, 0.0, "cross-blob labeling must score negative, got %f", s)
}

// TestScore_SingletonClustersAreZero verifies the conventional
// extension: two singleton clusters yield a zero score.
func TestScore_SingletonClustersAreZero(t *testing.T) {
	points := [][]float64{{0, 0}, {5, 5}}
	labels := []int{0, 1}

	s, err := silhouette.Score(points, labels)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "singleton clusters contribute 0 by convention")
}

// TestScore_InputValidation covers the structural error paths.
func TestScore_InputValidation(t *testing.T) {
	_, err := silhouette.Score(nil, nil)
	assert.ErrorIs(t, err, silhouette.ErrNoPoints, "empty input must error")

	_, err = silhouette.Score([][]float64{{0, 0}}, []int{0, 1})
	assert.ErrorIs(t, err, silhouette.ErrLengthMismatch, "length mismatch must error")

	_, err = silhouette.Score([][]float64{{0, 0}, {1}}, []int{0, 1})
	assert.ErrorIs(t, err, silhouette.ErrDimensionMismatch, "ragged rows must error")

	_, err = silhouette.Score([][]float64{{0, 0}, {1, 1}}, []int{0, -1})
	assert.ErrorIs(t, err, silhouette.ErrBadLabel, "negative labels must error")
}

// TestScore_Deterministic verifies identical input yields an identical
// score.
func TestScore_Deterministic(t *testing.T) {
	points := [][]float64{
		{0, 0}, {1, 0}, {0, 1},
		{8, 8}, {9, 8}, {8, 9},
	}
	labels := []int{0, 0, 0, 1, 1, 1}

	s1, err := silhouette.Score(points, labels)
	require.NoError(t, err)
	s2, err := silhouette.Score(points, labels)
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "score must be deterministic")
}
