package kselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/rfmseg/kmeans"
	"github.com/katalvlaran/rfmseg/kselect"
)

// TestMain verifies no goroutine leaks from the parallel sweep path.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// points returns three loose groups, enough structure for k in 2..4.
func points() [][]float64 {
	return [][]float64{
		{0.0, 0.0}, {0.2, 0.1}, {0.1, 0.3},
		{5.0, 5.1}, {5.2, 5.0}, {5.1, 5.2},
		{10.0, 0.1}, {10.2, 0.0}, {10.1, 0.2},
	}
}

// TestSweep_CoversRangeAscending verifies one Diagnostics row per
// candidate k, ascending, with sane metric values.
func TestSweep_CoversRangeAscending(t *testing.T) {
	diags, err := kselect.Sweep(points(), 2, 4, kselect.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, diags, 3, "one row per candidate k")

	for i, d := range diags {
		assert.Equal(t, 2+i, d.K, "candidates ascend from kMin")
		assert.GreaterOrEqual(t, d.Inertia, 0.0, "inertia is non-negative")
		assert.GreaterOrEqual(t, d.Silhouette, -1.0, "silhouette bounded below")
		assert.LessOrEqual(t, d.Silhouette, 1.0, "silhouette bounded above")
	}
}

// TestSweep_RejectsKOne verifies k=1 candidates fail up front with a
// specific error instead of a meaningless silhouette.
func TestSweep_RejectsKOne(t *testing.T) {
	_, err := kselect.Sweep(points(), 1, 4)
	assert.ErrorIs(t, err, kselect.ErrKTooSmall, "kMin=1 must be rejected")
}

// TestSweep_RejectsBadRange verifies kMax < kMin fails.
func TestSweep_RejectsBadRange(t *testing.T) {
	_, err := kselect.Sweep(points(), 3, 2)
	assert.ErrorIs(t, err, kselect.ErrBadRange, "inverted range must be rejected")
}

// TestSweep_DegenerateKSurfacesKmeansError verifies a candidate k
// beyond the point count fails the sweep with the underlying sentinel.
func TestSweep_DegenerateKSurfacesKmeansError(t *testing.T) {
	_, err := kselect.Sweep(points(), 2, 20)
	assert.ErrorIs(t, err, kmeans.ErrTooFewPoints, "k beyond point count must surface the kmeans sentinel")
}

// TestSweep_ParallelMatchesSequential verifies the determinism
// invariant: parallel execution yields results identical to sequential.
func TestSweep_ParallelMatchesSequential(t *testing.T) {
	seq, err := kselect.Sweep(points(), 2, 5,
		kselect.WithSeed(42),
	)
	require.NoError(t, err)

	par, err := kselect.Sweep(points(), 2, 5,
		kselect.WithSeed(42),
		kselect.WithParallelism(4),
	)
	require.NoError(t, err)

	assert.Equal(t, seq, par, "parallel sweep must be bit-identical to sequential")
}

// TestSweep_OptionPanics ensures nonsensical option values are treated
// as programmer errors.
func TestSweep_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { kselect.WithParallelism(0)(&kselect.Options{}) }, "Parallelism<=0 must panic")
	assert.Panics(t, func() { kselect.WithNumInit(-1)(&kselect.Options{}) }, "NumInit<=0 must panic")
}
