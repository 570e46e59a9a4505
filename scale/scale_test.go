package scale_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rfmseg/rfm"
	"github.com/katalvlaran/rfmseg/scale"
)

// rec builds an RFM record from plain numbers.
func rec(id string, recency, frequency int, monetary string) rfm.Record {
	return rfm.Record{
		CustomerID: id,
		Recency:    recency,
		Frequency:  frequency,
		Monetary:   decimal.RequireFromString(monetary),
	}
}

// batch is a small, non-degenerate fitting batch shared by the tests.
func batch() []rfm.Record {
	return []rfm.Record{
		rec("a", 5, 3, "300"),
		rec("b", 200, 1, "20"),
		rec("c", 1, 10, "5000"),
		rec("d", 30, 2, "150"),
	}
}

// TestFitTransform_Deterministic verifies that identical input batches
// yield identical params and vectors.
func TestFitTransform_Deterministic(t *testing.T) {
	p1, v1, err := scale.FitTransform(batch())
	require.NoError(t, err)
	p2, v2, err := scale.FitTransform(batch())
	require.NoError(t, err)

	assert.Equal(t, p1.Mean, p2.Mean, "fitted means must be identical across runs")
	assert.Equal(t, p1.Std, p2.Std, "fitted stds must be identical across runs")
	assert.Equal(t, v1, v2, "scaled vectors must be identical across runs")
}

// TestFitTransform_ZeroMeanUnitVariance checks the standardization
// contract over the fitted batch (population statistics).
func TestFitTransform_ZeroMeanUnitVariance(t *testing.T) {
	_, vectors, err := scale.FitTransform(batch())
	require.NoError(t, err)

	n := float64(len(vectors))
	for d := 0; d < scale.Dims; d++ {
		sum, sumSq := 0.0, 0.0
		for _, v := range vectors {
			sum += v[d]
			sumSq += v[d] * v[d]
		}
		mean := sum / n
		variance := sumSq/n - mean*mean

		assert.InDelta(t, 0, mean, 1e-9, "dimension %d must be centered", d)
		assert.InDelta(t, 1, variance, 1e-9, "dimension %d must have unit variance", d)
	}
}

// TestTransform_ReusesFrozenParams verifies transform-only application:
// new records are scaled with the original batch statistics, not refit.
func TestTransform_ReusesFrozenParams(t *testing.T) {
	params, _, err := scale.FitTransform(batch())
	require.NoError(t, err)

	newcomer := rec("z", 10, 4, "400")
	got, err := params.Transform([]rfm.Record{newcomer})
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Manual application of the frozen statistics.
	raw := [scale.Dims]float64{
		10,
		math.Log1p(4),
		math.Log1p(400),
	}
	for d := 0; d < scale.Dims; d++ {
		want := (raw[d] - params.Mean[d]) / params.Std[d]
		assert.InDelta(t, want, got[0][d], 1e-12, "dimension %d must use frozen mean/std", d)
	}
}

// TestTransform_LogScalesSkewedDims verifies log1p is applied to
// frequency and monetary but not recency.
func TestTransform_LogScalesSkewedDims(t *testing.T) {
	params, err := scale.Fit(batch())
	require.NoError(t, err)

	// Recency mean is the arithmetic mean of raw values.
	assert.InDelta(t, (5+200+1+30)/4.0, params.Mean[scale.DimRecency], 1e-12,
		"recency stays untransformed before z-scoring")

	// Frequency mean is the mean of log1p values.
	wantFreq := (math.Log1p(3) + math.Log1p(1) + math.Log1p(10) + math.Log1p(2)) / 4
	assert.InDelta(t, wantFreq, params.Mean[scale.DimFrequency], 1e-12,
		"frequency must be log1p-scaled before z-scoring")
}

// TestFit_ZeroVarianceDimension checks that constant dimensions map to
// zero instead of NaN.
func TestFit_ZeroVarianceDimension(t *testing.T) {
	records := []rfm.Record{
		rec("a", 7, 2, "100"),
		rec("b", 7, 5, "900"),
	}

	_, vectors, err := scale.FitTransform(records)
	require.NoError(t, err)

	for i, v := range vectors {
		assert.Equal(t, 0.0, v[scale.DimRecency], "constant recency must map to 0 (row %d)", i)
		assert.False(t, math.IsNaN(v[scale.DimFrequency]), "no NaN leakage (row %d)", i)
	}
}

// TestTransform_NotFitted ensures zero-value Params are rejected.
func TestTransform_NotFitted(t *testing.T) {
	var p scale.Params
	_, err := p.Transform(batch())
	assert.ErrorIs(t, err, scale.ErrNotFitted, "zero-value params must be rejected")
}

// TestRestore_MarksFitted verifies that persisted stats round-trip into
// usable Params.
func TestRestore_MarksFitted(t *testing.T) {
	orig, err := scale.Fit(batch())
	require.NoError(t, err)

	restored := scale.Restore(orig.Mean, orig.Std)
	assert.True(t, restored.Fitted(), "restored params must be usable")

	v1, err := orig.Transform(batch())
	require.NoError(t, err)
	v2, err := restored.Transform(batch())
	require.NoError(t, err)
	assert.Equal(t, v1, v2, "restored params must transform identically")
}

// TestFit_EmptyBatch ensures an empty batch errors.
func TestFit_EmptyBatch(t *testing.T) {
	_, err := scale.Fit(nil)
	assert.ErrorIs(t, err, scale.ErrNoRecords, "empty batch must error")
}

// TestFit_NegativeRecency ensures hand-built records with negative
// recency are rejected.
func TestFit_NegativeRecency(t *testing.T) {
	_, err := scale.Fit([]rfm.Record{rec("a", -1, 1, "10")})
	assert.ErrorIs(t, err, scale.ErrNegativeRecency, "negative recency must error")
}
