// Package scale - fitted standardization over RFM feature space.
//
// This file holds the whole package: the Vector/Params types, the
// sentinel errors, and the Fit / Transform / FitTransform operations.
//
// Design goals:
//   - Deterministic: fixed traversal order, population statistics, no
//     randomness.
//   - Explicit state: the only thing carried between calls is the
//     returned Params value; there is no package-level cache.
//   - Round-trip friendly: Params is JSON-tagged so callers can persist
//     it next to fitted centroids and score new customers later.
package scale

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/rfmseg/rfm"
)

// Sentinel errors returned by Fit and Transform.
var (
	// ErrNoRecords indicates an empty input batch.
	ErrNoRecords = errors.New("scale: no records to transform")

	// ErrNotFitted indicates Transform was called on zero-value Params
	// (all stds zero), i.e. Params that never went through Fit.
	ErrNotFitted = errors.New("scale: params are not fitted")

	// ErrNegativeRecency indicates a record with Recency < 0.
	// rfm.Aggregate cannot produce one; this guards hand-built records.
	ErrNegativeRecency = errors.New("scale: record has negative recency")
)

// Feature dimension indices of a Vector, in wire order.
const (
	// DimRecency is the z-scored raw recency.
	DimRecency = 0

	// DimFrequency is the z-scored log1p(frequency).
	DimFrequency = 1

	// DimMonetary is the z-scored log1p(monetary).
	DimMonetary = 2

	// Dims is the feature-space dimensionality.
	Dims = 3
)

// Vector is a scaled feature vector (recency_z, frequency_log_z,
// monetary_log_z). Ephemeral: used only as clustering input.
type Vector [Dims]float64

// Slice returns the vector as a []float64 for numeric kernels.
func (v Vector) Slice() []float64 {
	return []float64{v[DimRecency], v[DimFrequency], v[DimMonetary]}
}

// Matrix converts a batch of Vectors into the [][]float64 shape
// consumed by the kmeans and silhouette packages.
func Matrix(vs []Vector) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Slice()
	}
	return out
}

// Params holds the fitted per-dimension statistics. Persist it (JSON)
// to re-apply the exact same transform to future customers.
type Params struct {
	// Mean holds per-dimension means over the fitted batch.
	Mean [Dims]float64 `json:"mean"`

	// Std holds per-dimension population standard deviations over the
	// fitted batch. A zero entry marks a constant dimension; Transform
	// divides by 1 for it.
	Std [Dims]float64 `json:"std"`

	fitted bool
}

// Fitted reports whether p was produced by Fit (or restored via
// Restore) rather than being a zero value.
func (p Params) Fitted() bool { return p.fitted }

// Restore marks externally loaded Params (e.g. decoded from JSON) as
// fitted. JSON round-trips lose the unexported flag; call Restore after
// decoding.
func Restore(mean, std [Dims]float64) Params {
	return Params{Mean: mean, Std: std, fitted: true}
}

// Fit computes per-dimension mean and population standard deviation
// over the batch and returns the fitted Params.
//
// Errors: ErrNoRecords, ErrNegativeRecency.
//
// Complexity: O(n) time, O(n) scratch space per dimension.
func Fit(records []rfm.Record) (Params, error) {
	raw, err := rawFeatures(records)
	if err != nil {
		return Params{}, err
	}

	var p Params
	for d := 0; d < Dims; d++ {
		col := make([]float64, len(records))
		for i := range records {
			col[i] = raw[i][d]
		}
		p.Mean[d] = stat.Mean(col, nil)
		p.Std[d] = stat.PopStdDev(col, nil)
	}
	p.fitted = true

	return p, nil
}

// Transform applies the fitted Params to a batch without refitting.
// Use this to score new customers against the statistics of the
// original segmentation batch.
//
// Errors: ErrNotFitted, ErrNoRecords, ErrNegativeRecency.
//
// Complexity: O(n).
func (p Params) Transform(records []rfm.Record) ([]Vector, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	raw, err := rawFeatures(records)
	if err != nil {
		return nil, err
	}

	out := make([]Vector, len(records))
	for i := range records {
		for d := 0; d < Dims; d++ {
			out[i][d] = (raw[i][d] - p.Mean[d]) / divisor(p.Std[d])
		}
	}

	return out, nil
}

// FitTransform fits Params on the batch and immediately transforms it.
// Equivalent to Fit followed by Transform, in one pass for the caller.
func FitTransform(records []rfm.Record) (Params, []Vector, error) {
	p, err := Fit(records)
	if err != nil {
		return Params{}, nil, err
	}
	vs, err := p.Transform(records)
	if err != nil {
		return Params{}, nil, err
	}
	return p, vs, nil
}

// rawFeatures maps records to the pre-standardization feature triple
// (recency, log1p(frequency), log1p(monetary)).
func rawFeatures(records []rfm.Record) ([]Vector, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	out := make([]Vector, len(records))
	for i, rec := range records {
		if rec.Recency < 0 {
			return nil, fmt.Errorf("%w: customer %s recency %d", ErrNegativeRecency, rec.CustomerID, rec.Recency)
		}
		out[i][DimRecency] = float64(rec.Recency)
		out[i][DimFrequency] = math.Log1p(float64(rec.Frequency))
		out[i][DimMonetary] = math.Log1p(rec.Monetary.InexactFloat64())
	}

	return out, nil
}

// divisor guards zero-variance dimensions: a constant feature is scaled
// by 1 so it maps to 0 rather than NaN.
func divisor(std float64) float64 {
	if std == 0 {
		return 1
	}
	return std
}
