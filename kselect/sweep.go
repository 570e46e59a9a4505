// Package kselect - cluster-count sweep over inertia and silhouette.
//
// Each candidate k runs an independent kmeans.FitWithOptions with the
// shared seed; the per-restart RNG streams are derived inside kmeans,
// so candidates may execute in any order or concurrently with results
// identical to a sequential sweep.
package kselect

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rfmseg/kmeans"
	"github.com/katalvlaran/rfmseg/silhouette"
)

// Sentinel errors returned by Sweep.
var (
	// ErrKTooSmall indicates kMin < 2. The silhouette score is
	// undefined for a single cluster, so k=1 is rejected rather than
	// silently charted.
	ErrKTooSmall = errors.New("kselect: kMin must be at least 2")

	// ErrBadRange indicates kMax < kMin.
	ErrBadRange = errors.New("kselect: kMax must be >= kMin")
)

// DefaultParallelism runs the sweep sequentially unless overridden.
const DefaultParallelism = 1

// Diagnostics holds the k-selection metrics for one candidate count.
type Diagnostics struct {
	// K is the candidate cluster count.
	K int

	// Inertia is the winning restart's sum of squared distances to
	// assigned centroids (the elbow-curve value).
	Inertia float64

	// Silhouette is the mean silhouette score of the winning restart's
	// assignment, in −1..1.
	Silhouette float64
}

// Options configures Sweep.
//
//	Seed        - forwarded to every kmeans fit; 0 selects the kmeans default seed.
//	NumInit     - init restarts per candidate (kmeans.DefaultNumInit).
//	Parallelism - max candidates evaluated concurrently; 1 = sequential.
type Options struct {
	Seed        int64
	NumInit     int
	Parallelism int
}

// Option is a functional option for configuring Sweep.
type Option func(*Options)

// WithSeed fixes the RNG seed shared by all candidate fits.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithNumInit sets init restarts per candidate.
// Must be positive; non-positive values panic.
func WithNumInit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("kselect: NumInit must be positive")
		}
		o.NumInit = n
	}
}

// WithParallelism bounds concurrent candidate evaluation.
// Must be positive; non-positive values panic. Results are identical
// for every parallelism level.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("kselect: Parallelism must be positive")
		}
		o.Parallelism = n
	}
}

// DefaultOptions returns the documented Sweep defaults.
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		NumInit:     kmeans.DefaultNumInit,
		Parallelism: DefaultParallelism,
	}
}

// Sweep evaluates every candidate k in [kMin, kMax] and returns one
// Diagnostics row per candidate, ascending by K.
//
// Contracts:
//   - kMin >= 2 (silhouette defined), kMax >= kMin.
//   - points constraints are those of kmeans.Fit; a candidate k that
//     exceeds len(points) fails the sweep with a wrapped
//     kmeans.ErrTooFewPoints naming the k.
//   - Deterministic: same points, range and Options yield identical
//     diagnostics at any parallelism level.
//
// Complexity: sum over candidates of one k-means fit + one O(n²·d)
// silhouette pass.
func Sweep(points [][]float64, kMin, kMax int, opts ...Option) ([]Diagnostics, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if kMin < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrKTooSmall, kMin)
	}
	if kMax < kMin {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadRange, kMin, kMax)
	}

	out := make([]Diagnostics, kMax-kMin+1)

	var g errgroup.Group
	g.SetLimit(options.Parallelism)
	for k := kMin; k <= kMax; k++ {
		k := k // per-iteration copy; required under the go 1.21 directive
		g.Go(func() error {
			d, err := evaluate(points, k, options)
			if err != nil {
				return err
			}
			out[k-kMin] = d // distinct slot per goroutine; no shared writes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// evaluate runs one candidate: seeded k-means fit plus silhouette.
func evaluate(points [][]float64, k int, options Options) (Diagnostics, error) {
	model, err := kmeans.FitWithOptions(points, kmeans.Options{
		K:       k,
		Seed:    options.Seed,
		NumInit: options.NumInit,
	})
	if err != nil {
		return Diagnostics{}, fmt.Errorf("kselect: k=%d: %w", k, err)
	}

	s, err := silhouette.Score(points, model.Labels)
	if err != nil {
		return Diagnostics{}, fmt.Errorf("kselect: k=%d: %w", k, err)
	}

	return Diagnostics{K: k, Inertia: model.Inertia, Silhouette: s}, nil
}
