// Package kmeans - option surface, sentinel errors and the fitted Model.
//
// Design goals:
//   - Deterministic behavior: the seed and init count fully determine
//     the fit; no global state, no time-based randomness.
//   - Strict sentinels: only errors declared here; callers branch with
//     errors.Is.
//   - Safe by construction: option setters panic on nonsensical values
//     (programmer error), data problems surface as errors from Fit.
package kmeans

import "errors"

// Sentinel errors returned by Fit, Predict and Restore.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("kmeans: no points")

	// ErrBadK indicates a requested cluster count below 1.
	ErrBadK = errors.New("kmeans: k must be at least 1")

	// ErrTooFewPoints indicates fewer points than requested clusters.
	// Surfaced before any clustering work begins.
	ErrTooFewPoints = errors.New("kmeans: fewer points than clusters")

	// ErrDimensionMismatch indicates ragged input rows, or a predict
	// vector whose dimensionality differs from the fitted centroids.
	ErrDimensionMismatch = errors.New("kmeans: dimension mismatch")

	// ErrNotFitted indicates Predict on a Model without centroids.
	ErrNotFitted = errors.New("kmeans: model is not fitted")
)

// Documented defaults (single source of truth).
const (
	// DefaultNumInit is the number of independent initializations.
	// Each restart runs k-means++ seeding plus Lloyd iterations on its
	// own derived RNG stream; the restart with the lowest inertia wins.
	DefaultNumInit = 10

	// DefaultMaxIterations bounds Lloyd iterations per restart.
	// Convergence (no label changes) usually stops far earlier.
	DefaultMaxIterations = 100
)

// Options configures Fit.
//
// K             – number of clusters; 1 <= K <= len(points).
// Seed          – RNG seed; 0 means the fixed default seed (see rng.go).
// NumInit       – independent init restarts; best inertia wins.
// MaxIterations – Lloyd iteration cap per restart.
type Options struct {
	K             int
	Seed          int64
	NumInit       int
	MaxIterations int
}

// Option is a functional option for configuring Fit.
type Option func(*Options)

// WithSeed fixes the RNG seed. Seed 0 selects the package default seed,
// so every configuration remains fully deterministic.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithNumInit sets the number of independent initializations.
// Must be positive; non-positive values panic.
func WithNumInit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("kmeans: NumInit must be positive")
		}
		o.NumInit = n
	}
}

// WithMaxIterations caps Lloyd iterations per restart.
// Must be positive; non-positive values panic.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("kmeans: MaxIterations must be positive")
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns Options initialized with the documented
// defaults for the given cluster count. K itself is validated in Fit,
// not here.
func DefaultOptions(k int) Options {
	return Options{
		K:             k,
		Seed:          0,
		NumInit:       DefaultNumInit,
		MaxIterations: DefaultMaxIterations,
	}
}

// Model is the fitted clustering: centroids, training labels and the
// total inertia (sum of squared point-to-centroid distances).
//
// Persist Centroids to classify future points without retraining; see
// Restore.
type Model struct {
	// Centroids holds K mean vectors, index == cluster id.
	Centroids [][]float64

	// Labels holds the training assignment, Labels[i] in 0..K-1.
	// Nil on models rebuilt via Restore.
	Labels []int

	// Inertia is the sum of squared distances from each training point
	// to its assigned centroid. Zero on models rebuilt via Restore.
	Inertia float64
}
