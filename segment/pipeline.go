// Package segment - end-to-end pipeline runner.
//
// Run stages:
//  1. Aggregate – transactions → RFM records (rfm package).
//  2. Scale     – fit + transform to z-scored feature vectors.
//  3. Cluster   – seeded multi-init k-means with the configured k.
//  4. Profile   – per-cluster mean RFM and population size.
//  5. Artifacts – bundle fitted scaler stats and centroids.
//
// Every stage is a pure function of its inputs; the only state that
// survives the call is the explicitly returned Result.
package segment

import (
	"github.com/katalvlaran/rfmseg/kmeans"
	"github.com/katalvlaran/rfmseg/rfm"
	"github.com/katalvlaran/rfmseg/scale"
)

// Run executes the full segmentation pipeline.
//
// Contracts:
//   - Every customer id in the (valid) transaction batch appears in
//     exactly one Record and one Assignment.
//   - Re-running with identical transactions and Config yields an
//     identical Result.
//
// Errors: rfm aggregation errors, scale errors, kmeans errors
// (including kmeans.ErrTooFewPoints when K exceeds the distinct
// customer count), and profiling errors. All are deterministic and
// reproducible given the same input.
func Run(txns []rfm.Transaction, cfg Config) (*Result, error) {
	log := cfg.Logger

	// Stage 1 - RFM aggregation.
	rfmOpts := []rfm.Option{rfm.WithRowPolicy(cfg.RowPolicy)}
	if !cfg.Snapshot.IsZero() {
		rfmOpts = append(rfmOpts, rfm.WithSnapshot(cfg.Snapshot))
	}
	records, err := rfm.Aggregate(txns, rfmOpts...)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("transactions", len(txns)).Int("customers", len(records)).
		Msg("aggregated RFM records")

	// Stage 2 - feature scaling.
	params, vectors, err := scale.FitTransform(records)
	if err != nil {
		return nil, err
	}

	// Stage 3 - clustering.
	model, err := kmeans.FitWithOptions(scale.Matrix(vectors), kmeans.Options{
		K:       cfg.K,
		Seed:    cfg.Seed,
		NumInit: cfg.NumInit,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("k", cfg.K).Float64("inertia", model.Inertia).
		Msg("fitted k-means")

	assignments := make([]Assignment, len(records))
	for i, rec := range records {
		assignments[i] = Assignment{CustomerID: rec.CustomerID, Cluster: model.Labels[i]}
	}

	// Stage 4 - profiling.
	profiles, err := ProfileClusters(records, assignments)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		log.Info().Int("cluster", p.Cluster).Int("size", p.Size).
			Float64("mean_recency", p.MeanRecency).
			Float64("mean_frequency", p.MeanFrequency).
			Str("mean_monetary", p.MeanMonetary.String()).
			Msg("cluster profile")
	}

	// Stage 5 - artifacts.
	arts := Artifacts{
		ScalerMean: params.Mean,
		ScalerStd:  params.Std,
		Centroids:  model.Centroids,
		K:          cfg.K,
		Seed:       cfg.Seed,
		NumInit:    cfg.NumInit,
		Snapshot:   cfg.Snapshot,
	}

	return &Result{
		Records:     records,
		Assignments: assignments,
		Profiles:    profiles,
		Artifacts:   arts,
		Inertia:     model.Inertia,
	}, nil
}

// ScoreNew classifies new customers against a previously fitted
// baseline: transform-only scaling with the frozen Params, then
// nearest-centroid assignment. No refitting anywhere, so scores stay
// consistent with the original segmentation.
//
// Errors: ErrBadArtifacts, scale errors, kmeans errors.
func ScoreNew(arts Artifacts, records []rfm.Record) ([]Assignment, error) {
	if err := validateArtifacts(arts); err != nil {
		return nil, err
	}

	params := scale.Restore(arts.ScalerMean, arts.ScalerStd)
	vectors, err := params.Transform(records)
	if err != nil {
		return nil, err
	}

	model, err := kmeans.Restore(arts.Centroids)
	if err != nil {
		return nil, err
	}
	labels, err := model.Predict(scale.Matrix(vectors))
	if err != nil {
		return nil, err
	}

	out := make([]Assignment, len(records))
	for i, rec := range records {
		out[i] = Assignment{CustomerID: rec.CustomerID, Cluster: labels[i]}
	}
	return out, nil
}
