// Package kmeans provides a deterministic, seeded k-means clusterer
// with multi-init k-means++ seeding and a predict-only model for
// classifying future points without retraining.
//
// 🚀 What is k-means here?
//
//	Lloyd's algorithm over Euclidean space, wrapped for reproducibility:
//	  • k-means++ initialization on an explicit, fixed seed
//	  • NumInit independent restarts (default 10), each on its own
//	    SplitMix64-derived RNG stream — best inertia wins
//	  • ties broken by restart index, so restart execution order
//	    (sequential or parallel in the caller) never changes the result
//
// ✨ Key features:
//   - Fit returns the full Model: centroids, training labels, inertia
//   - Predict assigns new points to the nearest fitted centroid
//   - Restore rebuilds a predict-only Model from persisted centroids —
//     segment new customers against a stable baseline instead of
//     refitting
//   - degenerate inputs (fewer points than clusters) are rejected
//     before any clustering work begins
//
// ⚙️ Usage:
//
//	model, err := kmeans.Fit(points, 4,
//	    kmeans.WithSeed(42),
//	    kmeans.WithNumInit(10),
//	)
//	...
//	labels, err := model.Predict(newPoints) // no retraining
//
// Errors (sentinel):
//
//	– ErrNoPoints          empty point (or centroid) set.
//	– ErrBadK              k < 1.
//	– ErrTooFewPoints      fewer points than clusters.
//	– ErrDimensionMismatch ragged rows, or predict dim ≠ fit dim.
//	– ErrNotFitted         Predict on a model without centroids.
//
// Performance:
//
//   - Time:   O(NumInit · iterations · n · k · d)
//   - Memory: O(n + k·d)
package kmeans
