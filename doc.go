// Package rfmseg is an in-memory toolkit for RFM customer segmentation —
// from raw transactions to profiled clusters and stable scoring of
// future customers.
//
// 🚀 What is rfmseg?
//
//	A deterministic pipeline that brings together:
//		• RFM aggregation: reduce transactions to Recency / Frequency / Monetary per customer
//		• Feature scaling: log1p + z-scoring with explicit, reusable fitted parameters
//		• Seeded k-means: multi-init k-means++ with a fixed seed and reproducible labels
//		• Diagnostics: inertia + silhouette curves across candidate cluster counts
//		• Profiling: per-cluster mean RFM and population size for interpretation
//		• Scoring: classify new customers against persisted scaler + centroid artifacts
//
// ✨ Why choose rfmseg?
//
//   - Reproducible – explicit seeds everywhere, no hidden global state
//   - Exact money math – monetary sums use decimal arithmetic, not float drift
//   - Composable – each stage is a pure function of inputs plus returned fitted params
//   - Honest diagnostics – k selection stays with you; the library shows the curves
//
// Everything is organized under focused subpackages:
//
//	rfm/        — Transaction and Record types, ingestion validation, RFM aggregation
//	scale/      — feature transformer (fit / transform-only) with persisted Params
//	kmeans/     — seeded multi-init k-means, predict-only Model, centroid Restore
//	silhouette/ — silhouette score with strict single-cluster rejection
//	kselect/    — cluster-count sweep producing inertia & silhouette per k
//	segment/    — end-to-end pipeline, cluster profiles, artifacts, new-customer scoring
//	cmd/rfmseg  — CSV-in / CSV-out command-line runner
//
// Quick sketch:
//
//	transactions ─▶ rfm.Aggregate ─▶ scale.FitTransform ─▶ kselect.Sweep (inspect k)
//	                                         │
//	                                         ▼
//	                           kmeans.Fit ─▶ segment.ProfileClusters
//
// Dive into segment/example_test.go for a full end-to-end walkthrough.
//
//	go get github.com/katalvlaran/rfmseg
package rfmseg
