// Package segment wires the pipeline end to end: transactions in,
// profiled customer clusters out, plus the persistable artifacts needed
// to score future customers against a stable baseline.
//
// 🚀 The pipeline:
//
//	transactions
//	   │  rfm.Aggregate        (recency / frequency / monetary)
//	   ▼
//	records
//	   │  scale.FitTransform   (log1p + z-score, Params returned)
//	   ▼
//	vectors
//	   │  kmeans.Fit           (seeded multi-init k-means++)
//	   ▼
//	assignments ──▶ ProfileClusters (mean RFM + size per cluster)
//
// ✨ Key features:
//   - Run executes the whole pipeline from one Config; every fitted
//     parameter (scaler stats, centroids) is returned in Artifacts —
//     nothing is cached in package state
//   - ProfileClusters is a strict grouped aggregation: an assignment
//     referencing an unknown customer, or a record left unassigned,
//     fails loudly instead of silently dropping rows
//   - ScoreNew classifies new customers with the frozen scaler and
//     centroids — transform-only plus predict-only, no refit
//   - Artifacts round-trip through JSON via SaveArtifacts/LoadArtifacts
//   - optional zerolog progress logging; zerolog.Nop() by default
//
// ⚙️ Usage:
//
//	cfg := segment.DefaultConfig(4)
//	cfg.Seed = 42
//	res, err := segment.Run(txns, cfg)
//	...
//	var buf bytes.Buffer
//	_ = segment.SaveArtifacts(&buf, res.Artifacts)
//	...
//	arts, _ := segment.LoadArtifacts(&buf)
//	asgs, err := segment.ScoreNew(arts, newRecords)
//
// The k in Config is caller-supplied on purpose: inspect
// kselect.Sweep diagnostics first, then decide.
package segment
