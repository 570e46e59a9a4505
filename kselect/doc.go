// Package kselect sweeps candidate cluster counts and surfaces the two
// standard k-selection diagnostics — inertia (elbow curve) and mean
// silhouette score — for every k in a caller-supplied range.
//
// The package deliberately does NOT choose k. Elbow detection has no
// single correct algorithmic answer; the right k is a judgment call for
// a human or a downstream heuristic. Sweep exposes the diagnostic,
// not a decision.
//
// ✨ Key features:
//   - one Diagnostics row per candidate k (ascending), each computed by
//     a seeded multi-init k-means fit plus a silhouette pass
//   - k = 1 candidates are rejected up front with ErrKTooSmall: the
//     silhouette is undefined there and must never chart as a number
//   - optional bounded parallelism across candidates; every candidate
//     is an independent pure computation on its own derived RNG
//     streams, so parallel and sequential sweeps are bit-identical
//
// ⚙️ Usage:
//
//	diags, err := kselect.Sweep(points, 2, 10,
//	    kselect.WithSeed(42),
//	    kselect.WithParallelism(4),
//	)
//	for _, d := range diags {
//	    fmt.Printf("k=%d inertia=%.3f silhouette=%.3f\n", d.K, d.Inertia, d.Silhouette)
//	}
//
// Errors (sentinel):
//
//	– ErrKTooSmall if kMin < 2.
//	– ErrBadRange  if kMax < kMin.
//	– kmeans errors (e.g. kmeans.ErrTooFewPoints) wrapped with the
//	  offending k.
//
// Performance: one full k-means fit per candidate; silhouette adds
// O(n²·d) per candidate. Parallelism trades CPU for wall time without
// affecting results (determinism takes precedence over speed-up).
package kselect
