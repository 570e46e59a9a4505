// Package silhouette computes the mean silhouette coefficient of a
// labeled point set — a clustering-quality metric comparing
// intra-cluster cohesion to inter-cluster separation.
//
// For each point i with cluster C(i):
//
//	a(i) = mean distance from i to the other members of C(i)
//	b(i) = lowest mean distance from i to the members of any other cluster
//	s(i) = (b(i) − a(i)) / max(a(i), b(i))
//
// Score returns the mean of s(i) over all points and ranges −1..1
// (higher is better). A point that is the sole member of its cluster
// has s(i) = 0 by the conventional extension (a(i) is undefined there).
//
// The silhouette is undefined when fewer than two distinct clusters are
// present: Score rejects such input with ErrSingleCluster instead of
// returning a meaningless number.
//
// ⚙️ Usage:
//
//	s, err := silhouette.Score(points, labels)
//	if errors.Is(err, silhouette.ErrSingleCluster) {
//	    // k=1 candidate: skip, do not chart
//	}
//
// Performance:
//
//   - Time:   O(n² · d) pairwise distances
//   - Memory: O(n + k)
//
// Deterministic: fixed traversal order, no randomness.
package silhouette
