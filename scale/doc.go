// Package scale standardizes RFM records into clustering-ready feature
// vectors, with explicit fitted parameters for refit-free reuse.
//
// The transform is the usual one for right-skewed purchase data:
//
//	recency_z        = (recency - mean) / std
//	frequency_log_z  = (log1p(frequency) - mean) / std
//	monetary_log_z   = (log1p(monetary) - mean) / std
//
// log1p tames the long tails of Frequency and Monetary (and is defined
// at zero); Recency is already roughly linear and stays untransformed
// before z-scoring. Means and standard deviations are population
// statistics over the fitted batch.
//
// ✨ Key features:
//   - Fit returns Params (mean/std per dimension); no hidden state
//   - Transform applies frozen Params to new records without refitting,
//     keeping future-customer scoring consistent with the original
//     segmentation
//   - deterministic: identical input batches yield identical vectors
//   - zero-variance dimensions scale by 1, mapping constants to 0
//     instead of NaN
//
// ⚙️ Usage:
//
//	params, vectors, err := scale.FitTransform(records)
//	...
//	newVecs, err := params.Transform(newRecords) // no refit
//
// Errors (sentinel):
//
//	– ErrNoRecords       if the input batch is empty.
//	– ErrNotFitted       if Transform is called on zero-value Params.
//	– ErrNegativeRecency if a record carries Recency < 0.
package scale
