// Package rfm turns raw purchase transactions into per-customer
// RFM records: Recency, Frequency and Monetary value.
//
// 🚀 What is RFM?
//
//	RFM is the classic behavioral summary used for customer
//	segmentation:
//	  • Recency   – whole days between a snapshot date and the
//	    customer's most recent purchase
//	  • Frequency – number of purchases the customer has made
//	  • Monetary  – exact sum of the customer's order totals
//
// ✨ Key features:
//   - batch aggregation: one Record per distinct customer, recomputed
//     wholesale on every call (no incremental state)
//   - exact money math: Monetary is a decimal sum, never a float
//   - explicit snapshot date with a documented default
//     (latest order date + 24h)
//   - configurable invalid-row policy: reject the whole batch
//     (default) or drop offending rows
//   - deterministic output: Records sorted by CustomerID ascending
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rfmseg/rfm"
//
//	records, err := rfm.Aggregate(txns,
//	    rfm.WithSnapshot(snapshot),        // must be after every order date
//	    rfm.WithRowPolicy(rfm.DropRows),   // default is RejectBatch
//	)
//
// Errors (sentinel):
//
//	– ErrNoTransactions  if the input batch is empty (or fully dropped).
//	– ErrInvalidRow      if a row fails validation under RejectBatch.
//	– ErrSnapshotNotAfter if the snapshot date is not strictly after
//	  every order date (Recency must never be negative). Fatal under
//	  every row policy.
//
// Complexity: O(T + C log C) time for T transactions and C distinct
// customers, O(C) extra space.
package rfm
