// Package rfm - batch RFM aggregation.
//
// Aggregate is the single entry point: validate rows, resolve the
// snapshot date, reduce per customer, emit sorted Records.
//
// Stages:
//  1. Validate  – apply the RowPolicy to malformed rows.
//  2. Snapshot  – explicit snapshot, or max(order_date) + 24h.
//  3. Temporal  – snapshot must be strictly after every order date.
//  4. Reduce    – last order date, count, exact decimal sum per customer.
//  5. Emit      – Records sorted by CustomerID for stable output.
package rfm

import (
	"fmt"
	"sort"
	"time"
)

// Aggregate reduces a transaction batch into one Record per distinct
// customer. The input order is irrelevant; the output is sorted by
// CustomerID ascending.
//
// Contracts:
//   - Every customer id present in (valid) input appears in exactly one
//     Record; customers with zero transactions never appear.
//   - Recency >= 0 for every Record, or the call fails with
//     ErrSnapshotNotAfter.
//   - Monetary is the exact decimal sum of the customer's order totals.
//
// Errors: ErrNoTransactions, ErrInvalidRow (RejectBatch policy),
// ErrSnapshotNotAfter.
//
// Complexity: O(T) reduction + O(C log C) sort for T transactions and
// C distinct customers.
func Aggregate(txns []Transaction, opts ...Option) ([]Record, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if len(txns) == 0 {
		return nil, ErrNoTransactions
	}

	// Stage 1 - row validation under the configured policy.
	valid := make([]Transaction, 0, len(txns))
	for i, tx := range txns {
		if reason := validateRow(tx); reason != "" {
			if options.RowPolicy == RejectBatch {
				return nil, fmt.Errorf("%w: row %d: %s", ErrInvalidRow, i, reason)
			}
			continue // DropRows
		}
		valid = append(valid, tx)
	}
	if len(valid) == 0 {
		return nil, ErrNoTransactions
	}

	// Stage 2 - resolve the snapshot date.
	snapshot := options.Snapshot
	if snapshot.IsZero() {
		snapshot = maxOrderDate(valid).Add(snapshotGrace)
	}

	// Stage 3 - temporal invariant: snapshot strictly after every order.
	for _, tx := range valid {
		if !snapshot.After(tx.OrderDate) {
			return nil, fmt.Errorf("%w: snapshot %s, order %s (customer %s)",
				ErrSnapshotNotAfter,
				snapshot.Format(time.RFC3339), tx.OrderDate.Format(time.RFC3339), tx.CustomerID)
		}
	}

	// Stage 4 - per-customer reduction.
	byCustomer := make(map[string]*Record, len(valid))
	lastOrder := make(map[string]time.Time, len(valid))
	for _, tx := range valid {
		rec, ok := byCustomer[tx.CustomerID]
		if !ok {
			rec = &Record{CustomerID: tx.CustomerID}
			byCustomer[tx.CustomerID] = rec
		}
		rec.Frequency++
		rec.Monetary = rec.Monetary.Add(tx.OrderTotal)
		if tx.OrderDate.After(lastOrder[tx.CustomerID]) {
			lastOrder[tx.CustomerID] = tx.OrderDate
		}
	}

	// Stage 5 - emit sorted Records with whole-day Recency.
	records := make([]Record, 0, len(byCustomer))
	for id, rec := range byCustomer {
		rec.Recency = wholeDays(snapshot.Sub(lastOrder[id]))
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CustomerID < records[j].CustomerID
	})

	return records, nil
}

// validateRow returns an empty string for a well-formed row, or a short
// human-readable reason for the validation failure.
func validateRow(tx Transaction) string {
	if tx.CustomerID == "" {
		return "empty customer id"
	}
	if tx.OrderDate.IsZero() {
		return "zero order date"
	}
	if tx.OrderTotal.IsNegative() {
		return "negative order total " + tx.OrderTotal.String()
	}
	return ""
}

// maxOrderDate returns the latest order date in a non-empty batch.
func maxOrderDate(txns []Transaction) time.Time {
	latest := txns[0].OrderDate
	for _, tx := range txns[1:] {
		if tx.OrderDate.After(latest) {
			latest = tx.OrderDate
		}
	}
	return latest
}

// wholeDays truncates a positive duration to whole 24h days.
func wholeDays(d time.Duration) int {
	return int(d.Hours()) / hoursPerDay
}
