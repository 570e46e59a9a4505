// Package rfm - core types, sentinel errors and aggregation options.
//
// This file defines:
//   - Transaction / Record value types,
//   - RowPolicy for invalid-row handling,
//   - sentinel errors shared by the aggregator,
//   - functional Options in the usual WithX form.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit clock reads
//     beyond the documented snapshot default.
//   - Exact money: decimal.Decimal end-to-end; floats appear only after
//     the scale package takes over.
//   - Strict sentinels: callers branch with errors.Is, never string
//     matching.
package rfm

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by Aggregate.
var (
	// ErrNoTransactions indicates an empty input batch, or a batch in
	// which every row was dropped under the DropRows policy.
	ErrNoTransactions = errors.New("rfm: no transactions to aggregate")

	// ErrInvalidRow indicates a malformed transaction row (empty
	// customer id, zero order date, or negative order total). Wrapped
	// with the offending row index and reason.
	ErrInvalidRow = errors.New("rfm: invalid transaction row")

	// ErrSnapshotNotAfter indicates that the snapshot date is not
	// strictly after every order date in the batch. Recency must never
	// be negative, so this is fatal under every row policy.
	ErrSnapshotNotAfter = errors.New("rfm: snapshot date must be strictly after every order date")
)

// RowPolicy controls what Aggregate does with an invalid transaction row.
//
// RejectBatch – fail the whole batch with ErrInvalidRow (default).
//
//	Silent partial aggregation corrupts Frequency and Monetary,
//	so the safe policy is the loud one.
//
// DropRows – skip invalid rows and aggregate the rest.
//
//	Opt-in for callers that pre-validate upstream and prefer
//	degraded output over a hard stop.
type RowPolicy int

const (
	// RejectBatch fails the entire batch on the first invalid row.
	RejectBatch RowPolicy = iota

	// DropRows skips invalid rows and aggregates the remainder.
	DropRows
)

// snapshotGrace is the default headroom added to the latest order date
// when no explicit snapshot is supplied: max(order_date) + 24h keeps
// Recency strictly non-negative for the most recent purchaser.
const snapshotGrace = 24 * time.Hour

// hoursPerDay converts a duration into whole-day Recency units.
const hoursPerDay = 24

// Transaction is a single purchase event. Immutable: created by the
// ingesting caller, never mutated by this package.
type Transaction struct {
	// CustomerID is an opaque, caller-supplied customer identifier.
	CustomerID string

	// OrderDate is the purchase timestamp.
	OrderDate time.Time

	// OrderTotal is the purchase amount. Must be non-negative;
	// negative totals fail row validation.
	OrderTotal decimal.Decimal
}

// Record is the per-customer RFM summary derived from a transaction
// batch. One Record per distinct CustomerID; recomputed wholesale on
// every Aggregate call.
type Record struct {
	// CustomerID matches the Transaction identifier verbatim.
	CustomerID string

	// Recency is the whole number of days between the snapshot date
	// and the customer's most recent order. Always >= 0.
	Recency int

	// Frequency is the customer's transaction count. Always >= 1.
	Frequency int

	// Monetary is the exact decimal sum of the customer's order totals.
	Monetary decimal.Decimal
}

// Options configures Aggregate.
//
// Snapshot  – reference date for Recency. Zero value means "derive the
//
//	default": max(order_date) + 24h.
//
// RowPolicy – invalid-row handling; RejectBatch by default.
type Options struct {
	Snapshot  time.Time
	RowPolicy RowPolicy
}

// Option is a functional option for configuring Aggregate.
type Option func(*Options)

// WithSnapshot sets an explicit snapshot date for Recency computation.
// The date must be strictly after every order date in the batch;
// violations surface as ErrSnapshotNotAfter from Aggregate.
func WithSnapshot(t time.Time) Option {
	return func(o *Options) {
		o.Snapshot = t
	}
}

// WithRowPolicy selects the invalid-row handling policy.
// Values outside the declared RowPolicy constants panic: an unknown
// policy is a programmer error, not a data error.
func WithRowPolicy(p RowPolicy) Option {
	return func(o *Options) {
		if p != RejectBatch && p != DropRows {
			panic("rfm: unknown RowPolicy")
		}
		o.RowPolicy = p
	}
}

// DefaultOptions returns the Options used when no overrides are given:
// derived snapshot (max order date + 24h) and the RejectBatch policy.
func DefaultOptions() Options {
	return Options{
		Snapshot:  time.Time{},
		RowPolicy: RejectBatch,
	}
}
