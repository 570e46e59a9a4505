// Package segment - pipeline configuration, result shapes and
// sentinel errors.
package segment

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/rfmseg/kmeans"
	"github.com/katalvlaran/rfmseg/rfm"
	"github.com/katalvlaran/rfmseg/scale"
)

// Sentinel errors returned by the profiler, Run and scoring.
var (
	// ErrUnknownCustomer indicates a cluster assignment referencing a
	// customer with no RFM record (join integrity violation). Fatal;
	// rows are never silently dropped.
	ErrUnknownCustomer = errors.New("segment: assignment references unknown customer")

	// ErrMissingAssignment indicates an RFM record without a cluster
	// assignment. Every customer must appear in exactly one of each.
	ErrMissingAssignment = errors.New("segment: record has no cluster assignment")

	// ErrDuplicateAssignment indicates a customer assigned more than once.
	ErrDuplicateAssignment = errors.New("segment: duplicate assignment for customer")

	// ErrNoAssignments indicates an empty assignment set.
	ErrNoAssignments = errors.New("segment: no assignments to profile")

	// ErrBadArtifacts indicates artifacts that fail structural
	// validation (no centroids, k mismatch, unfitted scaler).
	ErrBadArtifacts = errors.New("segment: invalid artifacts")
)

// Assignment pairs a customer with its cluster id. Cluster ids are the
// raw k-means label space 0..K-1; they carry no intrinsic ordering or
// meaning beyond what the profiles attach.
type Assignment struct {
	CustomerID string `json:"customer_id"`
	Cluster    int    `json:"cluster"`
}

// Profile is the per-cluster aggregate used for interpretation.
type Profile struct {
	// Cluster is the cluster id this row describes.
	Cluster int `json:"cluster"`

	// Size is the cluster population. Sizes across profiles sum to the
	// total number of customers.
	Size int `json:"size"`

	// MeanRecency and MeanFrequency are arithmetic means over members.
	MeanRecency   float64 `json:"mean_recency"`
	MeanFrequency float64 `json:"mean_frequency"`

	// MeanMonetary is the exact decimal mean of member monetary values.
	MeanMonetary decimal.Decimal `json:"mean_monetary"`
}

// Row is the external output contract: one customer with its cluster
// and RFM metrics, ready for handoff to reporting or marketing
// collaborators.
type Row struct {
	CustomerID string          `json:"customer_id"`
	Cluster    int             `json:"cluster"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
}

// Config parametrizes Run. All knobs are explicit; there is no
// package-level mutable state to configure.
type Config struct {
	// K is the cluster count. Caller-supplied by design: inspect
	// kselect.Sweep diagnostics first.
	K int

	// Seed is forwarded to kmeans; 0 selects the kmeans default seed.
	Seed int64

	// NumInit is the number of k-means init restarts
	// (kmeans.DefaultNumInit when zero).
	NumInit int

	// Snapshot is the RFM reference date; zero value derives
	// max(order_date) + 24h.
	Snapshot time.Time

	// RowPolicy controls invalid transaction rows (rfm.RejectBatch
	// default).
	RowPolicy rfm.RowPolicy

	// Logger receives progress events; zerolog.Nop() by default.
	Logger zerolog.Logger
}

// DefaultConfig returns a Config with the documented defaults for the
// given cluster count.
func DefaultConfig(k int) Config {
	return Config{
		K:         k,
		Seed:      0,
		NumInit:   kmeans.DefaultNumInit,
		RowPolicy: rfm.RejectBatch,
		Logger:    zerolog.Nop(),
	}
}

// Artifacts is the small fixed-shape record to persist after a run:
// everything needed to score new customers later without recomputing
// from the full historical batch, plus run provenance.
type Artifacts struct {
	// ScalerMean / ScalerStd are the fitted scale.Params statistics.
	ScalerMean [scale.Dims]float64 `json:"scaler_mean"`
	ScalerStd  [scale.Dims]float64 `json:"scaler_std"`

	// Centroids is the fitted centroid set, index == cluster id.
	Centroids [][]float64 `json:"centroids"`

	// Provenance of the producing run.
	K        int       `json:"k"`
	Seed     int64     `json:"seed"`
	NumInit  int       `json:"num_init"`
	Snapshot time.Time `json:"snapshot"`
}

// Result is the full pipeline output.
type Result struct {
	// Records are the per-customer RFM summaries, CustomerID ascending.
	Records []rfm.Record

	// Assignments pair each customer with a cluster, same order as
	// Records.
	Assignments []Assignment

	// Profiles hold per-cluster aggregates, ascending by cluster id.
	Profiles []Profile

	// Artifacts carry the fitted scaler and centroids for later
	// scoring.
	Artifacts Artifacts

	// Inertia is the winning k-means restart's inertia.
	Inertia float64
}

// Rows materializes the external output contract by joining Records
// with Assignments positionally (both are CustomerID-ascending).
func (r *Result) Rows() []Row {
	rows := make([]Row, len(r.Records))
	for i, rec := range r.Records {
		rows[i] = Row{
			CustomerID: rec.CustomerID,
			Cluster:    r.Assignments[i].Cluster,
			Recency:    rec.Recency,
			Frequency:  rec.Frequency,
			Monetary:   rec.Monetary,
		}
	}
	return rows
}
