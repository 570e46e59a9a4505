// Package segment - strict grouped aggregation of RFM records by
// cluster assignment.
package segment

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/rfmseg/rfm"
)

// ProfileClusters joins records with assignments and aggregates mean
// Recency, mean Frequency, exact mean Monetary and population size per
// cluster. Profiles are returned ascending by cluster id.
//
// Contracts:
//   - Every assignment must reference an existing record
//     (ErrUnknownCustomer otherwise) and every record must be assigned
//     exactly once (ErrMissingAssignment / ErrDuplicateAssignment).
//   - Sizes across profiles sum to len(records).
//   - Purely deterministic: no randomness, no fitting, fixed output
//     order.
//
// Complexity: O(n + k log k).
func ProfileClusters(records []rfm.Record, asgs []Assignment) ([]Profile, error) {
	if len(asgs) == 0 {
		return nil, ErrNoAssignments
	}

	byCustomer := make(map[string]rfm.Record, len(records))
	for _, rec := range records {
		byCustomer[rec.CustomerID] = rec
	}

	// Join with integrity checks; accumulate per cluster.
	type acc struct {
		size      int
		recency   int
		frequency int
		monetary  decimal.Decimal
	}
	clusters := make(map[int]*acc)
	seen := make(map[string]bool, len(asgs))
	for _, a := range asgs {
		rec, ok := byCustomer[a.CustomerID]
		if !ok {
			return nil, fmt.Errorf("%w: %q (cluster %d)", ErrUnknownCustomer, a.CustomerID, a.Cluster)
		}
		if seen[a.CustomerID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAssignment, a.CustomerID)
		}
		seen[a.CustomerID] = true

		c, ok := clusters[a.Cluster]
		if !ok {
			c = &acc{}
			clusters[a.Cluster] = c
		}
		c.size++
		c.recency += rec.Recency
		c.frequency += rec.Frequency
		c.monetary = c.monetary.Add(rec.Monetary)
	}

	// Exactly-one invariant: no record may remain unassigned.
	if len(seen) != len(records) {
		for _, rec := range records {
			if !seen[rec.CustomerID] {
				return nil, fmt.Errorf("%w: %q", ErrMissingAssignment, rec.CustomerID)
			}
		}
	}

	profiles := make([]Profile, 0, len(clusters))
	for id, c := range clusters {
		n := decimal.NewFromInt(int64(c.size))
		profiles = append(profiles, Profile{
			Cluster:       id,
			Size:          c.size,
			MeanRecency:   float64(c.recency) / float64(c.size),
			MeanFrequency: float64(c.frequency) / float64(c.size),
			MeanMonetary:  c.monetary.Div(n),
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Cluster < profiles[j].Cluster
	})

	return profiles, nil
}
