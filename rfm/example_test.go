package rfm_test

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/rfmseg/rfm"
)

// ExampleAggregate reduces a small purchase history into RFM records
// against an explicit snapshot date.
func ExampleAggregate() {
	snap := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	order := func(id string, daysAgo int, amount string) rfm.Transaction {
		return rfm.Transaction{
			CustomerID: id,
			OrderDate:  snap.AddDate(0, 0, -daysAgo),
			OrderTotal: decimal.RequireFromString(amount),
		}
	}

	records, err := rfm.Aggregate([]rfm.Transaction{
		order("alice", 5, "100"),
		order("alice", 40, "200"),
		order("bob", 200, "20"),
	}, rfm.WithSnapshot(snap))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range records {
		fmt.Printf("%s R=%d F=%d M=%s\n", r.CustomerID, r.Recency, r.Frequency, r.Monetary)
	}
	// Output:
	// alice R=5 F=2 M=300
	// bob R=200 F=1 M=20
}
