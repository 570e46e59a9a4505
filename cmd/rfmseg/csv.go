// Command rfmseg - CSV ingestion and output.
//
// Input contract: header customer_id,order_date,order_total; dates are
// RFC3339 or 2006-01-02; totals parse as exact decimals.
// Output contract: customer_id,cluster,recency,frequency,monetary.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/rfmseg/rfm"
	"github.com/katalvlaran/rfmseg/segment"
)

// dateOnly is the fallback layout for date columns without a time part.
const dateOnly = "2006-01-02"

// readTransactions loads the input CSV into rfm.Transactions.
// Structural problems (wrong column count, unparseable date or amount)
// fail here; semantic validation (empty ids, negative totals) is the
// rfm package's job under the configured row policy.
func readTransactions(path string) ([]rfm.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read input csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("input csv has no data rows")
	}

	txns := make([]rfm.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] { // rows[0] is the header
		date, err := parseDate(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: order_date %q: %w", i+2, row[1], err)
		}
		total, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: order_total %q: %w", i+2, row[2], err)
		}
		txns = append(txns, rfm.Transaction{
			CustomerID: row[0],
			OrderDate:  date,
			OrderTotal: total,
		})
	}
	return txns, nil
}

// parseDate accepts RFC3339 timestamps or bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, s)
}

// writeRows writes the segment output contract as CSV.
func writeRows(path string, rows []segment.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"customer_id", "cluster", "recency", "frequency", "monetary"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.CustomerID,
			strconv.Itoa(row.Cluster),
			strconv.Itoa(row.Recency),
			strconv.Itoa(row.Frequency),
			row.Monetary.String(),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", row.CustomerID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
