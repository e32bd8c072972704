// Package ingest turns CSV exports into ledger transactions.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/ledger"
)

var ErrNoRows = errors.New("ingest: no rows")

// Result holds the parsed transactions and how many data rows were dropped.
type Result struct {
	Transactions []ledger.Transaction
	Skipped      int
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr
}

func readAll(r io.Reader) ([][]string, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	return records, nil
}

// parseAmount accepts both "12.50" and "12,50".
func parseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(strings.Trim(s, `"`)), ",", ".")
	return decimal.NewFromString(cleaned)
}

func newTransaction(title, category string, amount decimal.Decimal, date time.Time) (ledger.Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("ingest: new id: %w", err)
	}
	t := ledger.Transaction{
		ID:       id,
		Title:    title,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	return t, t.Validate()
}
