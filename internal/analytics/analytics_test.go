package analytics

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/ledger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func tx(category, amount string, date time.Time) ledger.Transaction {
	return ledger.Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    category + " " + amount,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     date,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
