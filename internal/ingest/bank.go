package ingest

import (
	"io"
	"strings"
	"time"
)

const (
	bankDate        = "02.01.2006"
	bankColumns     = 15
	bankDateCol     = 0
	bankAmountCol   = 2
	bankTypeCol     = 4
	bankPartyCol    = 13
	bankDescription = 14
)

// ParseBankExport reads the fifteen column bank statement export. The first
// line is always a header. Debit rows become negative amounts and the
// category comes from c.
func ParseBankExport(r io.Reader, loc *time.Location, c *Categorizer) (Result, error) {
	records, err := readAll(r)
	if err != nil {
		return Result{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	if c == nil {
		c = DefaultCategorizer()
	}

	res := Result{}
	for _, cols := range records[1:] {
		if len(cols) < bankColumns {
			res.Skipped++
			continue
		}
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}

		date, err := time.ParseInLocation(bankDate, cols[bankDateCol], loc)
		if err != nil {
			res.Skipped++
			continue
		}
		amount, err := parseAmount(cols[bankAmountCol])
		if err != nil {
			res.Skipped++
			continue
		}
		if cols[bankTypeCol] == "Debit" {
			amount = amount.Neg()
		}

		title := cols[bankDescription]
		if title == "" {
			title = cols[bankPartyCol]
		}
		tx, err := newTransaction(title, c.Categorize(title), amount, date)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}
	return res, nil
}
