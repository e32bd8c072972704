package ingest

import (
	"io"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// ParseSimple reads the four column "date,title,category,amount" format.
// A first line mentioning "date" is treated as a header. Dates are ISO
// calendar dates interpreted in loc. Rows that are short, malformed or fail
// validation are skipped and counted.
func ParseSimple(r io.Reader, loc *time.Location) (Result, error) {
	records, err := readAll(r)
	if err != nil {
		return Result{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	if strings.Contains(strings.ToLower(strings.Join(records[0], ",")), "date") {
		records = records[1:]
	}

	res := Result{}
	for _, cols := range records {
		if len(cols) < 4 {
			res.Skipped++
			continue
		}
		date, err := time.ParseInLocation(isoDate, strings.TrimSpace(cols[0]), loc)
		if err != nil {
			res.Skipped++
			continue
		}
		amount, err := parseAmount(cols[3])
		if err != nil {
			res.Skipped++
			continue
		}
		tx, err := newTransaction(strings.TrimSpace(cols[1]), strings.TrimSpace(cols[2]), amount, date)
		if err != nil {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, tx)
	}
	return res, nil
}
