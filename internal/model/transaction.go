package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one bank ledger row after load-time enrichment.
// Category and Month are derived once during load and never change.
type Transaction struct {
	Date         time.Time       // zero when the source date was unparseable
	Counterparty string          // payee free text, empty for internal bank postings
	Amount       decimal.Decimal // negative = expense, positive = income
	Category     string
	Month        string // "YYYY-MM", empty when Date is zero
}

// MonthKey formats a date as a "YYYY-MM" month key. A zero date yields
// an empty key, which keeps the row out of month-based aggregation.
func MonthKey(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format("2006-01")
}
