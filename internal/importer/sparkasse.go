package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
)

// SparkasseParser parses German bank CSV exports in the common
// Sparkasse layout: semicolon separated, one header row, booking date
// in DD.MM.YY, amounts with comma decimals.
type SparkasseParser struct{}

const (
	sparkasseDateFormat = "02.01.06"
	sparkasseNumFields  = 3
	sparkasseColDate    = 0
	sparkasseColPayee   = 1
	sparkasseColAmount  = 2
)

// Format returns the parser name.
func (p *SparkasseParser) Format() string { return "sparkasse" }

// Parse reads a Sparkasse CSV and returns Transactions. Rows with an
// unparseable booking date are kept with a zero Date rather than
// rejected; a bad amount aborts the import.
func (p *SparkasseParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = sparkasseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sparkasse CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseSparkasseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseSparkasseRow(rec []string) (model.Transaction, error) {
	// Invalid dates are tolerated: the row stays in the ledger but
	// carries no month key.
	date, err := time.Parse(sparkasseDateFormat, strings.TrimSpace(rec[sparkasseColDate]))
	if err != nil {
		date = time.Time{}
	}

	amount, err := decimal.NewFromString(normalizeAmount(rec[sparkasseColAmount]))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[sparkasseColAmount], err)
	}

	return model.Transaction{
		Date:         date,
		Counterparty: strings.TrimSpace(rec[sparkasseColPayee]),
		Amount:       amount,
	}, nil
}

// normalizeAmount converts German amount notation ("1.234,56") to the
// dot-decimal form decimal.NewFromString expects. Dot-decimal input is
// passed through untouched.
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}
