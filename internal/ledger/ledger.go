package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/rules"
)

// Ledger is the in-memory transaction dataset for a session. It is
// built once from imported rows and read-only afterwards.
type Ledger struct {
	transactions []model.Transaction
	categories   []string // sorted distinct category labels
}

// New derives the category and month key for every transaction and
// returns a Ledger over the enriched rows.
func New(txns []model.Transaction, table *rules.Table) *Ledger {
	enriched := make([]model.Transaction, len(txns))
	seen := make(map[string]struct{})
	for i, txn := range txns {
		txn.Category = table.Categorize(txn.Counterparty, txn.Amount)
		txn.Month = model.MonthKey(txn.Date)
		enriched[i] = txn
		seen[txn.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &Ledger{transactions: enriched, categories: categories}
}

// Transactions returns all rows.
func (l *Ledger) Transactions() []model.Transaction {
	return l.transactions
}

// Categories returns the distinct category labels observed in the
// data, sorted lexicographically. This is the label universe the
// category extractor scans.
func (l *Ledger) Categories() []string {
	return l.categories
}

// SumByCategoryAndMonth returns the signed sum of amounts for a
// category in a month, rounded to 2 decimal places. No matching rows
// yields zero, not an error.
func (l *Ledger) SumByCategoryAndMonth(category, month string) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range l.transactions {
		if txn.Category == category && txn.Month == month {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum.Round(2)
}

// SumIncome returns the total income for a month, rounded to 2 decimal
// places.
func (l *Ledger) SumIncome(month string) decimal.Decimal {
	return l.SumByCategoryAndMonth(rules.CategoryIncome, month)
}

// CategoryTotal is one line of a month overview.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthOverview returns per-category totals for a month, sorted by
// category label. Categories with no rows in the month are omitted.
func (l *Ledger) MonthOverview(month string) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range l.transactions {
		if txn.Month != month {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	var overview []CategoryTotal
	for _, c := range l.categories {
		total, ok := totals[c]
		if !ok {
			continue
		}
		overview = append(overview, CategoryTotal{Category: c, Total: total.Round(2)})
	}
	return overview
}
