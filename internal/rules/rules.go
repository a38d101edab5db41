package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category labels assigned outside the keyword table.
const (
	CategoryIncome   = "Income"
	CategoryInternal = "Bank / Internal"
	CategoryOther    = "Other Expense"
)

// Rule maps a case-insensitive counterparty keyword to a category.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// Table is an ordered rule list. Order is significant: keywords are not
// mutually exclusive, and the first matching rule always wins.
type Table struct {
	rules []Rule
}

// ErrEmptyTable is returned when a table is constructed without rules.
var ErrEmptyTable = errors.New("empty rule table")

// NewTable validates the rules and returns a Table preserving their order.
func NewTable(ruleList []Rule) (*Table, error) {
	if len(ruleList) == 0 {
		return nil, ErrEmptyTable
	}
	for i, r := range ruleList {
		if strings.TrimSpace(r.Keyword) == "" {
			return nil, fmt.Errorf("rule %d: empty keyword", i+1)
		}
		if strings.TrimSpace(r.Category) == "" {
			return nil, fmt.Errorf("rule %d (%s): empty category", i+1, r.Keyword)
		}
	}
	rules := make([]Rule, len(ruleList))
	copy(rules, ruleList)
	return &Table{rules: rules}, nil
}

// Rules returns the rules in declaration order.
func (t *Table) Rules() []Rule {
	return t.rules
}

// Categorize assigns exactly one category to a transaction. Positive
// amounts are always Income regardless of counterparty. A blank
// counterparty is an internal bank posting. Otherwise the uppercased
// counterparty is scanned against the keyword table in declared order
// and the first substring match wins, never the longest one.
func (t *Table) Categorize(counterparty string, amount decimal.Decimal) string {
	if amount.IsPositive() {
		return CategoryIncome
	}
	if strings.TrimSpace(counterparty) == "" {
		return CategoryInternal
	}
	upper := strings.ToUpper(counterparty)
	for _, r := range t.rules {
		if strings.Contains(upper, strings.ToUpper(r.Keyword)) {
			return r.Category
		}
	}
	return CategoryOther
}

// Default returns the built-in keyword table.
func Default() *Table {
	t, err := NewTable([]Rule{
		{Keyword: "EDEKA", Category: "Grocery"},
		{Keyword: "REWE", Category: "Grocery"},
		{Keyword: "LIDL", Category: "Grocery"},
		{Keyword: "PENNY", Category: "Grocery"},
		{Keyword: "KAUFLAND", Category: "Grocery"},
		{Keyword: "CINAR", Category: "Grocery"},
		{Keyword: "MARKAB", Category: "Grocery"},
		{Keyword: "ALQUDS", Category: "Grocery"},
		{Keyword: "PAYPAL", Category: "PayPal / Online Payments"},
		{Keyword: "AMAZON", Category: "Amazon"},
		{Keyword: "OTTO", Category: "Online Shopping"},
		{Keyword: "DB VERTRIEB", Category: "Public Transport"},
		{Keyword: "VODAFONE", Category: "Internet / Phone"},
		{Keyword: "PYUR", Category: "Internet / Phone"},
		{Keyword: "WBF", Category: "Rent"},
	})
	if err != nil {
		panic("invalid default rule table: " + err.Error())
	}
	return t
}
