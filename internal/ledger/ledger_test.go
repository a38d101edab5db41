package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/model"
	"github.com/AhmadMalek25/ai-personal-finance-agent/internal/rules"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func testLedger() *Ledger {
	txns := []model.Transaction{
		{Date: date(2025, 5, 3), Counterparty: "EDEKA MARKT", Amount: dec("-45.30")},
		{Date: date(2025, 5, 12), Counterparty: "REWE BERLIN", Amount: dec("-30.155")},
		{Date: date(2025, 5, 1), Counterparty: "WBF Wohnungsbau", Amount: dec("-650.00")},
		{Date: date(2025, 5, 28), Counterparty: "ACME GMBH", Amount: dec("2500.00")},
		{Date: date(2025, 6, 2), Counterparty: "EDEKA MARKT", Amount: dec("-20.00")},
		{Date: time.Time{}, Counterparty: "EDEKA MARKT", Amount: dec("-99.00")},
		{Date: date(2025, 6, 5), Counterparty: "", Amount: dec("-10.00")},
	}
	return New(txns, rules.Default())
}

func TestNew_DerivedFields(t *testing.T) {
	l := testLedger()
	txns := l.Transactions()

	assert.Equal(t, "Grocery", txns[0].Category)
	assert.Equal(t, "2025-05", txns[0].Month)
	assert.Equal(t, rules.CategoryIncome, txns[3].Category)
	assert.Equal(t, rules.CategoryInternal, txns[6].Category)

	// Unparseable date: row kept, no month key.
	assert.Equal(t, "Grocery", txns[5].Category)
	assert.Empty(t, txns[5].Month)
}

func TestCategories_SortedDistinct(t *testing.T) {
	l := testLedger()
	assert.Equal(t, []string{"Bank / Internal", "Grocery", "Income", "Rent"}, l.Categories())
}

func TestSumByCategoryAndMonth(t *testing.T) {
	l := testLedger()

	// -45.30 + -30.155 rounds to -75.46 (half away from zero).
	assert.Equal(t, "-75.46", l.SumByCategoryAndMonth("Grocery", "2025-05").StringFixed(2))
	assert.Equal(t, "-20.00", l.SumByCategoryAndMonth("Grocery", "2025-06").StringFixed(2))
	assert.Equal(t, "-650.00", l.SumByCategoryAndMonth("Rent", "2025-05").StringFixed(2))
}

func TestSum_NoMatchesIsZero(t *testing.T) {
	l := testLedger()

	assert.True(t, l.SumByCategoryAndMonth("Grocery", "2024-01").IsZero())
	assert.True(t, l.SumByCategoryAndMonth("Nonexistent", "2025-05").IsZero())
	assert.True(t, l.SumIncome("2025-06").IsZero())
}

func TestSum_Idempotent(t *testing.T) {
	l := testLedger()

	first := l.SumByCategoryAndMonth("Grocery", "2025-05")
	second := l.SumByCategoryAndMonth("Grocery", "2025-05")
	assert.True(t, first.Equal(second))
}

func TestSumIncome(t *testing.T) {
	l := testLedger()
	assert.Equal(t, "2500.00", l.SumIncome("2025-05").StringFixed(2))
}

func TestMonthOverview(t *testing.T) {
	l := testLedger()

	overview := l.MonthOverview("2025-05")
	require.Len(t, overview, 3)
	assert.Equal(t, "Grocery", overview[0].Category)
	assert.Equal(t, "-75.46", overview[0].Total.StringFixed(2))
	assert.Equal(t, "Income", overview[1].Category)
	assert.Equal(t, "Rent", overview[2].Category)

	assert.Empty(t, l.MonthOverview("2024-01"))
}
