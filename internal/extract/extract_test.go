package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonth(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"how much did I spend in march", "2025-03", true},
		{"Spending in June please", "2025-06", true},
		{"DECEMBER", "2025-12", true},
		{"what about rent", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Month(tt.text, 2025)
		assert.Equal(t, tt.ok, ok, "text=%q", tt.text)
		assert.Equal(t, tt.want, got, "text=%q", tt.text)
	}
}

func TestMonth_ReferenceYear(t *testing.T) {
	got, ok := Month("income in march", 2024)
	assert.True(t, ok)
	assert.Equal(t, "2024-03", got)
}

func TestMonth_TableOrderWins(t *testing.T) {
	// Both months mentioned: the earlier calendar month wins because
	// the table is scanned in order.
	got, ok := Month("compare june with march", 2025)
	assert.True(t, ok)
	assert.Equal(t, "2025-03", got)
}

func TestCategory(t *testing.T) {
	labels := []string{"Amazon", "Bank / Internal", "Grocery", "Income", "Rent"}

	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"how much on grocery", "Grocery", true},
		{"how much did I spend on groceries", "Grocery", true}, // y -> ies
		{"rents in may", "Rent", true},                         // naive plural
		{"amazon orders", "Amazon", true},
		{"what did I earn", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Category(tt.text, labels)
		assert.Equal(t, tt.ok, ok, "text=%q", tt.text)
		assert.Equal(t, tt.want, got, "text=%q", tt.text)
	}
}

func TestCategory_SortedOrderDecidesTies(t *testing.T) {
	// Both labels appear; the lexicographically earlier one wins.
	got, ok := Category("amazon and rent in june", []string{"Amazon", "Rent"})
	assert.True(t, ok)
	assert.Equal(t, "Amazon", got)
}
