package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sparkasseHeader = "Buchungstag;Beguenstigter/Zahlungspflichtiger;Betrag\n"

func TestSparkasseParse(t *testing.T) {
	csv := sparkasseHeader +
		"03.05.25;EDEKA MARKT;-45,30\n" +
		"15.05.25;ACME GMBH;2.500,00\n" +
		"20.05.25;;-100,00\n"

	p := &SparkasseParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, "EDEKA MARKT", txns[0].Counterparty)
	assert.Equal(t, "-45.3", txns[0].Amount.String())

	assert.Equal(t, "2500", txns[1].Amount.String())
	assert.Empty(t, txns[2].Counterparty)
}

func TestSparkasseParse_InvalidDateTolerated(t *testing.T) {
	csv := sparkasseHeader + "not-a-date;EDEKA MARKT;-45,30\n"

	p := &SparkasseParser{}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	// Row is kept, but without a usable date.
	assert.True(t, txns[0].Date.IsZero())
	assert.Equal(t, "EDEKA MARKT", txns[0].Counterparty)
}

func TestSparkasseParse_InvalidAmount(t *testing.T) {
	csv := sparkasseHeader + "03.05.25;EDEKA MARKT;abc\n"

	p := &SparkasseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestSparkasseParse_HeaderOnly(t *testing.T) {
	p := &SparkasseParser{}
	txns, err := p.Parse(strings.NewReader(sparkasseHeader))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, "-45.30", normalizeAmount("-45,30"))
	assert.Equal(t, "1234.56", normalizeAmount("1.234,56"))
	assert.Equal(t, "-45.30", normalizeAmount(" -45.30 "))
	assert.Equal(t, "2500", normalizeAmount("2500"))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotNil(t, r.Get("sparkasse"))
	require.NotNil(t, r.Get("SPARKASSE"))
	assert.Nil(t, r.Get("unknown"))

	assert.Panics(t, func() { r.Register(&SparkasseParser{}) })
}
