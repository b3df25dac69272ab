package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_ExactMatchWinsOverSubstring(t *testing.T) {
	row := map[string]any{
		"Invoice Date Notes": "garbage",
		"DATE":               "2025-01-15",
	}
	v, ok := Field(row, "date", "invoice_date")
	require.True(t, ok)
	assert.Equal(t, "2025-01-15", v)
}

func TestField_SubstringFallback(t *testing.T) {
	row := map[string]any{"Total Invoice Amount (Rs)": 1500.0}
	v, ok := Field(row, "invoice_amount")
	require.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestField_UnderscoreAliasMatchesSpacedHeader(t *testing.T) {
	row := map[string]any{"Bill No": "B-101"}
	v, ok := Field(row, "invoice_no", "invoice_number", "bill_no")
	require.True(t, ok)
	assert.Equal(t, "B-101", v)
}

func TestField_NormalizedExactWinsOverSubstring(t *testing.T) {
	// "vendor" is a substring of "Vendor GSTIN", but the exact pass must
	// resolve "Vendor Name" first.
	row := map[string]any{
		"Vendor GSTIN": "29ABCDE1234F1Z5",
		"Vendor Name":  "Acme Supplies",
	}
	v, ok := Field(row, "vendor_name", "vendor")
	require.True(t, ok)
	assert.Equal(t, "Acme Supplies", v)
}

func TestField_AliasPriorityOrder(t *testing.T) {
	row := map[string]any{
		"vendor_name": "Acme Supplies",
		"party_name":  "Someone Else",
	}
	v, ok := Field(row, "vendor_name", "vendor", "party_name")
	require.True(t, ok)
	assert.Equal(t, "Acme Supplies", v)
}

func TestField_Missing(t *testing.T) {
	_, ok := Field(map[string]any{"qty": 3}, "amount", "total")
	assert.False(t, ok)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain string", "1234.50", "1234.5"},
		{"rupee symbol", "₹1,234.50", "1234.5"},
		{"rs prefix", "Rs 4,75,689", "475689"},
		{"dollar", "$99.99", "99.99"},
		{"negative", "-500", "-500"},
		{"float64", 250.75, "250.75"},
		{"int", 42, "42"},
		{"empty", "", "0"},
		{"garbage", "N/A", "0"},
		{"nil", nil, "0"},
		{"whitespace", "  1 200 ", "1200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Amount(tt.input).String())
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-01-15", "2025-01-15"},
		{"15/01/2025", "2025-01-15"},
		{"15-01-2025", "2025-01-15"},
		{"15-Jan-2025", "2025-01-15"},
		{"2025/01/15", "2025-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Date(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestDate_Unparseable(t *testing.T) {
	_, ok := Date("not a date")
	assert.False(t, ok)

	_, ok = Date("")
	assert.False(t, ok)
}

func TestDate_PassesThroughTime(t *testing.T) {
	want := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	got, ok := Date(want)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSameDayTolerant(t *testing.T) {
	d := func(s string) time.Time {
		t1, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return t1
	}

	assert.True(t, SameDayTolerant(d("2025-01-15"), d("2025-01-15")))
	assert.True(t, SameDayTolerant(d("2025-01-15"), d("2025-01-16")))
	assert.True(t, SameDayTolerant(d("2025-01-31"), d("2025-02-01")))
	assert.False(t, SameDayTolerant(d("2025-01-15"), d("2025-01-17")))
}

func TestSameDayTolerant_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 1, 17, 0, 1, 0, 0, time.UTC)
	// 24h2m apart but two calendar days
	assert.False(t, SameDayTolerant(a, b))

	c := time.Date(2025, 1, 16, 0, 1, 0, 0, time.UTC)
	assert.True(t, SameDayTolerant(a, c))
}
