package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGSTR2A_AggregatesPurchaseRows(t *testing.T) {
	rows := []map[string]any{
		{
			"Vendor Name":   "Acme Supplies",
			"Vendor GSTIN":  "29ABCDE1234F1Z5",
			"Bill No":       "B-101",
			"Date":          "15/01/2025",
			"Taxable Value": "10,000.00",
			"CGST Amount":   "900",
			"SGST Amount":   "900",
			"Total Amount":  "11,800",
		},
		{
			"Vendor Name":   "Bharat Traders",
			"Vendor GSTIN":  "07FGHIJ5678K2Z3",
			"Bill No":       "B-102",
			"Date":          "2025-01-20",
			"Taxable Value": "5000",
			"IGST Amount":   "900",
		},
	}

	report := GSTR2A(rows, time.Now())

	require.Len(t, report.Entries, 2)
	first := report.Entries[0]
	assert.Equal(t, "Acme Supplies", first.SupplierName)
	assert.Equal(t, "29ABCDE1234F1Z5", first.SupplierGSTIN)
	assert.Equal(t, "B-101", first.InvoiceNumber)
	assert.Equal(t, "2025-01-15", first.InvoiceDate)
	assert.Equal(t, 10000.0, first.TaxableValue)
	assert.Equal(t, 11800.0, first.Total)

	// Second row has no total column: derived from taxable + taxes.
	assert.Equal(t, 5900.0, report.Entries[1].Total)

	assert.Equal(t, 15000.0, report.TotalTaxableValue)
	assert.Equal(t, 900.0, report.TotalCGST)
	assert.Equal(t, 900.0, report.TotalSGST)
	assert.Equal(t, 900.0, report.TotalIGST)
	assert.Equal(t, 2700.0, report.TotalTax)
	assert.Equal(t, 17700.0, report.TotalAmount)
}

func TestGSTR2A_SkipsEmptyRows(t *testing.T) {
	rows := []map[string]any{
		{"Vendor Name": "", "Taxable Value": "", "Total Amount": ""},
		{"Vendor Name": "Real Vendor", "Total Amount": "100"},
	}
	report := GSTR2A(rows, time.Now())
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "Real Vendor", report.Entries[0].SupplierName)
}

func TestGSTR2A_KeepsUnparseableDateVerbatim(t *testing.T) {
	rows := []map[string]any{
		{"Vendor Name": "V", "Date": "Jan Q1", "Total Amount": "10"},
	}
	report := GSTR2A(rows, time.Now())
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "Jan Q1", report.Entries[0].InvoiceDate)
}

func TestGSTR3B_NetLiability(t *testing.T) {
	sales := []map[string]any{
		{"Taxable Value": "100000", "CGST Amount": "9000", "SGST Amount": "9000"},
		{"Taxable Value": "50000", "IGST Amount": "9000"},
	}
	purchases := []map[string]any{
		{"Taxable Value": "60000", "CGST Amount": "5400", "SGST Amount": "5400"},
		{"Taxable Value": "20000", "IGST Amount": "3600"},
	}

	report := GSTR3B(sales, purchases, time.Now())

	assert.Equal(t, 150000.0, report.OutwardSupplies.TaxableValue)
	assert.Equal(t, 9000.0, report.OutwardSupplies.CGST)
	assert.Equal(t, 80000.0, report.InwardSupplies.TaxableValue)

	assert.Equal(t, 3600.0, report.NetPayable.CGST)
	assert.Equal(t, 3600.0, report.NetPayable.SGST)
	assert.Equal(t, 5400.0, report.NetPayable.IGST)
	assert.Equal(t, 150000.0, report.NetPayable.TaxableValue)

	assert.Equal(t, 0.0, report.ITCCarryForward.CGST)
}

func TestGSTR3B_ExcessITCCarriesForward(t *testing.T) {
	sales := []map[string]any{
		{"Taxable Value": "10000", "CGST Amount": "900", "SGST Amount": "900"},
	}
	purchases := []map[string]any{
		{"Taxable Value": "50000", "CGST Amount": "4500", "SGST Amount": "4500"},
	}

	report := GSTR3B(sales, purchases, time.Now())

	assert.Equal(t, 0.0, report.NetPayable.CGST)
	assert.Equal(t, 0.0, report.NetPayable.SGST)
	assert.Equal(t, 3600.0, report.ITCCarryForward.CGST)
	assert.Equal(t, 3600.0, report.ITCCarryForward.SGST)
}

func TestGSTR3B_TotalFallbackWhenNoTaxableColumn(t *testing.T) {
	sales := []map[string]any{
		{"Invoice Amount": "11800"},
	}
	report := GSTR3B(sales, nil, time.Now())
	assert.Equal(t, 11800.0, report.OutwardSupplies.TaxableValue)
}
