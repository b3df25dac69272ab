package analyzer

import (
	"time"

	"github.com/shopspring/decimal"

	"finsight/internal/domain"
)

// GSTR2A folds purchase-register rows into per-invoice inward-supply
// entries with running totals. Rows that carry neither a supplier nor any
// amount are skipped.
func GSTR2A(rows []map[string]any, now time.Time) *domain.GSTR2AReport {
	report := &domain.GSTR2AReport{
		Entries:     make([]domain.GSTR2AEntry, 0, len(rows)),
		GeneratedAt: now,
	}

	var taxable, cgst, sgst, igst, total decimal.Decimal
	for _, row := range rows {
		entry, ok := purchaseEntry(row)
		if !ok {
			continue
		}
		report.Entries = append(report.Entries, domain.GSTR2AEntry{
			SupplierName:  entry.supplier,
			SupplierGSTIN: entry.gstin,
			InvoiceNumber: entry.invoiceNo,
			InvoiceDate:   entry.date,
			TaxableValue:  entry.taxable.InexactFloat64(),
			CGST:          entry.cgst.InexactFloat64(),
			SGST:          entry.sgst.InexactFloat64(),
			IGST:          entry.igst.InexactFloat64(),
			Total:         entry.total.InexactFloat64(),
		})
		taxable = taxable.Add(entry.taxable)
		cgst = cgst.Add(entry.cgst)
		sgst = sgst.Add(entry.sgst)
		igst = igst.Add(entry.igst)
		total = total.Add(entry.total)
	}

	report.TotalTaxableValue = taxable.InexactFloat64()
	report.TotalCGST = cgst.InexactFloat64()
	report.TotalSGST = sgst.InexactFloat64()
	report.TotalIGST = igst.InexactFloat64()
	report.TotalTax = cgst.Add(sgst).Add(igst).InexactFloat64()
	report.TotalAmount = total.InexactFloat64()
	return report
}

type invoiceRow struct {
	supplier  string
	gstin     string
	invoiceNo string
	date      string
	taxable   decimal.Decimal
	cgst      decimal.Decimal
	sgst      decimal.Decimal
	igst      decimal.Decimal
	total     decimal.Decimal
}

// purchaseEntry extracts one invoice line from a raw register row.
func purchaseEntry(row map[string]any) (invoiceRow, bool) {
	e := invoiceRow{
		supplier:  FieldString(row, supplierAliases...),
		gstin:     FieldString(row, gstinAliases...),
		invoiceNo: FieldString(row, invoiceNoAliases...),
		taxable:   FieldAmount(row, taxableAliases...),
		cgst:      FieldAmount(row, cgstAliases...),
		sgst:      FieldAmount(row, sgstAliases...),
		igst:      FieldAmount(row, igstAliases...),
		total:     FieldAmount(row, totalAliases...),
	}

	if raw, ok := Field(row, dateAliases...); ok {
		if t, parsed := Date(raw); parsed {
			e.date = t.Format("2006-01-02")
		} else {
			e.date = FieldString(row, dateAliases...)
		}
	}

	// Derive the total when the register omits it.
	if e.total.IsZero() {
		e.total = e.taxable.Add(e.cgst).Add(e.sgst).Add(e.igst)
	}

	if e.supplier == "" && e.total.IsZero() && e.taxable.IsZero() {
		return invoiceRow{}, false
	}
	return e, true
}
