package analyzer

import (
	"time"

	"github.com/shopspring/decimal"

	"finsight/internal/domain"
)

// GSTR3B summarizes outward supplies from sales-register rows and eligible
// input tax credit from purchase-register rows, then nets the liability per
// tax head. A head's excess ITC becomes carry-forward instead of a negative
// payable.
func GSTR3B(salesRows, purchaseRows []map[string]any, now time.Time) *domain.GSTR3BReport {
	outward := sumTaxHeads(salesRows)
	inward := sumTaxHeads(purchaseRows)

	report := &domain.GSTR3BReport{
		OutwardSupplies: outward.section(),
		InwardSupplies:  inward.section(),
		GeneratedAt:     now,
	}

	payCGST, carryCGST := netHead(outward.cgst, inward.cgst)
	paySGST, carrySGST := netHead(outward.sgst, inward.sgst)
	payIGST, carryIGST := netHead(outward.igst, inward.igst)

	report.NetPayable = domain.GSTR3BSection{
		TaxableValue: outward.taxable.InexactFloat64(),
		CGST:         payCGST.InexactFloat64(),
		SGST:         paySGST.InexactFloat64(),
		IGST:         payIGST.InexactFloat64(),
	}
	report.ITCCarryForward = domain.GSTR3BSection{
		CGST: carryCGST.InexactFloat64(),
		SGST: carrySGST.InexactFloat64(),
		IGST: carryIGST.InexactFloat64(),
	}
	return report
}

type taxHeads struct {
	taxable decimal.Decimal
	cgst    decimal.Decimal
	sgst    decimal.Decimal
	igst    decimal.Decimal
}

func (h taxHeads) section() domain.GSTR3BSection {
	return domain.GSTR3BSection{
		TaxableValue: h.taxable.InexactFloat64(),
		CGST:         h.cgst.InexactFloat64(),
		SGST:         h.sgst.InexactFloat64(),
		IGST:         h.igst.InexactFloat64(),
	}
}

func sumTaxHeads(rows []map[string]any) taxHeads {
	var h taxHeads
	for _, row := range rows {
		taxable := FieldAmount(row, taxableAliases...)
		if taxable.IsZero() {
			// Registers without a taxable column report only the total.
			taxable = FieldAmount(row, totalAliases...)
		}
		h.taxable = h.taxable.Add(taxable)
		h.cgst = h.cgst.Add(FieldAmount(row, cgstAliases...))
		h.sgst = h.sgst.Add(FieldAmount(row, sgstAliases...))
		h.igst = h.igst.Add(FieldAmount(row, igstAliases...))
	}
	return h
}

// netHead returns (payable, carryForward) for one tax head.
func netHead(output, itc decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	net := output.Sub(itc)
	if net.IsNegative() {
		return decimal.Zero, net.Neg()
	}
	return net, decimal.Zero
}
