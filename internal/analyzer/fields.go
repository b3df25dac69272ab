// Package analyzer aggregates extracted document rows and journal entries
// into accounting reports. Extracted rows come from heterogeneous CSV/Excel
// sources, so every field access goes through alias-based lookup and every
// numeric value through currency-tolerant normalization.
package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column-name aliases per canonical field, in priority order. These mirror
// the column variations seen in real registers and statements.
var (
	dateAliases        = []string{"date", "invoice_date", "bill_date", "transaction_date", "purchase_date", "value_date", "txn_date"}
	supplierAliases    = []string{"vendor_name", "vendor", "supplier_name", "supplier", "party_name", "party"}
	customerAliases    = []string{"customer_name", "customer", "client", "party_name", "party"}
	gstinAliases       = []string{"vendor_gstin", "supplier_gstin", "customer_gstin", "gstin"}
	invoiceNoAliases   = []string{"invoice_no", "invoice_number", "bill_no", "voucher_no", "reference_no"}
	taxableAliases     = []string{"taxable_value", "taxable_amount", "taxable"}
	cgstAliases        = []string{"cgst_amount", "cgst"}
	sgstAliases        = []string{"sgst_amount", "sgst"}
	igstAliases        = []string{"igst_amount", "igst"}
	totalAliases       = []string{"total_amount", "invoice_amount", "bill_amount", "grand_total", "total"}
	debitAliases       = []string{"debit_amount", "debit", "withdrawal", "withdrawals"}
	creditAliases      = []string{"credit_amount", "credit", "deposit", "deposits"}
	descriptionAliases = []string{"description", "narration", "particulars", "details", "remarks"}
	balanceAliases     = []string{"balance", "closing_balance", "running_balance"}
)

// headerNormalizer collapses anything that is not a letter or digit, so
// "Bill_No", "bill-no", and "Bill No." all normalize to "bill no".
var headerNormalizer = regexp.MustCompile(`[^a-z0-9]+`)

func normalizeHeader(s string) string {
	return strings.TrimSpace(headerNormalizer.ReplaceAllString(strings.ToLower(s), " "))
}

// Field resolves a value from a row given acceptable column-name aliases.
// Both aliases and headers are normalized before comparison, so an
// underscore alias matches a space- or dash-separated header. A normalized
// exact match wins over a substring match, and aliases are tried in the
// order given. Header keys are walked in sorted order so resolution is
// deterministic.
func Field(row map[string]any, aliases ...string) (any, bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, k := range keys {
		headers[i] = normalizeHeader(k)
	}

	for _, alias := range aliases {
		na := normalizeHeader(alias)
		for i, k := range keys {
			if headers[i] == na {
				return row[k], true
			}
		}
	}
	for _, alias := range aliases {
		na := normalizeHeader(alias)
		for i, k := range keys {
			if strings.Contains(headers[i], na) {
				return row[k], true
			}
		}
	}
	return nil, false
}

// FieldString resolves a field and renders it as a trimmed string.
func FieldString(row map[string]any, aliases ...string) string {
	v, ok := Field(row, aliases...)
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// amountCleaner strips currency symbols, separators, and everything else
// that is not part of a decimal number.
var amountCleaner = regexp.MustCompile(`[^0-9.\-]`)

// Amount normalizes a currency-formatted value into a decimal. It tolerates
// symbols ("₹1,234.50", "Rs 500"), thousands separators, and whitespace.
// Values that do not contain a number normalize to zero.
func Amount(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	}

	s := amountCleaner.ReplaceAllString(fmt.Sprint(v), "")
	if s == "" || s == "-" || s == "." || s == "-." {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FieldAmount resolves a field and normalizes it as an amount.
func FieldAmount(row map[string]any, aliases ...string) decimal.Decimal {
	v, ok := Field(row, aliases...)
	if !ok {
		return decimal.Zero
	}
	return Amount(v)
}

// dateLayouts are tried in order. Day-first layouts come before month-first
// since the source registers are Indian.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"02-Jan-2006",
	"02 Jan 2006",
	"01/02/2006",
}

// Date parses a date-like value. Returns false when the value is empty or
// matches none of the known layouts.
func Date(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, true
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" || s == "<nil>" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateDeltaDays returns the absolute distance between two dates in calendar
// days, ignoring time-of-day.
func DateDeltaDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	delta := int(da.Sub(db).Hours() / 24)
	if delta < 0 {
		delta = -delta
	}
	return delta
}

// SameDayTolerant reports whether two dates fall within one calendar day of
// each other, so month boundaries (Jan 31 / Feb 1) still match.
func SameDayTolerant(a, b time.Time) bool {
	return DateDeltaDays(a, b) <= 1
}
