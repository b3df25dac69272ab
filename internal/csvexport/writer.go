package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"finsight/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// trialBalanceColumns defines the trial balance CSV header row.
var trialBalanceColumns = []string{
	"Ledger Name",
	"Debit",
	"Credit",
}

// Writer wraps csv.Writer for exporting report rows as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteTrialBalance writes the header, one row per ledger account, and a
// closing totals row.
func (w *Writer) WriteTrialBalance(report *domain.TrialBalanceReport) error {
	if err := w.csv.Write(trialBalanceColumns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{row.LedgerName, formatMoney(row.Debit), formatMoney(row.Credit)}
		if err := w.csv.Write(record); err != nil {
			return err
		}
	}
	totals := []string{"Total", formatMoney(report.TotalDebit), formatMoney(report.TotalCredit)}
	return w.csv.Write(totals)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_report_name}_{YYYY-MM-DD}.csv
func BuildFilename(reportName string) string {
	sanitized := SanitizeFilename(reportName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
