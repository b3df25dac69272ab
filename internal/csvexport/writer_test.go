package csvexport_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/internal/csvexport"
	"finsight/internal/domain"
)

func TestWriteTrialBalance(t *testing.T) {
	report := &domain.TrialBalanceReport{
		Rows: []domain.LedgerRow{
			{LedgerName: "Cash", Debit: 750.5, Credit: 0},
			{LedgerName: "Sales", Debit: 0, Credit: 750.5},
		},
		TotalDebit:  750.5,
		TotalCredit: 750.5,
	}

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteTrialBalance(report))
	w.Flush()
	require.NoError(t, w.Error())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Ledger Name,Debit,Credit", lines[0])
	assert.Equal(t, "Cash,750.50,0.00", lines[1])
	assert.Equal(t, "Sales,0.00,750.50", lines[2])
	assert.Equal(t, "Total,750.50,750.50", lines[3])
}

func TestWriteTrialBalance_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteTrialBalance(&domain.TrialBalanceReport{}))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Ledger Name,Debit,Credit", lines[0])
	assert.Equal(t, "Total,0.00,0.00", lines[1])
}

func TestWriteTrialBalance_QuotesCommaInLedgerName(t *testing.T) {
	report := &domain.TrialBalanceReport{
		Rows: []domain.LedgerRow{
			{LedgerName: "Rent, Office", Debit: 100, Credit: 0},
		},
		TotalDebit: 100,
	}

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteTrialBalance(report))
	w.Flush()

	assert.Contains(t, buf.String(), `"Rent, Office",100.00,0.00`)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "trial_balance", "trial_balance"},
		{"spaces replaced", "trial balance report", "trial_balance_report"},
		{"special chars stripped", "report: Q1/2024 (final)", "report_Q1_2024_final"},
		{"consecutive underscores collapsed", "a___b", "a_b"},
		{"leading and trailing trimmed", "  report  ", "report"},
		{"hyphens preserved", "gstr-3b", "gstr-3b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, csvexport.SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Len(t, csvexport.SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	got := csvexport.BuildFilename("trial balance")
	want := fmt.Sprintf("trial_balance_%s.csv", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, got)
}
