package analyzer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/internal/domain"
)

func entry(account, code string, debit, credit float64) domain.JournalEntry {
	return domain.JournalEntry{
		ID:           uuid.New(),
		AccountName:  account,
		AccountCode:  code,
		DebitAmount:  decimal.NewFromFloat(debit),
		CreditAmount: decimal.NewFromFloat(credit),
		EntryDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTrialBalance_GroupsByAccountName(t *testing.T) {
	entries := []domain.JournalEntry{
		entry("Cash", "", 50000, 0),
		entry("Cash", "", 25000, 0),
		entry("Revenue", "", 0, 75000),
	}

	report := TrialBalance(entries, "Q1_2025", time.Now())

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Cash", report.Rows[0].LedgerName)
	assert.Equal(t, 75000.0, report.Rows[0].Debit)
	assert.Equal(t, 0.0, report.Rows[0].Credit)
	assert.Equal(t, "Revenue", report.Rows[1].LedgerName)
	assert.Equal(t, 75000.0, report.Rows[1].Credit)

	assert.Equal(t, 75000.0, report.TotalDebit)
	assert.Equal(t, 75000.0, report.TotalCredit)
	assert.True(t, report.IsBalanced)
	assert.Equal(t, "Q1_2025", report.Period)
}

func TestTrialBalance_FallsBackToAccountCode(t *testing.T) {
	entries := []domain.JournalEntry{
		entry("", "1001", 100, 0),
		entry("", "1001", 200, 0),
		entry("", "", 0, 300),
	}

	report := TrialBalance(entries, "2025", time.Now())

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "1001", report.Rows[0].LedgerName)
	assert.Equal(t, 300.0, report.Rows[0].Debit)
	assert.Equal(t, "Unclassified", report.Rows[1].LedgerName)
}

func TestTrialBalance_ToleranceBoundary(t *testing.T) {
	within := []domain.JournalEntry{
		entry("Cash", "", 100.00, 0),
		entry("Revenue", "", 0, 100.01),
	}
	assert.True(t, TrialBalance(within, "2025", time.Now()).IsBalanced)

	beyond := []domain.JournalEntry{
		entry("Cash", "", 100.00, 0),
		entry("Revenue", "", 0, 100.02),
	}
	assert.False(t, TrialBalance(beyond, "2025", time.Now()).IsBalanced)
}

func TestTrialBalance_Empty(t *testing.T) {
	report := TrialBalance(nil, "2025", time.Now())
	assert.Empty(t, report.Rows)
	assert.True(t, report.IsBalanced)
}
