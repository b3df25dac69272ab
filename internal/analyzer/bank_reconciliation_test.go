package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsight/internal/domain"
)

func bookEntry(account string, debit, credit float64, date string) domain.JournalEntry {
	e := entry(account, "", debit, credit)
	d, _ := time.Parse("2006-01-02", date)
	e.EntryDate = d
	return e
}

func TestBankReconciliation_MatchesOnAmountAndDate(t *testing.T) {
	bankRows := []map[string]any{
		{"Date": "2025-01-15", "Particulars": "NEFT VENDOR PAYMENT", "Withdrawal": "5,000.00", "Balance": "95000"},
		{"Date": "2025-01-20", "Particulars": "CUSTOMER RECEIPT", "Deposit": "12000", "Balance": "107000"},
	}
	entries := []domain.JournalEntry{
		bookEntry("Accounts Payable", 5000, 0, "2025-01-16"),
		bookEntry("Accounts Receivable", 0, 12000, "2025-01-20"),
	}

	report := BankReconciliation(bankRows, entries, time.Now())

	require.Len(t, report.Matched, 2)
	assert.Equal(t, "Accounts Payable", report.Matched[0].AccountName)
	assert.Equal(t, 5000.0, report.Matched[0].Amount)
	assert.Equal(t, 1, report.Matched[0].DateDeltaDays)
	assert.Equal(t, "NEFT VENDOR PAYMENT", report.Matched[0].BankTransaction.Description)

	assert.Empty(t, report.UnmatchedBank)
	assert.Empty(t, report.UnmatchedBook)
	assert.Equal(t, 2, report.Summary.MatchedCount)
	assert.Equal(t, 17000.0, report.Summary.MatchedAmount)
}

func TestBankReconciliation_DateOutsideTolerance(t *testing.T) {
	bankRows := []map[string]any{
		{"Date": "2025-01-15", "Description": "PAYMENT", "Debit": "5000"},
	}
	entries := []domain.JournalEntry{
		bookEntry("Accounts Payable", 5000, 0, "2025-01-18"),
	}

	report := BankReconciliation(bankRows, entries, time.Now())

	assert.Empty(t, report.Matched)
	require.Len(t, report.UnmatchedBank, 1)
	require.Len(t, report.UnmatchedBook, 1)
	assert.Equal(t, 5000.0, report.Summary.UnmatchedBankAmount)
	assert.Equal(t, 5000.0, report.Summary.UnmatchedBookAmount)
}

func TestBankReconciliation_AmountMismatch(t *testing.T) {
	bankRows := []map[string]any{
		{"Date": "2025-01-15", "Debit": "5000.00"},
	}
	entries := []domain.JournalEntry{
		bookEntry("Accounts Payable", 5000.05, 0, "2025-01-15"),
	}

	report := BankReconciliation(bankRows, entries, time.Now())
	assert.Empty(t, report.Matched)
}

func TestBankReconciliation_EachEntryMatchesOnce(t *testing.T) {
	bankRows := []map[string]any{
		{"Date": "2025-01-15", "Debit": "1000"},
		{"Date": "2025-01-15", "Debit": "1000"},
	}
	entries := []domain.JournalEntry{
		bookEntry("Rent", 1000, 0, "2025-01-15"),
	}

	report := BankReconciliation(bankRows, entries, time.Now())

	assert.Len(t, report.Matched, 1)
	assert.Len(t, report.UnmatchedBank, 1)
	assert.Empty(t, report.UnmatchedBook)
}

func TestBankReconciliation_UnparseableDateNeverMatches(t *testing.T) {
	bankRows := []map[string]any{
		{"Date": "??", "Debit": "1000"},
	}
	entries := []domain.JournalEntry{
		bookEntry("Rent", 1000, 0, "2025-01-15"),
	}

	report := BankReconciliation(bankRows, entries, time.Now())
	assert.Empty(t, report.Matched)
	assert.Len(t, report.UnmatchedBank, 1)
	assert.Equal(t, "??", report.UnmatchedBank[0].Date)
}

func TestBankReconciliation_Empty(t *testing.T) {
	report := BankReconciliation(nil, nil, time.Now())
	assert.Equal(t, 0, report.Summary.BankTransactions)
	assert.Equal(t, 0, report.Summary.BookEntries)
	assert.Empty(t, report.Matched)
}
