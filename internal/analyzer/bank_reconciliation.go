package analyzer

import (
	"time"

	"github.com/shopspring/decimal"

	"finsight/internal/domain"
)

// bankTxn is a bank-statement row normalized for matching.
type bankTxn struct {
	row     domain.BankTransactionRow
	date    time.Time
	dateOK  bool
	amount  decimal.Decimal
}

// BankReconciliation matches bank-statement rows against journal entries.
// A pair matches when the amounts agree within BalanceTolerance and the
// dates fall within one calendar day. Matching is greedy in statement
// order; each journal entry pairs with at most one transaction.
func BankReconciliation(bankRows []map[string]any, entries []domain.JournalEntry, now time.Time) *domain.BankReconciliationReport {
	txns := make([]bankTxn, 0, len(bankRows))
	for _, row := range bankRows {
		txns = append(txns, normalizeBankRow(row))
	}

	report := &domain.BankReconciliationReport{
		Matched:       []domain.ReconciliationMatch{},
		UnmatchedBank: []domain.BankTransactionRow{},
		UnmatchedBook: []domain.JournalEntry{},
		GeneratedAt:   now,
	}

	used := make([]bool, len(entries))
	var matchedAmount, unmatchedBankAmount decimal.Decimal

	for _, txn := range txns {
		idx := findBookMatch(txn, entries, used)
		if idx < 0 {
			report.UnmatchedBank = append(report.UnmatchedBank, txn.row)
			unmatchedBankAmount = unmatchedBankAmount.Add(txn.amount)
			continue
		}
		used[idx] = true
		report.Matched = append(report.Matched, domain.ReconciliationMatch{
			BankTransaction: txn.row,
			JournalEntryID:  entries[idx].ID,
			AccountName:     entries[idx].AccountName,
			Amount:          txn.amount.InexactFloat64(),
			DateDeltaDays:   DateDeltaDays(txn.date, entries[idx].EntryDate),
		})
		matchedAmount = matchedAmount.Add(txn.amount)
	}

	var unmatchedBookAmount decimal.Decimal
	for i, e := range entries {
		if used[i] {
			continue
		}
		report.UnmatchedBook = append(report.UnmatchedBook, e)
		unmatchedBookAmount = unmatchedBookAmount.Add(entryAmount(&e))
	}

	report.Summary = domain.ReconciliationSummary{
		BankTransactions:    len(txns),
		BookEntries:         len(entries),
		MatchedCount:        len(report.Matched),
		MatchedAmount:       matchedAmount.InexactFloat64(),
		UnmatchedBankAmount: unmatchedBankAmount.InexactFloat64(),
		UnmatchedBookAmount: unmatchedBookAmount.InexactFloat64(),
	}
	return report
}

// findBookMatch returns the index of the first unused journal entry that
// matches the transaction on amount and date, or -1.
func findBookMatch(txn bankTxn, entries []domain.JournalEntry, used []bool) int {
	if !txn.dateOK || txn.amount.IsZero() {
		return -1
	}
	for i := range entries {
		if used[i] {
			continue
		}
		if !SameDayTolerant(txn.date, entries[i].EntryDate) {
			continue
		}
		if txn.amount.Sub(entryAmount(&entries[i])).Abs().LessThanOrEqual(BalanceTolerance) {
			return i
		}
	}
	return -1
}

func normalizeBankRow(row map[string]any) bankTxn {
	debit := FieldAmount(row, debitAliases...)
	credit := FieldAmount(row, creditAliases...)

	amount := debit
	if amount.IsZero() {
		amount = credit
	}

	txn := bankTxn{
		row: domain.BankTransactionRow{
			Description: FieldString(row, descriptionAliases...),
			Debit:       debit.InexactFloat64(),
			Credit:      credit.InexactFloat64(),
			Balance:     FieldAmount(row, balanceAliases...).InexactFloat64(),
		},
		amount: amount,
	}

	if raw, ok := Field(row, dateAliases...); ok {
		txn.row.Date = FieldString(row, dateAliases...)
		if t, parsed := Date(raw); parsed {
			txn.date = t
			txn.dateOK = true
			txn.row.Date = t.Format("2006-01-02")
		}
	}
	return txn
}

func entryAmount(e *domain.JournalEntry) decimal.Decimal {
	if !e.DebitAmount.IsZero() {
		return e.DebitAmount
	}
	return e.CreditAmount
}
