package analyzer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finsight/internal/domain"
)

// BalanceTolerance is the maximum debit/credit discrepancy (in currency
// units) a trial balance may carry and still be considered balanced.
var BalanceTolerance = decimal.NewFromFloat(0.01)

type ledgerTotals struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// TrialBalance folds journal entries into per-ledger debit/credit totals.
// Entries are keyed by account name, falling back to account code when the
// name is empty; rows come out sorted by ledger name.
func TrialBalance(entries []domain.JournalEntry, period string, now time.Time) *domain.TrialBalanceReport {
	totals := make(map[string]*ledgerTotals)
	for _, e := range entries {
		name := e.AccountName
		if name == "" {
			name = e.AccountCode
		}
		if name == "" {
			name = "Unclassified"
		}
		agg, ok := totals[name]
		if !ok {
			agg = &ledgerTotals{}
			totals[name] = agg
		}
		agg.debit = agg.debit.Add(e.DebitAmount)
		agg.credit = agg.credit.Add(e.CreditAmount)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &domain.TrialBalanceReport{
		Period:      period,
		Rows:        make([]domain.LedgerRow, 0, len(names)),
		GeneratedAt: now,
	}
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, name := range names {
		agg := totals[name]
		report.Rows = append(report.Rows, domain.LedgerRow{
			LedgerName: name,
			Debit:      agg.debit.InexactFloat64(),
			Credit:     agg.credit.InexactFloat64(),
		})
		totalDebit = totalDebit.Add(agg.debit)
		totalCredit = totalCredit.Add(agg.credit)
	}

	report.TotalDebit = totalDebit.InexactFloat64()
	report.TotalCredit = totalCredit.InexactFloat64()
	report.IsBalanced = totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(BalanceTolerance)
	return report
}
