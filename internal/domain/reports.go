package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportFilters narrows the records feeding a report.
type ReportFilters struct {
	From *time.Time
	To   *time.Time
}

// LedgerRow is one account line in a trial balance.
type LedgerRow struct {
	LedgerName string  `json:"ledger_name"`
	Debit      float64 `json:"debit"`
	Credit     float64 `json:"credit"`
}

// TrialBalanceReport lists every ledger account with its debit/credit totals.
type TrialBalanceReport struct {
	Period      string      `json:"period"`
	Rows        []LedgerRow `json:"rows"`
	TotalDebit  float64     `json:"total_debit"`
	TotalCredit float64     `json:"total_credit"`
	IsBalanced  bool        `json:"is_balanced"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// GSTR2AEntry is one inward-supply line sourced from a purchase register.
type GSTR2AEntry struct {
	SupplierName  string  `json:"supplier_name"`
	SupplierGSTIN string  `json:"supplier_gstin"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceDate   string  `json:"invoice_date"`
	TaxableValue  float64 `json:"taxable_value"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	Total         float64 `json:"total"`
}

// GSTR2AReport summarizes inward supplies reported by suppliers.
type GSTR2AReport struct {
	Entries           []GSTR2AEntry `json:"entries"`
	TotalTaxableValue float64       `json:"total_taxable_value"`
	TotalCGST         float64       `json:"total_cgst"`
	TotalSGST         float64       `json:"total_sgst"`
	TotalIGST         float64       `json:"total_igst"`
	TotalTax          float64       `json:"total_tax"`
	TotalAmount       float64       `json:"total_amount"`
	GeneratedAt       time.Time     `json:"generated_at"`
}

// GSTR3BSection holds a taxable value with its per-head tax breakdown.
type GSTR3BSection struct {
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
}

// GSTR3BReport is the monthly summary return: outward supplies, eligible
// input tax credit, and the resulting net liability per tax head.
type GSTR3BReport struct {
	OutwardSupplies GSTR3BSection `json:"outward_supplies"`
	InwardSupplies  GSTR3BSection `json:"inward_supplies"`
	NetPayable      GSTR3BSection `json:"net_payable"`
	ITCCarryForward GSTR3BSection `json:"itc_carry_forward"`
	GeneratedAt     time.Time     `json:"generated_at"`
}

// BankTransactionRow is a normalized bank-statement line.
type BankTransactionRow struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Balance     float64 `json:"balance"`
}

// ReconciliationMatch pairs a bank transaction with the journal entry it
// was matched against.
type ReconciliationMatch struct {
	BankTransaction BankTransactionRow `json:"bank_transaction"`
	JournalEntryID  uuid.UUID          `json:"journal_entry_id"`
	AccountName     string             `json:"account_name"`
	Amount          float64            `json:"amount"`
	DateDeltaDays   int                `json:"date_delta_days"`
}

// ReconciliationSummary carries the high-level counts and totals.
type ReconciliationSummary struct {
	BankTransactions    int     `json:"bank_transactions"`
	BookEntries         int     `json:"book_entries"`
	MatchedCount        int     `json:"matched_count"`
	MatchedAmount       float64 `json:"matched_amount"`
	UnmatchedBankAmount float64 `json:"unmatched_bank_amount"`
	UnmatchedBookAmount float64 `json:"unmatched_book_amount"`
}

// BankReconciliationReport is the result of matching statement lines
// against book entries.
type BankReconciliationReport struct {
	Matched       []ReconciliationMatch `json:"matched"`
	UnmatchedBank []BankTransactionRow  `json:"unmatched_bank"`
	UnmatchedBook []JournalEntry        `json:"unmatched_book"`
	Summary       ReconciliationSummary `json:"summary"`
	GeneratedAt   time.Time             `json:"generated_at"`
}
