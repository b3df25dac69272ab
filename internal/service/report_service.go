package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finsight/internal/analyzer"
	"finsight/internal/csvexport"
	"finsight/internal/domain"
	"finsight/internal/port"
)

// EmailReportInput is the DTO for report email requests.
type EmailReportInput struct {
	ToAddress  string `json:"to_address" binding:"required,email"`
	ToName     string `json:"to_name"`
	ReportType string `json:"report_type" binding:"required"`
}

// ReportService builds financial reports from journal entries and
// extracted document data.
type ReportService interface {
	TrialBalance(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.TrialBalanceReport, error)
	GSTR2A(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR2AReport, error)
	GSTR3B(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR3BReport, error)
	BankReconciliation(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.BankReconciliationReport, error)
	ExportTrialBalanceCSV(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]byte, string, error)
	EmailReport(ctx context.Context, tenantID uuid.UUID, input EmailReportInput) error
}

type reportService struct {
	journalRepo port.JournalEntryRepository
	docRepo     port.DocumentRepository
	emailSender port.EmailSender
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	journalRepo port.JournalEntryRepository,
	docRepo port.DocumentRepository,
	emailSender port.EmailSender,
) ReportService {
	return &reportService{
		journalRepo: journalRepo,
		docRepo:     docRepo,
		emailSender: emailSender,
	}
}

func (s *reportService) TrialBalance(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.TrialBalanceReport, error) {
	entries, err := s.journalRepo.List(ctx, tenantID, filters)
	if err != nil {
		return nil, fmt.Errorf("report.TrialBalance: %w", err)
	}
	return analyzer.TrialBalance(entries, periodLabel(filters), time.Now().UTC()), nil
}

func (s *reportService) GSTR2A(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR2AReport, error) {
	rows, err := s.extractedRows(ctx, tenantID, domain.DocTypePurchaseRegister, filters)
	if err != nil {
		return nil, fmt.Errorf("report.GSTR2A: %w", err)
	}
	return analyzer.GSTR2A(rows, time.Now().UTC()), nil
}

func (s *reportService) GSTR3B(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.GSTR3BReport, error) {
	salesRows, err := s.extractedRows(ctx, tenantID, domain.DocTypeSalesRegister, filters)
	if err != nil {
		return nil, fmt.Errorf("report.GSTR3B sales: %w", err)
	}
	purchaseRows, err := s.extractedRows(ctx, tenantID, domain.DocTypePurchaseRegister, filters)
	if err != nil {
		return nil, fmt.Errorf("report.GSTR3B purchases: %w", err)
	}
	return analyzer.GSTR3B(salesRows, purchaseRows, time.Now().UTC()), nil
}

func (s *reportService) BankReconciliation(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) (*domain.BankReconciliationReport, error) {
	bankRows, err := s.extractedRows(ctx, tenantID, domain.DocTypeBankStatement, filters)
	if err != nil {
		return nil, fmt.Errorf("report.BankReconciliation statements: %w", err)
	}
	entries, err := s.journalRepo.List(ctx, tenantID, filters)
	if err != nil {
		return nil, fmt.Errorf("report.BankReconciliation entries: %w", err)
	}
	return analyzer.BankReconciliation(bankRows, entries, time.Now().UTC()), nil
}

func (s *reportService) ExportTrialBalanceCSV(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]byte, string, error) {
	report, err := s.TrialBalance(ctx, tenantID, filters)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteTrialBalance(report); err != nil {
		return nil, "", fmt.Errorf("report.ExportTrialBalanceCSV: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("report.ExportTrialBalanceCSV: %w", err)
	}

	return buf.Bytes(), csvexport.BuildFilename("trial_balance"), nil
}

func (s *reportService) EmailReport(ctx context.Context, tenantID uuid.UUID, input EmailReportInput) error {
	var (
		reportName string
		summary    string
		attachment []byte
		filename   string
	)

	switch input.ReportType {
	case "trial_balance":
		report, err := s.TrialBalance(ctx, tenantID, nil)
		if err != nil {
			return err
		}
		csvBytes, csvName, err := s.ExportTrialBalanceCSV(ctx, tenantID, nil)
		if err != nil {
			return err
		}
		reportName = "Trial Balance"
		summary = fmt.Sprintf("%d ledger accounts, total debit %.2f, total credit %.2f, balanced: %t",
			len(report.Rows), report.TotalDebit, report.TotalCredit, report.IsBalanced)
		attachment, filename = csvBytes, csvName
	case "gstr2a":
		report, err := s.GSTR2A(ctx, tenantID, nil)
		if err != nil {
			return err
		}
		reportName = "GSTR-2A"
		summary = fmt.Sprintf("%d inward supply entries, total tax %.2f, total amount %.2f",
			len(report.Entries), report.TotalTax, report.TotalAmount)
	case "gstr3b":
		report, err := s.GSTR3B(ctx, tenantID, nil)
		if err != nil {
			return err
		}
		reportName = "GSTR-3B"
		summary = fmt.Sprintf("outward taxable %.2f, inward taxable %.2f",
			report.OutwardSupplies.TaxableValue, report.InwardSupplies.TaxableValue)
	case "bank_reconciliation":
		report, err := s.BankReconciliation(ctx, tenantID, nil)
		if err != nil {
			return err
		}
		reportName = "Bank Reconciliation"
		summary = fmt.Sprintf("%d of %d bank transactions matched, matched amount %.2f",
			report.Summary.MatchedCount, report.Summary.BankTransactions, report.Summary.MatchedAmount)
	default:
		return domain.ErrInvalidReportType
	}

	email := &port.ReportEmail{
		ToAddress:  input.ToAddress,
		ToName:     input.ToName,
		ReportName: reportName,
		Subject:    fmt.Sprintf("%s report - %s", reportName, time.Now().Format("2 Jan 2006")),
		HTMLBody: fmt.Sprintf("<p>Hello %s,</p><p>Your %s report is ready.</p><p>%s</p>",
			input.ToName, reportName, summary),
		TextBody: fmt.Sprintf("Hello %s,\n\nYour %s report is ready.\n\n%s\n",
			input.ToName, reportName, summary),
		Attachment: attachment,
		Filename:   filename,
	}
	if err := s.emailSender.SendReportEmail(ctx, email); err != nil {
		return fmt.Errorf("report.EmailReport: %w", err)
	}
	return nil
}

// extractedRows flattens the stored extraction payloads of every completed
// document of the given type into one slice of row maps.
func (s *reportService) extractedRows(ctx context.Context, tenantID uuid.UUID, docType domain.DocumentType, filters *domain.ReportFilters) ([]map[string]any, error) {
	docs, err := s.docRepo.ListByType(ctx, tenantID, docType, filters)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	for i := range docs {
		res, err := docs[i].DecodeExtraction()
		if err != nil {
			return nil, fmt.Errorf("decoding extraction for document %s: %w", docs[i].ID, err)
		}
		for _, rec := range res.Records {
			rows = append(rows, rec.Data)
		}
	}
	return rows, nil
}

func periodLabel(filters *domain.ReportFilters) string {
	if filters == nil || (filters.From == nil && filters.To == nil) {
		return "all"
	}
	from, to := "", ""
	if filters.From != nil {
		from = filters.From.Format("2006-01-02")
	}
	if filters.To != nil {
		to = filters.To.Format("2006-01-02")
	}
	switch {
	case from != "" && to != "":
		return from + " to " + to
	case from != "":
		return "from " + from
	default:
		return "until " + to
	}
}
