package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finsight/internal/domain"
	"finsight/internal/port"
)

// CreateJournalEntryInput is the DTO for posting a single book entry.
type CreateJournalEntryInput struct {
	AccountName  string          `json:"account_name" binding:"required"`
	AccountCode  string          `json:"account_code"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	EntryDate    time.Time       `json:"entry_date" binding:"required"`
}

// JournalService defines the book-entry intake contract.
type JournalService interface {
	Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateJournalEntryInput) (*domain.JournalEntry, error)
	CreateBatch(ctx context.Context, tenantID, createdBy uuid.UUID, inputs []CreateJournalEntryInput) ([]domain.JournalEntry, error)
	List(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.JournalEntry, error)
	Delete(ctx context.Context, tenantID, entryID uuid.UUID) error
}

type journalService struct {
	repo port.JournalEntryRepository
}

// NewJournalService creates a new JournalService implementation.
func NewJournalService(repo port.JournalEntryRepository) JournalService {
	return &journalService{repo: repo}
}

func (s *journalService) Create(ctx context.Context, tenantID, createdBy uuid.UUID, input CreateJournalEntryInput) (*domain.JournalEntry, error) {
	entry := entryFromInput(tenantID, createdBy, input)
	if err := s.repo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *journalService) CreateBatch(ctx context.Context, tenantID, createdBy uuid.UUID, inputs []CreateJournalEntryInput) ([]domain.JournalEntry, error) {
	entries := make([]domain.JournalEntry, len(inputs))
	for i, input := range inputs {
		entries[i] = entryFromInput(tenantID, createdBy, input)
	}
	if err := s.repo.CreateBatch(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *journalService) List(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.JournalEntry, error) {
	return s.repo.List(ctx, tenantID, filters)
}

func (s *journalService) Delete(ctx context.Context, tenantID, entryID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, entryID)
}

func entryFromInput(tenantID, createdBy uuid.UUID, input CreateJournalEntryInput) domain.JournalEntry {
	return domain.JournalEntry{
		TenantID:     tenantID,
		AccountName:  input.AccountName,
		AccountCode:  input.AccountCode,
		Description:  input.Description,
		DebitAmount:  input.DebitAmount,
		CreditAmount: input.CreditAmount,
		EntryDate:    input.EntryDate,
		CreatedBy:    createdBy,
	}
}
