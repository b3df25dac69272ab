package port

import (
	"context"

	"github.com/google/uuid"

	"finsight/internal/domain"
)

// JournalEntryRepository provides access to the tenant's book entries.
type JournalEntryRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	CreateBatch(ctx context.Context, entries []domain.JournalEntry) error
	List(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.JournalEntry, error)
	Delete(ctx context.Context, tenantID, entryID uuid.UUID) error
}
