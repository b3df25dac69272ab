package port

import (
	"context"

	"github.com/google/uuid"

	"finsight/internal/domain"
)

// DocumentRepository manages uploaded documents and their extracted data.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Document, int, error)
	ListByType(ctx context.Context, tenantID uuid.UUID, docType domain.DocumentType, filters *domain.ReportFilters) ([]domain.Document, error)
	UpdateExtraction(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, tenantID, docID uuid.UUID) error
}

// StatsRepository provides aggregate counts for the dashboard.
type StatsRepository interface {
	GetTenantStats(ctx context.Context, tenantID uuid.UUID) (*domain.Stats, error)
}
