package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finsight/internal/domain"
	"finsight/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const tenantDocStatsQuery = `SELECT
	COUNT(*) AS documents_processed,
	COUNT(CASE WHEN status = 'failed' THEN 1 END) AS validation_errors
FROM documents WHERE tenant_id = $1`

func (r *statsRepo) GetTenantStats(ctx context.Context, tenantID uuid.UUID) (*domain.Stats, error) {
	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, tenantDocStatsQuery, tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.GetTenantStats docs: %w", err)
	}

	var entriesCount int
	if err := r.db.GetContext(ctx, &entriesCount,
		"SELECT COUNT(*) FROM journal_entries WHERE tenant_id = $1", tenantID); err != nil {
		return nil, fmt.Errorf("statsRepo.GetTenantStats entries: %w", err)
	}
	stats.JournalEntries = entriesCount

	return &stats, nil
}
