package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finsight/internal/domain"
	"finsight/internal/port"
)

type journalRepo struct {
	db *sqlx.DB
}

// NewJournalEntryRepo creates a new PostgreSQL-backed JournalEntryRepository.
func NewJournalEntryRepo(db *sqlx.DB) port.JournalEntryRepository {
	return &journalRepo{db: db}
}

const insertJournalEntry = `INSERT INTO journal_entries
	(id, tenant_id, account_name, account_code, description, debit_amount, credit_amount, entry_date, created_by, created_at)
	VALUES (:id, :tenant_id, :account_name, :account_code, :description, :debit_amount, :credit_amount, :entry_date, :created_by, :created_at)`

func (r *journalRepo) Create(ctx context.Context, entry *domain.JournalEntry) error {
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx, insertJournalEntry, entry)
	if err != nil {
		return fmt.Errorf("journalRepo.Create: %w", err)
	}
	return nil
}

func (r *journalRepo) CreateBatch(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].CreatedAt = now
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("journalRepo.CreateBatch begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertJournalEntry, entries); err != nil {
		return fmt.Errorf("journalRepo.CreateBatch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("journalRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *journalRepo) List(ctx context.Context, tenantID uuid.UUID, filters *domain.ReportFilters) ([]domain.JournalEntry, error) {
	query := "SELECT * FROM journal_entries WHERE tenant_id = $1"
	args := []any{tenantID}

	if filters != nil {
		if filters.From != nil {
			args = append(args, *filters.From)
			query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
		}
		if filters.To != nil {
			args = append(args, *filters.To)
			query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
		}
	}
	query += " ORDER BY entry_date, created_at"

	var entries []domain.JournalEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("journalRepo.List: %w", err)
	}
	return entries, nil
}

func (r *journalRepo) Delete(ctx context.Context, tenantID, entryID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM journal_entries WHERE id = $1 AND tenant_id = $2", entryID, tenantID)
	if err != nil {
		return fmt.Errorf("journalRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
