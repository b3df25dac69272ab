package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"finsight/internal/domain"
	"finsight/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	query := `INSERT INTO documents
		(id, tenant_id, file_name, original_name, content_type, file_size, s3_bucket, s3_key,
		 document_type, status, confidence, extracted_data, extraction_notes, uploaded_by, created_at, updated_at)
		VALUES (:id, :tenant_id, :file_name, :original_name, :content_type, :file_size, :s3_bucket, :s3_key,
		 :document_type, :status, :confidence, :extracted_data, :extraction_notes, :uploaded_by, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("documentRepo.Create: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, tenantID, docID uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc,
		"SELECT * FROM documents WHERE id = $1 AND tenant_id = $2", docID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Document, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM documents WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByTenant count: %w", err)
	}

	var docs []domain.Document
	err = r.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("documentRepo.ListByTenant: %w", err)
	}
	return docs, total, nil
}

func (r *documentRepo) ListByType(ctx context.Context, tenantID uuid.UUID, docType domain.DocumentType, filters *domain.ReportFilters) ([]domain.Document, error) {
	query := `SELECT * FROM documents
		WHERE tenant_id = $1 AND document_type = $2 AND status = $3`
	args := []any{tenantID, docType, domain.DocStatusCompleted}

	if filters != nil {
		if filters.From != nil {
			args = append(args, *filters.From)
			query += fmt.Sprintf(" AND created_at >= $%d", len(args))
		}
		if filters.To != nil {
			args = append(args, *filters.To)
			query += fmt.Sprintf(" AND created_at <= $%d", len(args))
		}
	}
	query += " ORDER BY created_at"

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("documentRepo.ListByType: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) UpdateExtraction(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	query := `UPDATE documents
		SET document_type = $1, status = $2, confidence = $3, extracted_data = $4, extraction_notes = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		doc.DocumentType, doc.Status, doc.Confidence, doc.ExtractedData, doc.ExtractionNotes,
		doc.UpdatedAt, doc.ID, doc.TenantID)
	if err != nil {
		return fmt.Errorf("documentRepo.UpdateExtraction: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, tenantID, docID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = $1 AND tenant_id = $2", docID, tenantID)
	if err != nil {
		return fmt.Errorf("documentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}
