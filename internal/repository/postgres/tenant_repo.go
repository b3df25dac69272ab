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

const tenantColumns = "id, name, slug, is_active, created_at, updated_at"

type tenantRepo struct {
	db *sqlx.DB
}

// NewTenantRepo creates a new PostgreSQL-backed TenantRepository.
func NewTenantRepo(db *sqlx.DB) port.TenantRepository {
	return &tenantRepo{db: db}
}

func (r *tenantRepo) Create(ctx context.Context, tenant *domain.Tenant) error {
	tenant.ID = uuid.New()
	tenant.CreatedAt = time.Now().UTC()
	tenant.UpdatedAt = tenant.CreatedAt

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenants (`+tenantColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		tenant.ID, tenant.Name, tenant.Slug, tenant.IsActive, tenant.CreatedAt, tenant.UpdatedAt)
	switch {
	case isUniqueViolation(err, "slug"):
		return domain.ErrDuplicateTenantSlug
	case err != nil:
		return fmt.Errorf("tenantRepo.Create: %w", err)
	}
	return nil
}

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return r.getTenant(ctx, "tenantRepo.GetByID", "id", id)
}

func (r *tenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getTenant(ctx, "tenantRepo.GetBySlug", "slug", slug)
}

func (r *tenantRepo) getTenant(ctx context.Context, op, column string, value any) (*domain.Tenant, error) {
	var tenant domain.Tenant
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE ` + column + ` = $1`
	if err := r.db.GetContext(ctx, &tenant, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &tenant, nil
}

func (r *tenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	tenants := []domain.Tenant{}
	query := `SELECT ` + tenantColumns + ` FROM tenants ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, fmt.Errorf("tenantRepo.List: %w", err)
	}
	return tenants, nil
}

func (r *tenantRepo) Update(ctx context.Context, tenant *domain.Tenant) error {
	tenant.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE tenants SET name = $1, slug = $2, is_active = $3, updated_at = $4 WHERE id = $5`,
		tenant.Name, tenant.Slug, tenant.IsActive, tenant.UpdatedAt, tenant.ID)
	switch {
	case isUniqueViolation(err, "slug"):
		return domain.ErrDuplicateTenantSlug
	case err != nil:
		return fmt.Errorf("tenantRepo.Update: %w", err)
	}
	return requireRowAffected(res)
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("tenantRepo.Delete: %w", err)
	}
	return requireRowAffected(res)
}

// requireRowAffected maps a zero-row write to ErrNotFound.
func requireRowAffected(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
