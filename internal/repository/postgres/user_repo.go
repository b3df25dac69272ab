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

const insertUser = `
	INSERT INTO users (id, tenant_id, email, password_hash, full_name, role, is_active, created_at, updated_at)
	VALUES (:id, :tenant_id, :email, :password_hash, :full_name, :role, :is_active, :created_at, :updated_at)`

type userRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new PostgreSQL-backed UserRepository.
func NewUserRepo(db *sqlx.DB) port.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	_, err := r.db.NamedExecContext(ctx, insertUser, user)
	switch {
	case isUniqueViolation(err, "email"):
		return domain.ErrDuplicateEmail
	case err != nil:
		return fmt.Errorf("userRepo.Create: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT * FROM users WHERE id = $1 AND tenant_id = $2`, userID, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("userRepo.GetByID: %w", err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user,
		`SELECT * FROM users WHERE tenant_id = $1 AND email = $2`, tenantID, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("userRepo.GetByEmail: %w", err)
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context, tenantID uuid.UUID) ([]domain.User, error) {
	users := []domain.User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT * FROM users WHERE tenant_id = $1 ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("userRepo.List: %w", err)
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()

	res, err := r.db.NamedExecContext(ctx, `
		UPDATE users
		SET email = :email, full_name = :full_name, role = :role,
		    is_active = :is_active, updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`, user)
	switch {
	case isUniqueViolation(err, "email"):
		return domain.ErrDuplicateEmail
	case err != nil:
		return fmt.Errorf("userRepo.Update: %w", err)
	}
	return requireRowAffected(res)
}

func (r *userRepo) Delete(ctx context.Context, tenantID, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1 AND tenant_id = $2`, userID, tenantID)
	if err != nil {
		return fmt.Errorf("userRepo.Delete: %w", err)
	}
	return requireRowAffected(res)
}
