// Package postgres implements the repository ports over PostgreSQL using
// sqlx with the pgx stdlib driver. Every query is tenant-scoped unless the
// table itself is tenant-global (tenants).
package postgres

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"finsight/internal/config"
)

// NewDB opens a PostgreSQL connection pool and verifies connectivity.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres.NewDB: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// isUniqueViolation reports whether err is a unique-constraint failure
// touching the named column. The pgx stdlib driver surfaces these as plain
// errors, so the match is textual.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") && strings.Contains(msg, column)
}
