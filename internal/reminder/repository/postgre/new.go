package postgre

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"voice-assistant/internal/reminder/repository"
	"voice-assistant/pkg/log"
)

//go:embed migrations.sql
var migrations string

// collectionID is the key of the single row holding the whole collection.
const collectionID = 1

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a PostgreSQL-backed Repository. The collection is stored as one
// JSONB document so every Save replaces it atomically.
func New(db *sql.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("reminder/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the table when it does not exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, migrations); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return fmt.Errorf("run reminder migrations: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("reminder/repository/postgre.%s", method)
}
