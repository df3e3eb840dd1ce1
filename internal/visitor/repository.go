package visitor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var _ Store = (*Repository)(nil)

// Repository handles counter persistence in PostgreSQL
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new counter repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Increment adds one to the counter, creating it on first use
func (r *Repository) Increment(ctx context.Context, key string) (int64, error) {
	query := `
		INSERT INTO visitor_counters (key, count)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET count = visitor_counters.count + 1
		RETURNING count
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, key).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return count, nil
}

// Get reads the counter; a counter that was never incremented is 0
func (r *Repository) Get(ctx context.Context, key string) (int64, error) {
	query := `SELECT count FROM visitor_counters WHERE key = $1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, key).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}

	return count, nil
}
