package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthRepository probes the database.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository constructs a HealthRepository.
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping runs a trivial statement and reports how long it took.
func (r *HealthRepository) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	var one int
	err := r.db.GetContext(ctx, &one, "SELECT 1")
	return time.Since(start), err
}
