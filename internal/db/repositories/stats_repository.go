package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/models/dtos"
)

// StatsRepository runs the dashboard's aggregate queries as raw SQL through
// sqlx. Query text uses ? bindvars and is rebound to the driver's
// placeholder style per call. Each call is a separate statement against the
// store, so counts taken in one snapshot can skew slightly under concurrent
// writes.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountFlightsSince counts flights with actual_time at or after the instant
func (r *StatsRepository) CountFlightsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(constants.CountFlightsSince), since); err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return count, nil
}

// CountActiveAircraft counts aircraft with is_active = true
func (r *StatsRepository) CountActiveAircraft(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(constants.CountActiveAircraft)); err != nil {
		return 0, fmt.Errorf("failed to count aircraft: %w", err)
	}
	return count, nil
}

// CountActivePilots counts pilots with is_active = true
func (r *StatsRepository) CountActivePilots(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(constants.CountActivePilots)); err != nil {
		return 0, fmt.Errorf("failed to count pilots: %w", err)
	}
	return count, nil
}

// CountAirports counts all airports
func (r *StatsRepository) CountAirports(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(constants.CountAirports)); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}

// BusiestAirports ranks airports by flight count since the given instant
func (r *StatsRepository) BusiestAirports(ctx context.Context, since time.Time, limit int) ([]dtos.BusiestAirport, error) {
	var rows []dtos.BusiestAirport
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.BusiestAirports), since, limit); err != nil {
		return nil, fmt.Errorf("failed to rank airports: %w", err)
	}
	return rows, nil
}
