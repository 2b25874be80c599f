package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gormlib "gorm.io/gorm"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// FlightRepository handles flights table operations
type FlightRepository struct {
	db *gormlib.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gormlib.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create inserts a flight row. Referential checks happen in the service.
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// FindByID returns the flight or (nil, nil) when absent
func (r *FlightRepository) FindByID(ctx context.Context, id int64) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&flight).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// List returns flights matching the filter, newest actual time first.
//
// The pilot-name search joins the pilots table and matches the substring
// against first name, last name, or "first last"; the join exists only when
// that filter is present so an absent filter can never exclude flights.
func (r *FlightRepository) List(ctx context.Context, f dtos.FlightFilter, now time.Time) ([]gormModels.Flight, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Flight{}).Select("flights.*")

	if f.PilotName != nil && *f.PilotName != "" {
		pattern := "%" + strings.ToLower(*f.PilotName) + "%"
		q = q.Joins("JOIN pilots ON pilots.id = flights.pic_id").
			Where(
				"LOWER(pilots.first_name) LIKE ? OR LOWER(pilots.last_name) LIKE ? OR LOWER(pilots.first_name || ' ' || pilots.last_name) LIKE ?",
				pattern, pattern, pattern,
			)
	}

	q = applyClauses(q, buildFlightClauses(f, now))

	var flights []gormModels.Flight
	err := q.Order("flights.actual_time DESC").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return flights, nil
}

// Save persists field changes on an already-loaded flight
func (r *FlightRepository) Save(ctx context.Context, flight *gormModels.Flight) error {
	return r.db.WithContext(ctx).Save(flight).Error
}

// Delete removes a flight; reports whether a row was deleted
func (r *FlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Flight{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete flight: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
