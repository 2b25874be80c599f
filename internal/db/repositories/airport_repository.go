package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gormlib "gorm.io/gorm"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// ErrDuplicateKey is returned by Create methods when the natural key is
// already taken. The duplicate check and insert run in one transaction so
// two concurrent creates cannot both pass the check.
var ErrDuplicateKey = errors.New("duplicate natural key")

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// Create inserts an airport after checking the ICAO code is free
func (r *AirportRepository) Create(ctx context.Context, airport *gormModels.Airport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var count int64
		err := tx.Model(&gormModels.Airport{}).
			Where("UPPER(icao_code) = ?", strings.ToUpper(airport.ICAOCode)).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check ICAO code: %w", err)
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		return tx.Create(airport).Error
	})
}

// FindByID returns the airport or (nil, nil) when absent
func (r *AirportRepository) FindByID(ctx context.Context, id int64) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// FindByICAO finds an airport by ICAO code (case-insensitive)
func (r *AirportRepository) FindByICAO(ctx context.Context, icao string) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(icao_code) = UPPER(?)", icao).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// FindByIDs batch-fetches airports for flight enrichment
func (r *AirportRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]gormModels.Airport, error) {
	result := make(map[int64]gormModels.Airport, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var airports []gormModels.Airport
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&airports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to batch fetch airports: %w", err)
	}

	for _, a := range airports {
		result[a.ID] = a
	}
	return result, nil
}

// List returns airports matching the filter, ordered by ICAO code
func (r *AirportRepository) List(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Airport{})
	q = applyClauses(q, buildAirportClauses(f))

	var airports []gormModels.Airport
	err := q.Order("icao_code").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&airports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	return airports, nil
}

// Save persists field changes on an already-loaded airport
func (r *AirportRepository) Save(ctx context.Context, airport *gormModels.Airport) error {
	return r.db.WithContext(ctx).Save(airport).Error
}

// Delete removes an airport; reports whether a row was deleted
func (r *AirportRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Airport{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete airport: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
