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

// AircraftRepository handles aircraft table operations
type AircraftRepository struct {
	db *gormlib.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gormlib.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Create inserts an aircraft after checking the tail number is free
func (r *AircraftRepository) Create(ctx context.Context, aircraft *gormModels.Aircraft) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var count int64
		err := tx.Model(&gormModels.Aircraft{}).
			Where("UPPER(tail_number) = ?", strings.ToUpper(aircraft.TailNumber)).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check tail number: %w", err)
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		return tx.Create(aircraft).Error
	})
}

// FindByID returns the aircraft or (nil, nil) when absent
func (r *AircraftRepository) FindByID(ctx context.Context, id int64) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&aircraft).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

// FindByTailNumber finds an aircraft by tail number (case-insensitive)
func (r *AircraftRepository) FindByTailNumber(ctx context.Context, tailNumber string) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("UPPER(tail_number) = UPPER(?)", tailNumber).
		First(&aircraft).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

// FindByIDs batch-fetches aircraft for flight enrichment
func (r *AircraftRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]gormModels.Aircraft, error) {
	result := make(map[int64]gormModels.Aircraft, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []gormModels.Aircraft
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to batch fetch aircraft: %w", err)
	}

	for _, a := range rows {
		result[a.ID] = a
	}
	return result, nil
}

// List returns aircraft matching the filter, ordered by tail number
func (r *AircraftRepository) List(ctx context.Context, f dtos.AircraftFilter) ([]gormModels.Aircraft, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Aircraft{})
	q = applyClauses(q, buildAircraftClauses(f))

	var rows []gormModels.Aircraft
	err := q.Order("tail_number").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	return rows, nil
}

// Save persists field changes on an already-loaded aircraft
func (r *AircraftRepository) Save(ctx context.Context, aircraft *gormModels.Aircraft) error {
	return r.db.WithContext(ctx).Save(aircraft).Error
}

// Delete removes an aircraft; reports whether a row was deleted
func (r *AircraftRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Aircraft{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete aircraft: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
