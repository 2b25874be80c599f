package repositories

import (
	"context"
	"errors"
	"fmt"

	gormlib "gorm.io/gorm"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// PilotRepository handles pilots table operations
type PilotRepository struct {
	db *gormlib.DB
}

// NewPilotRepository creates a new pilot repository
func NewPilotRepository(db *gormlib.DB) *PilotRepository {
	return &PilotRepository{db: db}
}

// Create inserts a pilot after checking the certificate number is free
func (r *PilotRepository) Create(ctx context.Context, pilot *gormModels.Pilot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		var count int64
		err := tx.Model(&gormModels.Pilot{}).
			Where("certificate_number = ?", pilot.CertificateNumber).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check certificate number: %w", err)
		}
		if count > 0 {
			return ErrDuplicateKey
		}
		return tx.Create(pilot).Error
	})
}

// FindByID returns the pilot or (nil, nil) when absent
func (r *PilotRepository) FindByID(ctx context.Context, id int64) (*gormModels.Pilot, error) {
	var pilot gormModels.Pilot

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pilot).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}

	return &pilot, nil
}

// FindByCertificate finds a pilot by certificate number
func (r *PilotRepository) FindByCertificate(ctx context.Context, certificateNumber string) (*gormModels.Pilot, error) {
	var pilot gormModels.Pilot

	err := r.db.WithContext(ctx).
		Where("certificate_number = ?", certificateNumber).
		First(&pilot).Error

	if err != nil {
		if errors.Is(err, gormlib.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}

	return &pilot, nil
}

// FindByIDs batch-fetches pilots for flight enrichment
func (r *PilotRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]gormModels.Pilot, error) {
	result := make(map[int64]gormModels.Pilot, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []gormModels.Pilot
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to batch fetch pilots: %w", err)
	}

	for _, p := range rows {
		result[p.ID] = p
	}
	return result, nil
}

// List returns pilots matching the filter, ordered by last then first name
func (r *PilotRepository) List(ctx context.Context, f dtos.PilotFilter) ([]gormModels.Pilot, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Pilot{})
	q = applyClauses(q, buildPilotClauses(f))

	var rows []gormModels.Pilot
	err := q.Order("last_name, first_name").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pilots: %w", err)
	}
	return rows, nil
}

// Save persists field changes on an already-loaded pilot
func (r *PilotRepository) Save(ctx context.Context, pilot *gormModels.Pilot) error {
	return r.db.WithContext(ctx).Save(pilot).Error
}

// Delete removes a pilot; reports whether a row was deleted.
// Flights referencing the pilot are left in place; reads surface the
// dangling reference as a nil pilot.
func (r *PilotRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Pilot{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete pilot: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
