package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/db/repositories"
	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// AircraftService owns aircraft CRUD. Tail numbers are stored upper-case.
type AircraftService struct {
	repo *repositories.AircraftRepository
}

func NewAircraftService(repo *repositories.AircraftRepository) *AircraftService {
	return &AircraftService{repo: repo}
}

func (s *AircraftService) Create(ctx context.Context, req dtos.AircraftCreateRequest) (*gormModels.Aircraft, error) {
	tail := strings.ToUpper(strings.TrimSpace(req.TailNumber))
	if tail == "" || len(tail) > 10 {
		return nil, fmt.Errorf("tail number must be 1-10 characters: %w", ErrValidation)
	}
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%s: %w", constants.MsgInvalidCategory, ErrValidation)
	}

	aircraft := &gormModels.Aircraft{
		TailNumber:    tail,
		Manufacturer:  req.Manufacturer,
		Model:         req.Model,
		YearBuilt:     req.YearBuilt,
		Category:      req.Category,
		EngineType:    req.EngineType,
		NumEngines:    1,
		MaxPassengers: req.MaxPassengers,
		OwnerName:     req.OwnerName,
		OwnerAddress:  req.OwnerAddress,
		OwnerCity:     req.OwnerCity,
		IsActive:      true,
	}
	if req.NumEngines != nil {
		aircraft.NumEngines = *req.NumEngines
	}
	if req.IsActive != nil {
		aircraft.IsActive = *req.IsActive
	}
	if req.OwnerState != nil {
		upper := strings.ToUpper(*req.OwnerState)
		aircraft.OwnerState = &upper
	}

	if err := s.repo.Create(ctx, aircraft); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%s: %w", constants.MsgDuplicateTailNumber, ErrConflict)
		}
		return nil, err
	}
	return aircraft, nil
}

func (s *AircraftService) GetByID(ctx context.Context, id int64) (*gormModels.Aircraft, error) {
	aircraft, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAircraftNotFound, ErrNotFound)
	}
	return aircraft, nil
}

func (s *AircraftService) GetByTailNumber(ctx context.Context, tailNumber string) (*gormModels.Aircraft, error) {
	aircraft, err := s.repo.FindByTailNumber(ctx, tailNumber)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAircraftNotFound, ErrNotFound)
	}
	return aircraft, nil
}

func (s *AircraftService) List(ctx context.Context, f dtos.AircraftFilter) ([]gormModels.Aircraft, error) {
	f.Skip, f.Limit = normalizePagination(f.Skip, f.Limit, defaultListLimit, maxListLimit)
	return s.repo.List(ctx, f)
}

// Update applies the non-nil request fields and leaves the rest untouched
func (s *AircraftService) Update(ctx context.Context, id int64, req dtos.AircraftUpdateRequest) (*gormModels.Aircraft, error) {
	aircraft, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Manufacturer != nil {
		aircraft.Manufacturer = *req.Manufacturer
	}
	if req.Model != nil {
		aircraft.Model = *req.Model
	}
	if req.YearBuilt != nil {
		aircraft.YearBuilt = req.YearBuilt
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return nil, fmt.Errorf("%s: %w", constants.MsgInvalidCategory, ErrValidation)
		}
		aircraft.Category = *req.Category
	}
	if req.EngineType != nil {
		aircraft.EngineType = req.EngineType
	}
	if req.NumEngines != nil {
		aircraft.NumEngines = *req.NumEngines
	}
	if req.MaxPassengers != nil {
		aircraft.MaxPassengers = req.MaxPassengers
	}
	if req.OwnerName != nil {
		aircraft.OwnerName = *req.OwnerName
	}
	if req.OwnerAddress != nil {
		aircraft.OwnerAddress = req.OwnerAddress
	}
	if req.OwnerCity != nil {
		aircraft.OwnerCity = req.OwnerCity
	}
	if req.OwnerState != nil {
		upper := strings.ToUpper(*req.OwnerState)
		aircraft.OwnerState = &upper
	}
	if req.IsActive != nil {
		aircraft.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, aircraft); err != nil {
		return nil, fmt.Errorf("failed to update aircraft: %w", err)
	}
	return aircraft, nil
}

// Delete hard-deletes the aircraft; flights that referenced it enrich to a
// nil aircraft from then on.
func (s *AircraftService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%s: %w", constants.MsgAircraftNotFound, ErrNotFound)
	}
	return nil
}
