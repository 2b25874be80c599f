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

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// AirportService owns airport CRUD. ICAO codes and states are stored
// upper-case regardless of input casing.
type AirportService struct {
	repo *repositories.AirportRepository
}

func NewAirportService(repo *repositories.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

func (s *AirportService) Create(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error) {
	icao := strings.ToUpper(strings.TrimSpace(req.ICAOCode))
	if len(icao) < 3 || len(icao) > 4 {
		return nil, fmt.Errorf("ICAO code must be 3-4 characters: %w", ErrValidation)
	}

	airport := &gormModels.Airport{
		ICAOCode:      icao,
		FAACode:       req.FAACode,
		Name:          req.Name,
		City:          req.City,
		State:         strings.ToUpper(req.State),
		County:        req.County,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ElevationFt:   req.ElevationFt,
		AirportType:   req.AirportType,
		Ownership:     req.Ownership,
		Runways:       req.Runways,
		FuelTypes:     req.FuelTypes,
		CTAFFrequency: req.CTAFFrequency,
	}
	if req.HasTower != nil {
		airport.HasTower = *req.HasTower
	}

	if err := s.repo.Create(ctx, airport); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%s: %w", constants.MsgDuplicateICAO, ErrConflict)
		}
		return nil, err
	}
	return airport, nil
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*gormModels.Airport, error) {
	airport, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAirportNotFound, ErrNotFound)
	}
	return airport, nil
}

func (s *AirportService) GetByICAO(ctx context.Context, icao string) (*gormModels.Airport, error) {
	airport, err := s.repo.FindByICAO(ctx, icao)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAirportNotFound, ErrNotFound)
	}
	return airport, nil
}

func (s *AirportService) List(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error) {
	f.Skip, f.Limit = normalizePagination(f.Skip, f.Limit, defaultListLimit, maxListLimit)
	return s.repo.List(ctx, f)
}

// Update applies the non-nil request fields and leaves the rest untouched
func (s *AirportService) Update(ctx context.Context, id int64, req dtos.AirportUpdateRequest) (*gormModels.Airport, error) {
	airport, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FAACode != nil {
		airport.FAACode = req.FAACode
	}
	if req.Name != nil {
		airport.Name = *req.Name
	}
	if req.City != nil {
		airport.City = *req.City
	}
	if req.State != nil {
		airport.State = strings.ToUpper(*req.State)
	}
	if req.County != nil {
		airport.County = req.County
	}
	if req.Latitude != nil {
		airport.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		airport.Longitude = *req.Longitude
	}
	if req.ElevationFt != nil {
		airport.ElevationFt = req.ElevationFt
	}
	if req.AirportType != nil {
		airport.AirportType = *req.AirportType
	}
	if req.Ownership != nil {
		airport.Ownership = req.Ownership
	}
	if req.Runways != nil {
		airport.Runways = req.Runways
	}
	if req.FuelTypes != nil {
		airport.FuelTypes = req.FuelTypes
	}
	if req.HasTower != nil {
		airport.HasTower = *req.HasTower
	}
	if req.CTAFFrequency != nil {
		airport.CTAFFrequency = req.CTAFFrequency
	}

	if err := s.repo.Save(ctx, airport); err != nil {
		return nil, fmt.Errorf("failed to update airport: %w", err)
	}
	return airport, nil
}

// Delete hard-deletes the airport. Flights that referenced it keep their
// airport_id and enrich to a nil airport from then on.
func (s *AirportService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%s: %w", constants.MsgAirportNotFound, ErrNotFound)
	}
	return nil
}

// normalizePagination clamps skip/limit to an endpoint's default and cap
func normalizePagination(skip, limit, def, max int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return skip, limit
}
