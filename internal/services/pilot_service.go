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

// PilotService owns pilot CRUD
type PilotService struct {
	repo *repositories.PilotRepository
}

func NewPilotService(repo *repositories.PilotRepository) *PilotService {
	return &PilotService{repo: repo}
}

func (s *PilotService) Create(ctx context.Context, req dtos.PilotCreateRequest) (*gormModels.Pilot, error) {
	cert := strings.TrimSpace(req.CertificateNumber)
	if cert == "" {
		return nil, fmt.Errorf("certificate number is required: %w", ErrValidation)
	}
	if !req.CertificateType.Valid() {
		return nil, fmt.Errorf("%s: %w", constants.MsgInvalidCertificateType, ErrValidation)
	}

	pilot := &gormModels.Pilot{
		CertificateNumber: cert,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		CertificateType:   req.CertificateType,
		Ratings:           req.Ratings,
		MedicalClass:      req.MedicalClass,
		MedicalExpiry:     req.MedicalExpiry,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		IsActive:          true,
	}
	if req.TotalFlightHours != nil {
		pilot.TotalFlightHours = *req.TotalFlightHours
	}
	if req.IsActive != nil {
		pilot.IsActive = *req.IsActive
	}
	if req.State != nil {
		upper := strings.ToUpper(*req.State)
		pilot.State = &upper
	}

	if err := s.repo.Create(ctx, pilot); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%s: %w", constants.MsgDuplicateCertificate, ErrConflict)
		}
		return nil, err
	}
	return pilot, nil
}

func (s *PilotService) GetByID(ctx context.Context, id int64) (*gormModels.Pilot, error) {
	pilot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgPilotNotFound, ErrNotFound)
	}
	return pilot, nil
}

func (s *PilotService) GetByCertificate(ctx context.Context, certificateNumber string) (*gormModels.Pilot, error) {
	pilot, err := s.repo.FindByCertificate(ctx, certificateNumber)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgPilotNotFound, ErrNotFound)
	}
	return pilot, nil
}

func (s *PilotService) List(ctx context.Context, f dtos.PilotFilter) ([]gormModels.Pilot, error) {
	f.Skip, f.Limit = normalizePagination(f.Skip, f.Limit, defaultListLimit, maxListLimit)
	return s.repo.List(ctx, f)
}

// Update applies the non-nil request fields and leaves the rest untouched
func (s *PilotService) Update(ctx context.Context, id int64, req dtos.PilotUpdateRequest) (*gormModels.Pilot, error) {
	pilot, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		pilot.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		pilot.LastName = *req.LastName
	}
	if req.CertificateType != nil {
		if !req.CertificateType.Valid() {
			return nil, fmt.Errorf("%s: %w", constants.MsgInvalidCertificateType, ErrValidation)
		}
		pilot.CertificateType = *req.CertificateType
	}
	if req.Ratings != nil {
		pilot.Ratings = req.Ratings
	}
	if req.MedicalClass != nil {
		pilot.MedicalClass = req.MedicalClass
	}
	if req.MedicalExpiry != nil {
		pilot.MedicalExpiry = req.MedicalExpiry
	}
	if req.TotalFlightHours != nil {
		pilot.TotalFlightHours = *req.TotalFlightHours
	}
	if req.Email != nil {
		pilot.Email = req.Email
	}
	if req.Phone != nil {
		pilot.Phone = req.Phone
	}
	if req.City != nil {
		pilot.City = req.City
	}
	if req.State != nil {
		upper := strings.ToUpper(*req.State)
		pilot.State = &upper
	}
	if req.IsActive != nil {
		pilot.IsActive = *req.IsActive
	}

	if err := s.repo.Save(ctx, pilot); err != nil {
		return nil, fmt.Errorf("failed to update pilot: %w", err)
	}
	return pilot, nil
}

// Delete hard-deletes the pilot. Flights logged under the pilot stay intact
// and enrich to a nil pilot from then on.
func (s *PilotService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%s: %w", constants.MsgPilotNotFound, ErrNotFound)
	}
	return nil
}
