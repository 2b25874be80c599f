package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// PilotService is the pilot surface the handlers depend on
type PilotService interface {
	Create(ctx context.Context, req dtos.PilotCreateRequest) (*gormModels.Pilot, error)
	GetByID(ctx context.Context, id int64) (*gormModels.Pilot, error)
	GetByCertificate(ctx context.Context, certificateNumber string) (*gormModels.Pilot, error)
	List(ctx context.Context, f dtos.PilotFilter) ([]gormModels.Pilot, error)
	Update(ctx context.Context, id int64, req dtos.PilotUpdateRequest) (*gormModels.Pilot, error)
	Delete(ctx context.Context, id int64) error
}

// ListPilotsHandler handles GET /api/v1/pilots
func ListPilotsHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := pagination(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		isActive, err := queryBool(r, "is_active")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		filter := dtos.PilotFilter{
			CertificateType: queryString(r, "certificate_type"),
			IsActive:        isActive,
			State:           queryString(r, "state"),
			Search:          queryString(r, "search"),
			Skip:            skip,
			Limit:           limit,
		}

		pilots, err := svc.List(r.Context(), filter)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &pilots)
	}
}

// GetPilotHandler handles GET /api/v1/pilots/{id}
func GetPilotHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		pilot, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// GetPilotByCertificateHandler handles GET /api/v1/pilots/certificate/{cert}
func GetPilotByCertificateHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cert := chi.URLParam(r, "cert")
		if cert == "" {
			respondWithError(w, http.StatusBadRequest, "invalid certificate number")
			return
		}

		pilot, err := svc.GetByCertificate(r.Context(), cert)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// CreatePilotHandler handles POST /api/v1/pilots
func CreatePilotHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.PilotCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		pilot, err := svc.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, pilot)
	}
}

// UpdatePilotHandler handles PATCH /api/v1/pilots/{id}
func UpdatePilotHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req dtos.PilotUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		pilot, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, pilot)
	}
}

// DeletePilotHandler handles DELETE /api/v1/pilots/{id}
func DeletePilotHandler(svc PilotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
