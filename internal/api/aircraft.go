package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// AircraftService is the aircraft surface the handlers depend on
type AircraftService interface {
	Create(ctx context.Context, req dtos.AircraftCreateRequest) (*gormModels.Aircraft, error)
	GetByID(ctx context.Context, id int64) (*gormModels.Aircraft, error)
	GetByTailNumber(ctx context.Context, tailNumber string) (*gormModels.Aircraft, error)
	List(ctx context.Context, f dtos.AircraftFilter) ([]gormModels.Aircraft, error)
	Update(ctx context.Context, id int64, req dtos.AircraftUpdateRequest) (*gormModels.Aircraft, error)
	Delete(ctx context.Context, id int64) error
}

// ListAircraftHandler handles GET /api/v1/aircraft
func ListAircraftHandler(svc AircraftService) http.HandlerFunc {
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

		filter := dtos.AircraftFilter{
			Category:     queryString(r, "category"),
			Manufacturer: queryString(r, "manufacturer"),
			IsActive:     isActive,
			Search:       queryString(r, "search"),
			Skip:         skip,
			Limit:        limit,
		}

		aircraft, err := svc.List(r.Context(), filter)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &aircraft)
	}
}

// GetAircraftHandler handles GET /api/v1/aircraft/{id}
func GetAircraftHandler(svc AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		aircraft, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, aircraft)
	}
}

// GetAircraftByTailHandler handles GET /api/v1/aircraft/tail/{tail_number}
func GetAircraftByTailHandler(svc AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tail := chi.URLParam(r, "tail_number")
		if tail == "" {
			respondWithError(w, http.StatusBadRequest, "invalid tail number")
			return
		}

		aircraft, err := svc.GetByTailNumber(r.Context(), tail)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, aircraft)
	}
}

// CreateAircraftHandler handles POST /api/v1/aircraft
func CreateAircraftHandler(svc AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AircraftCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		aircraft, err := svc.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, aircraft)
	}
}

// UpdateAircraftHandler handles PATCH /api/v1/aircraft/{id}
func UpdateAircraftHandler(svc AircraftService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req dtos.AircraftUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		aircraft, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, aircraft)
	}
}

// DeleteAircraftHandler handles DELETE /api/v1/aircraft/{id}
func DeleteAircraftHandler(svc AircraftService) http.HandlerFunc {
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
