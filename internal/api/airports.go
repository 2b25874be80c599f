package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

// AirportService is the airport surface the handlers depend on
type AirportService interface {
	Create(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error)
	GetByID(ctx context.Context, id int64) (*gormModels.Airport, error)
	GetByICAO(ctx context.Context, icao string) (*gormModels.Airport, error)
	List(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error)
	Update(ctx context.Context, id int64, req dtos.AirportUpdateRequest) (*gormModels.Airport, error)
	Delete(ctx context.Context, id int64) error
}

// ListAirportsHandler handles GET /api/v1/airports
func ListAirportsHandler(svc AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := pagination(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		hasTower, err := queryBool(r, "has_tower")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		filter := dtos.AirportFilter{
			State:       queryString(r, "state"),
			AirportType: queryString(r, "airport_type"),
			HasTower:    hasTower,
			Search:      queryString(r, "search"),
			Skip:        skip,
			Limit:       limit,
		}

		airports, err := svc.List(r.Context(), filter)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &airports)
	}
}

// GetAirportHandler handles GET /api/v1/airports/{id}
func GetAirportHandler(svc AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		airport, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, airport)
	}
}

// GetAirportByCodeHandler handles GET /api/v1/airports/code/{icao}
func GetAirportByCodeHandler(svc AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		icao := chi.URLParam(r, "icao")
		if icao == "" {
			respondWithError(w, http.StatusBadRequest, "invalid ICAO code")
			return
		}

		airport, err := svc.GetByICAO(r.Context(), icao)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, airport)
	}
}

// CreateAirportHandler handles POST /api/v1/airports
func CreateAirportHandler(svc AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.AirportCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		airport, err := svc.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, airport)
	}
}

// UpdateAirportHandler handles PATCH /api/v1/airports/{id}
func UpdateAirportHandler(svc AirportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req dtos.AirportUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		airport, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, airport)
	}
}

// DeleteAirportHandler handles DELETE /api/v1/airports/{id}
func DeleteAirportHandler(svc AirportService) http.HandlerFunc {
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
