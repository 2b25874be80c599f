package api

import (
	"context"
	"encoding/json"
	"net/http"

	"airfield-ops/towerlog/internal/models/dtos"
)

// FlightService is the flight surface the handlers depend on
type FlightService interface {
	Create(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error)
	GetByID(ctx context.Context, id int64) (*dtos.FlightResponse, error)
	List(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error)
	PilotHistory(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error)
	Update(ctx context.Context, id int64, req dtos.FlightUpdateRequest) (*dtos.FlightResponse, error)
	Delete(ctx context.Context, id int64) error
}

// ListFlightsHandler handles GET /api/v1/flights
func ListFlightsHandler(svc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := pagination(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		airportID, err := queryInt64(r, "airport_id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		aircraftID, err := queryInt64(r, "aircraft_id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		pilotID, err := queryInt64(r, "pilot_id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		dateFrom, err := queryTime(r, "date_from")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		dateTo, err := queryTime(r, "date_to")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		yearsBack, err := queryInt(r, "years_back")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		filter := dtos.FlightFilter{
			AirportID:  airportID,
			AircraftID: aircraftID,
			PilotID:    pilotID,
			PilotName:  queryString(r, "pilot_name"),
			FlightType: queryString(r, "flight_type"),
			Operation:  queryString(r, "operation"),
			DateFrom:   dateFrom,
			DateTo:     dateTo,
			YearsBack:  yearsBack,
			Skip:       skip,
			Limit:      limit,
		}

		flights, err := svc.List(r.Context(), filter)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &flights)
	}
}

// PilotHistoryHandler handles GET /api/v1/flights/pilot-history/{pilot_id}
func PilotHistoryHandler(svc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pilotID, err := pathID(r, "pilot_id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		skip, limit, err := pagination(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		yearsBack := 0
		if p, err := queryInt(r, "years_back"); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		} else if p != nil {
			yearsBack = *p
		}

		flights, err := svc.PilotHistory(r.Context(), pilotID, yearsBack, skip, limit)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &flights)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{id}
func GetFlightHandler(svc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		flight, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// CreateFlightHandler handles POST /api/v1/flights
func CreateFlightHandler(svc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.FlightCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		flight, err := svc.Create(r.Context(), req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, flight)
	}
}

// UpdateFlightHandler handles PATCH /api/v1/flights/{id}
func UpdateFlightHandler(svc FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		var req dtos.FlightUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		flight, err := svc.Update(r.Context(), id, req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{id}
func DeleteFlightHandler(svc FlightService) http.HandlerFunc {
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
