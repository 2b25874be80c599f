package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/models/dtos"
	"airfield-ops/towerlog/internal/services"
)

type mockFlightService struct {
	createFn  func(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error)
	getFn     func(ctx context.Context, id int64) (*dtos.FlightResponse, error)
	listFn    func(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error)
	historyFn func(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error)
	updateFn  func(ctx context.Context, id int64, req dtos.FlightUpdateRequest) (*dtos.FlightResponse, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockFlightService) Create(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockFlightService) GetByID(ctx context.Context, id int64) (*dtos.FlightResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockFlightService) List(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error) {
	return m.listFn(ctx, f)
}

func (m *mockFlightService) PilotHistory(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error) {
	return m.historyFn(ctx, pilotID, yearsBack, skip, limit)
}

func (m *mockFlightService) Update(ctx context.Context, id int64, req dtos.FlightUpdateRequest) (*dtos.FlightResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockFlightService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func flightRouter(svc FlightService) chi.Router {
	r := chi.NewRouter()
	r.Get("/flights", ListFlightsHandler(svc))
	r.Post("/flights", CreateFlightHandler(svc))
	r.Get("/flights/pilot-history/{pilot_id}", PilotHistoryHandler(svc))
	r.Get("/flights/{id}", GetFlightHandler(svc))
	r.Patch("/flights/{id}", UpdateFlightHandler(svc))
	r.Delete("/flights/{id}", DeleteFlightHandler(svc))
	return r
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse[T] {
	t.Helper()
	var resp dtos.APIResponse[T]
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestListFlightsHandler_PassesFilter(t *testing.T) {
	var captured dtos.FlightFilter
	mock := &mockFlightService{
		listFn: func(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error) {
			captured = f
			return []dtos.FlightResponse{{}, {}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/flights?pilot_name=smith&years_back=3&flight_type=local&skip=5&limit=20", nil)
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeEnvelope[[]dtos.FlightResponse](t, rec)
	if resp.Status != "success" {
		t.Errorf("Expected success status, got %s", resp.Status)
	}
	if resp.Data == nil || len(*resp.Data) != 2 {
		t.Error("Expected 2 flights in response data")
	}

	if captured.PilotName == nil || *captured.PilotName != "smith" {
		t.Error("Expected pilot_name to reach the filter")
	}
	if captured.YearsBack == nil || *captured.YearsBack != 3 {
		t.Error("Expected years_back to reach the filter")
	}
	if captured.FlightType == nil || *captured.FlightType != "local" {
		t.Error("Expected flight_type to reach the filter")
	}
	if captured.Skip != 5 || captured.Limit != 20 {
		t.Errorf("Expected skip=5 limit=20, got %d/%d", captured.Skip, captured.Limit)
	}
	if captured.AirportID != nil || captured.DateFrom != nil {
		t.Error("Expected absent parameters to stay nil")
	}
}

func TestListFlightsHandler_BadParams(t *testing.T) {
	mock := &mockFlightService{
		listFn: func(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error) {
			t.Fatal("Service must not be called on bad params")
			return nil, nil
		},
	}
	router := flightRouter(mock)

	for _, query := range []string{
		"years_back=soon",
		"airport_id=abc",
		"date_from=yesterday",
		"skip=-1",
	} {
		req := httptest.NewRequest(http.MethodGet, "/flights?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %q, got %d", query, rec.Code)
		}
		resp := decodeEnvelope[any](t, rec)
		if resp.Status != "error" || resp.Error == "" {
			t.Errorf("Expected error envelope for %q, got %+v", query, resp)
		}
	}
}

func TestGetFlightHandler_NotFound(t *testing.T) {
	mock := &mockFlightService{
		getFn: func(ctx context.Context, id int64) (*dtos.FlightResponse, error) {
			return nil, fmt.Errorf("flight not found: %w", services.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/flights/42", nil)
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestGetFlightHandler_InvalidID(t *testing.T) {
	mock := &mockFlightService{}

	for _, id := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/flights/"+id, nil)
		rec := httptest.NewRecorder()
		flightRouter(mock).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for id %q, got %d", id, rec.Code)
		}
	}
}

func TestCreateFlightHandler(t *testing.T) {
	mock := &mockFlightService{
		createFn: func(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error) {
			if req.AirportID != 1 || req.FlightType != constants.FlightLocal {
				t.Errorf("Unexpected decoded request: %+v", req)
			}
			resp := &dtos.FlightResponse{}
			resp.ID = 7
			return resp, nil
		},
	}

	body := `{"airport_id":1,"aircraft_id":2,"pic_id":3,"flight_type":"local","operation":"landing"}`
	req := httptest.NewRequest(http.MethodPost, "/flights", strings.NewReader(body))
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope[dtos.FlightResponse](t, rec)
	if resp.Data == nil || resp.Data.ID != 7 {
		t.Error("Expected created flight in response data")
	}
}

func TestCreateFlightHandler_MalformedBody(t *testing.T) {
	mock := &mockFlightService{
		createFn: func(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error) {
			t.Fatal("Service must not be called on malformed body")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/flights", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestPilotHistoryHandler(t *testing.T) {
	var gotPilotID int64
	var gotYearsBack int
	mock := &mockFlightService{
		historyFn: func(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error) {
			gotPilotID = pilotID
			gotYearsBack = yearsBack
			return []dtos.FlightResponse{{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/flights/pilot-history/9?years_back=5", nil)
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotPilotID != 9 {
		t.Errorf("Expected pilot id 9, got %d", gotPilotID)
	}
	if gotYearsBack != 5 {
		t.Errorf("Expected years_back 5, got %d", gotYearsBack)
	}
}

func TestPilotHistoryHandler_UnknownPilot(t *testing.T) {
	mock := &mockFlightService{
		historyFn: func(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error) {
			return nil, fmt.Errorf("pilot not found: %w", services.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/flights/pilot-history/9", nil)
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestDeleteFlightHandler(t *testing.T) {
	mock := &mockFlightService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 42 {
				t.Errorf("Expected id 42, got %d", id)
			}
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/flights/42", nil)
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %s", rec.Body.String())
	}
}

func TestUpdateFlightHandler_ValidationError(t *testing.T) {
	mock := &mockFlightService{
		updateFn: func(ctx context.Context, id int64, req dtos.FlightUpdateRequest) (*dtos.FlightResponse, error) {
			return nil, fmt.Errorf("invalid flight type: %w", services.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/flights/42", strings.NewReader(`{"flight_type":"warp"}`))
	rec := httptest.NewRecorder()
	flightRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}
