package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
	"airfield-ops/towerlog/internal/services"
)

type mockAirportService struct {
	createFn  func(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error)
	getFn     func(ctx context.Context, id int64) (*gormModels.Airport, error)
	getCodeFn func(ctx context.Context, icao string) (*gormModels.Airport, error)
	listFn    func(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error)
	updateFn  func(ctx context.Context, id int64, req dtos.AirportUpdateRequest) (*gormModels.Airport, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockAirportService) Create(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error) {
	return m.createFn(ctx, req)
}

func (m *mockAirportService) GetByID(ctx context.Context, id int64) (*gormModels.Airport, error) {
	return m.getFn(ctx, id)
}

func (m *mockAirportService) GetByICAO(ctx context.Context, icao string) (*gormModels.Airport, error) {
	return m.getCodeFn(ctx, icao)
}

func (m *mockAirportService) List(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error) {
	return m.listFn(ctx, f)
}

func (m *mockAirportService) Update(ctx context.Context, id int64, req dtos.AirportUpdateRequest) (*gormModels.Airport, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockAirportService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func airportRouter(svc AirportService) chi.Router {
	r := chi.NewRouter()
	r.Get("/airports", ListAirportsHandler(svc))
	r.Post("/airports", CreateAirportHandler(svc))
	r.Get("/airports/code/{icao}", GetAirportByCodeHandler(svc))
	r.Get("/airports/{id}", GetAirportHandler(svc))
	r.Patch("/airports/{id}", UpdateAirportHandler(svc))
	r.Delete("/airports/{id}", DeleteAirportHandler(svc))
	return r
}

func TestCreateAirportHandler(t *testing.T) {
	mock := &mockAirportService{
		createFn: func(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error) {
			return &gormModels.Airport{ID: 1, ICAOCode: "KFDK", Name: req.Name}, nil
		},
	}

	body := `{"icao_code":"kfdk","name":"Frederick Municipal","city":"Frederick","state":"MD","latitude":39.4,"longitude":-77.4}`
	req := httptest.NewRequest(http.MethodPost, "/airports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope[gormModels.Airport](t, rec)
	if resp.Data == nil || resp.Data.ICAOCode != "KFDK" {
		t.Error("Expected created airport in response data")
	}
}

func TestCreateAirportHandler_Duplicate(t *testing.T) {
	mock := &mockAirportService{
		createFn: func(ctx context.Context, req dtos.AirportCreateRequest) (*gormModels.Airport, error) {
			return nil, fmt.Errorf("airport with this ICAO code already exists: %w", services.ErrConflict)
		},
	}

	body := `{"icao_code":"KFDK","name":"Frederick Municipal"}`
	req := httptest.NewRequest(http.MethodPost, "/airports", strings.NewReader(body))
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", rec.Code)
	}
	resp := decodeEnvelope[any](t, rec)
	if resp.Status != "error" || resp.Error == "" {
		t.Errorf("Expected error envelope, got %+v", resp)
	}
}

func TestGetAirportByCodeHandler(t *testing.T) {
	mock := &mockAirportService{
		getCodeFn: func(ctx context.Context, icao string) (*gormModels.Airport, error) {
			if icao != "kfdk" {
				t.Errorf("Expected raw path code kfdk, got %s", icao)
			}
			return &gormModels.Airport{ID: 1, ICAOCode: "KFDK"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/airports/code/kfdk", nil)
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope[gormModels.Airport](t, rec)
	if resp.Data == nil || resp.Data.ICAOCode != "KFDK" {
		t.Error("Expected airport in response data")
	}
}

func TestListAirportsHandler_PassesFilter(t *testing.T) {
	var captured dtos.AirportFilter
	mock := &mockAirportService{
		listFn: func(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error) {
			captured = f
			return []gormModels.Airport{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/airports?state=MD&has_tower=true&search=muni", nil)
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if captured.State == nil || *captured.State != "MD" {
		t.Error("Expected state to reach the filter")
	}
	if captured.HasTower == nil || !*captured.HasTower {
		t.Error("Expected has_tower to reach the filter")
	}
	if captured.Search == nil || *captured.Search != "muni" {
		t.Error("Expected search to reach the filter")
	}
}

func TestListAirportsHandler_BadBool(t *testing.T) {
	mock := &mockAirportService{
		listFn: func(ctx context.Context, f dtos.AirportFilter) ([]gormModels.Airport, error) {
			t.Fatal("Service must not be called on bad params")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/airports?has_tower=maybe", nil)
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestDeleteAirportHandler_NotFound(t *testing.T) {
	mock := &mockAirportService{
		deleteFn: func(ctx context.Context, id int64) error {
			return fmt.Errorf("airport not found: %w", services.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/airports/42", nil)
	rec := httptest.NewRecorder()
	airportRouter(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
