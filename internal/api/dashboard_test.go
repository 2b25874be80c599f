package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"airfield-ops/towerlog/internal/models/dtos"
)

type mockDashboardService struct {
	statsFn func(ctx context.Context) (*dtos.DashboardStats, error)
}

func (m *mockDashboardService) GetStats(ctx context.Context) (*dtos.DashboardStats, error) {
	return m.statsFn(ctx)
}

func TestDashboardHandler(t *testing.T) {
	mock := &mockDashboardService{
		statsFn: func(ctx context.Context) (*dtos.DashboardStats, error) {
			return &dtos.DashboardStats{
				TotalFlightsToday: 12,
				TotalFlightsWeek:  85,
				RecentFlights:     []dtos.FlightResponse{},
				BusiestAirports: []dtos.BusiestAirport{
					{ID: 1, ICAOCode: "KFDK", Name: "Frederick Municipal", FlightCount: 51},
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	DashboardHandler(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope[dtos.DashboardStats](t, rec)
	if resp.Data == nil || resp.Data.TotalFlightsToday != 12 {
		t.Error("Expected snapshot in response data")
	}
	if len(resp.Data.BusiestAirports) != 1 || resp.Data.BusiestAirports[0].ICAOCode != "KFDK" {
		t.Errorf("Expected busiest ranking, got %+v", resp.Data.BusiestAirports)
	}
}

func TestDashboardHandler_StoreFault(t *testing.T) {
	mock := &mockDashboardService{
		statsFn: func(ctx context.Context) (*dtos.DashboardStats, error) {
			return nil, errors.New("connection reset")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	DashboardHandler(mock).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
	resp := decodeEnvelope[any](t, rec)
	if resp.Error != "internal server error" {
		t.Errorf("Expected opaque internal error, got %q", resp.Error)
	}
}
