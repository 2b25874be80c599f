package dtos

import (
	"time"

	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

type APIResponse[T any] struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
	Data      *T        `json:"data,omitempty"`
}

// FlightResponse is a flight row with its related entities denormalized in.
// A nil side means the reference is dangling (the entity was deleted after
// the flight was logged); the flight itself is still returned.
type FlightResponse struct {
	gormModels.Flight
	Airport  *gormModels.Airport  `json:"airport"`
	Aircraft *gormModels.Aircraft `json:"aircraft"`
	Pilot    *gormModels.Pilot    `json:"pilot"`
}

// BusiestAirport is one row of the dashboard's trailing-week ranking
type BusiestAirport struct {
	ID          int64  `db:"id" json:"id"`
	ICAOCode    string `db:"icao_code" json:"icao_code"`
	Name        string `db:"name" json:"name"`
	FlightCount int64  `db:"flight_count" json:"flight_count"`
}

// DashboardStats is the point-in-time activity snapshot. All counts in one
// snapshot share a single reference clock; see the dashboard service for the
// consistency caveats.
type DashboardStats struct {
	TotalFlightsToday int64            `json:"total_flights_today"`
	TotalFlightsWeek  int64            `json:"total_flights_week"`
	TotalAircraft     int64            `json:"total_aircraft"`
	TotalPilots       int64            `json:"total_pilots"`
	TotalAirports     int64            `json:"total_airports"`
	RecentFlights     []FlightResponse `json:"recent_flights"`
	BusiestAirports   []BusiestAirport `json:"busiest_airports"`
}
