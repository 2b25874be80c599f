package dtos

import (
	"time"

	"airfield-ops/towerlog/internal/constants"
)

// Create requests carry required fields by value and optional fields as
// pointers. Update requests are all pointers: a nil field was omitted from
// the request body and leaves the stored value unchanged, which is why
// handlers must decode into these structs rather than into the entity.

type AirportCreateRequest struct {
	ICAOCode      string  `json:"icao_code"`
	FAACode       *string `json:"faa_code"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	County        *string `json:"county"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ElevationFt   *int    `json:"elevation_ft"`
	AirportType   string  `json:"airport_type"`
	Ownership     *string `json:"ownership"`
	Runways       *string `json:"runways"`
	FuelTypes     *string `json:"fuel_types"`
	HasTower      *bool   `json:"has_tower"`
	CTAFFrequency *string `json:"ctaf_frequency"`
}

type AirportUpdateRequest struct {
	FAACode       *string  `json:"faa_code"`
	Name          *string  `json:"name"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	County        *string  `json:"county"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ElevationFt   *int     `json:"elevation_ft"`
	AirportType   *string  `json:"airport_type"`
	Ownership     *string  `json:"ownership"`
	Runways       *string  `json:"runways"`
	FuelTypes     *string  `json:"fuel_types"`
	HasTower      *bool    `json:"has_tower"`
	CTAFFrequency *string  `json:"ctaf_frequency"`
}

type AircraftCreateRequest struct {
	TailNumber    string                     `json:"tail_number"`
	Manufacturer  string                     `json:"manufacturer"`
	Model         string                     `json:"model"`
	YearBuilt     *int                       `json:"year_built"`
	Category      constants.AircraftCategory `json:"category"`
	EngineType    *string                    `json:"engine_type"`
	NumEngines    *int                       `json:"num_engines"`
	MaxPassengers *int                       `json:"max_passengers"`
	OwnerName     string                     `json:"owner_name"`
	OwnerAddress  *string                    `json:"owner_address"`
	OwnerCity     *string                    `json:"owner_city"`
	OwnerState    *string                    `json:"owner_state"`
	IsActive      *bool                      `json:"is_active"`
}

type AircraftUpdateRequest struct {
	Manufacturer  *string                     `json:"manufacturer"`
	Model         *string                     `json:"model"`
	YearBuilt     *int                        `json:"year_built"`
	Category      *constants.AircraftCategory `json:"category"`
	EngineType    *string                     `json:"engine_type"`
	NumEngines    *int                        `json:"num_engines"`
	MaxPassengers *int                        `json:"max_passengers"`
	OwnerName     *string                     `json:"owner_name"`
	OwnerAddress  *string                     `json:"owner_address"`
	OwnerCity     *string                     `json:"owner_city"`
	OwnerState    *string                     `json:"owner_state"`
	IsActive      *bool                       `json:"is_active"`
}

type PilotCreateRequest struct {
	CertificateNumber string                     `json:"certificate_number"`
	FirstName         string                     `json:"first_name"`
	LastName          string                     `json:"last_name"`
	CertificateType   constants.PilotCertificate `json:"certificate_type"`
	Ratings           *string                    `json:"ratings"`
	MedicalClass      *string                    `json:"medical_class"`
	MedicalExpiry     *time.Time                 `json:"medical_expiry"`
	TotalFlightHours  *float64                   `json:"total_flight_hours"`
	Email             *string                    `json:"email"`
	Phone             *string                    `json:"phone"`
	City              *string                    `json:"city"`
	State             *string                    `json:"state"`
	IsActive          *bool                      `json:"is_active"`
}

type PilotUpdateRequest struct {
	FirstName        *string                     `json:"first_name"`
	LastName         *string                     `json:"last_name"`
	CertificateType  *constants.PilotCertificate `json:"certificate_type"`
	Ratings          *string                     `json:"ratings"`
	MedicalClass     *string                     `json:"medical_class"`
	MedicalExpiry    *time.Time                  `json:"medical_expiry"`
	TotalFlightHours *float64                    `json:"total_flight_hours"`
	Email            *string                     `json:"email"`
	Phone            *string                     `json:"phone"`
	City             *string                     `json:"city"`
	State            *string                     `json:"state"`
	IsActive         *bool                       `json:"is_active"`
}

type FlightCreateRequest struct {
	AirportID          int64                `json:"airport_id"`
	AircraftID         int64                `json:"aircraft_id"`
	PICID              int64                `json:"pic_id"`
	FlightType         constants.FlightType `json:"flight_type"`
	Operation          string               `json:"operation"`
	Runway             *string              `json:"runway"`
	ScheduledTime      *time.Time           `json:"scheduled_time"`
	ActualTime         *time.Time           `json:"actual_time"`
	OriginAirport      *string              `json:"origin_airport"`
	DestinationAirport *string              `json:"destination_airport"`
	Passengers         *int                 `json:"passengers"`
	CargoWeightLbs     *float64             `json:"cargo_weight_lbs"`
	FuelGallons        *float64             `json:"fuel_gallons"`
	Remarks            *string              `json:"remarks"`
	SquawkCode         *string              `json:"squawk_code"`
}

type FlightUpdateRequest struct {
	FlightType         *constants.FlightType `json:"flight_type"`
	Operation          *string               `json:"operation"`
	Runway             *string               `json:"runway"`
	ScheduledTime      *time.Time            `json:"scheduled_time"`
	ActualTime         *time.Time            `json:"actual_time"`
	OriginAirport      *string               `json:"origin_airport"`
	DestinationAirport *string               `json:"destination_airport"`
	Passengers         *int                  `json:"passengers"`
	CargoWeightLbs     *float64              `json:"cargo_weight_lbs"`
	FuelGallons        *float64              `json:"fuel_gallons"`
	Remarks            *string               `json:"remarks"`
	SquawkCode         *string               `json:"squawk_code"`
}
