package dtos

import "time"

// Filter bags for list endpoints. A nil field means "no constraint", never
// "equals zero value". Skip/Limit of zero fall back to per-endpoint defaults.

type AirportFilter struct {
	State       *string
	AirportType *string
	HasTower    *bool
	Search      *string
	Skip        int
	Limit       int
}

type AircraftFilter struct {
	Category     *string
	Manufacturer *string
	IsActive     *bool
	Search       *string
	Skip         int
	Limit        int
}

type PilotFilter struct {
	CertificateType *string
	IsActive        *bool
	State           *string
	Search          *string
	Skip            int
	Limit           int
}

type FlightFilter struct {
	AirportID  *int64
	AircraftID *int64
	PilotID    *int64
	PilotName  *string
	FlightType *string
	Operation  *string
	DateFrom   *time.Time
	DateTo     *time.Time
	YearsBack  *int
	Skip       int
	Limit      int
}
