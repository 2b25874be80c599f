package services

import (
	"context"
	"fmt"
	"time"

	"airfield-ops/towerlog/internal/constants"
	"airfield-ops/towerlog/internal/db/repositories"
	"airfield-ops/towerlog/internal/models/dtos"
	gormModels "airfield-ops/towerlog/internal/models/gorm"
)

const (
	flightListLimit    = 100
	flightListMax      = 1000
	pilotHistoryLimit  = 500
	pilotHistoryMax    = 5000
	historyYearsBack   = 10
	historyYearsBackLo = 1
	historyYearsBackHi = 50
)

// FlightService answers flight queries and owns flight CRUD. Every flight it
// returns is enriched with its airport, aircraft, and pilot snapshots; a
// dangling reference becomes a nil side rather than a failed query.
type FlightService struct {
	flights  *repositories.FlightRepository
	airports *repositories.AirportRepository
	aircraft *repositories.AircraftRepository
	pilots   *repositories.PilotRepository
}

func NewFlightService(
	flights *repositories.FlightRepository,
	airports *repositories.AirportRepository,
	aircraft *repositories.AircraftRepository,
	pilots *repositories.PilotRepository,
) *FlightService {
	return &FlightService{
		flights:  flights,
		airports: airports,
		aircraft: aircraft,
		pilots:   pilots,
	}
}

// Create logs a flight after verifying all three referenced entities exist.
// ActualTime defaults to the call instant when omitted.
func (s *FlightService) Create(ctx context.Context, req dtos.FlightCreateRequest) (*dtos.FlightResponse, error) {
	if !req.FlightType.Valid() {
		return nil, fmt.Errorf("%s: %w", constants.MsgInvalidFlightType, ErrValidation)
	}

	airport, err := s.airports.FindByID(ctx, req.AirportID)
	if err != nil {
		return nil, err
	}
	if airport == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAirportNotFound, ErrValidation)
	}

	aircraft, err := s.aircraft.FindByID(ctx, req.AircraftID)
	if err != nil {
		return nil, err
	}
	if aircraft == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgAircraftNotFound, ErrValidation)
	}

	pilot, err := s.pilots.FindByID(ctx, req.PICID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgPilotNotFound, ErrValidation)
	}

	flight := &gormModels.Flight{
		AirportID:          req.AirportID,
		AircraftID:         req.AircraftID,
		PICID:              req.PICID,
		FlightType:         req.FlightType,
		Operation:          req.Operation,
		Runway:             req.Runway,
		ScheduledTime:      req.ScheduledTime,
		OriginAirport:      req.OriginAirport,
		DestinationAirport: req.DestinationAirport,
		CargoWeightLbs:     req.CargoWeightLbs,
		FuelGallons:        req.FuelGallons,
		Remarks:            req.Remarks,
		SquawkCode:         req.SquawkCode,
	}
	if req.ActualTime != nil {
		flight.ActualTime = *req.ActualTime
	} else {
		flight.ActualTime = time.Now().UTC()
	}
	if req.Passengers != nil {
		flight.Passengers = *req.Passengers
	}

	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}

	return &dtos.FlightResponse{
		Flight:   *flight,
		Airport:  airport,
		Aircraft: aircraft,
		Pilot:    pilot,
	}, nil
}

// GetByID returns one enriched flight
func (s *FlightService) GetByID(ctx context.Context, id int64) (*dtos.FlightResponse, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgFlightNotFound, ErrNotFound)
	}

	enriched, err := s.enrich(ctx, []gormModels.Flight{*flight})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// List returns enriched flights matching the filter, newest first
func (s *FlightService) List(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error) {
	f.Skip, f.Limit = normalizePagination(f.Skip, f.Limit, flightListLimit, flightListMax)

	flights, err := s.flights.List(ctx, f, time.Now())
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, flights)
}

// PilotHistory returns the full flight history for one pilot, newest first.
// The lookback window comes from yearsBack (default 10, clamped to 1..50);
// an explicit date_from from the caller is deliberately ignored here.
func (s *FlightService) PilotHistory(ctx context.Context, pilotID int64, yearsBack, skip, limit int) ([]dtos.FlightResponse, error) {
	pilot, err := s.pilots.FindByID(ctx, pilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgPilotNotFound, ErrNotFound)
	}

	if yearsBack == 0 {
		yearsBack = historyYearsBack
	}
	if yearsBack < historyYearsBackLo {
		yearsBack = historyYearsBackLo
	}
	if yearsBack > historyYearsBackHi {
		yearsBack = historyYearsBackHi
	}

	skip, limit = normalizePagination(skip, limit, pilotHistoryLimit, pilotHistoryMax)

	f := dtos.FlightFilter{
		PilotID:   &pilotID,
		YearsBack: &yearsBack,
		Skip:      skip,
		Limit:     limit,
	}
	flights, err := s.flights.List(ctx, f, time.Now())
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, flights)
}

// Update applies the non-nil request fields to a flight record
func (s *FlightService) Update(ctx context.Context, id int64, req dtos.FlightUpdateRequest) (*dtos.FlightResponse, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgFlightNotFound, ErrNotFound)
	}

	if req.FlightType != nil {
		if !req.FlightType.Valid() {
			return nil, fmt.Errorf("%s: %w", constants.MsgInvalidFlightType, ErrValidation)
		}
		flight.FlightType = *req.FlightType
	}
	if req.Operation != nil {
		flight.Operation = *req.Operation
	}
	if req.Runway != nil {
		flight.Runway = req.Runway
	}
	if req.ScheduledTime != nil {
		flight.ScheduledTime = req.ScheduledTime
	}
	if req.ActualTime != nil {
		flight.ActualTime = *req.ActualTime
	}
	if req.OriginAirport != nil {
		flight.OriginAirport = req.OriginAirport
	}
	if req.DestinationAirport != nil {
		flight.DestinationAirport = req.DestinationAirport
	}
	if req.Passengers != nil {
		flight.Passengers = *req.Passengers
	}
	if req.CargoWeightLbs != nil {
		flight.CargoWeightLbs = req.CargoWeightLbs
	}
	if req.FuelGallons != nil {
		flight.FuelGallons = req.FuelGallons
	}
	if req.Remarks != nil {
		flight.Remarks = req.Remarks
	}
	if req.SquawkCode != nil {
		flight.SquawkCode = req.SquawkCode
	}

	if err := s.flights.Save(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}

	enriched, err := s.enrich(ctx, []gormModels.Flight{*flight})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// Delete removes a flight record
func (s *FlightService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.flights.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%s: %w", constants.MsgFlightNotFound, ErrNotFound)
	}
	return nil
}

// enrich batch-fetches the related entities for a page of flights and
// assembles the response rows. A reference that no longer resolves (the
// entity was deleted after the flight was logged) yields a nil side.
func (s *FlightService) enrich(ctx context.Context, flights []gormModels.Flight) ([]dtos.FlightResponse, error) {
	airportIDs := make([]int64, 0, len(flights))
	aircraftIDs := make([]int64, 0, len(flights))
	pilotIDs := make([]int64, 0, len(flights))

	seenAirport := make(map[int64]bool)
	seenAircraft := make(map[int64]bool)
	seenPilot := make(map[int64]bool)
	for _, f := range flights {
		if !seenAirport[f.AirportID] {
			seenAirport[f.AirportID] = true
			airportIDs = append(airportIDs, f.AirportID)
		}
		if !seenAircraft[f.AircraftID] {
			seenAircraft[f.AircraftID] = true
			aircraftIDs = append(aircraftIDs, f.AircraftID)
		}
		if !seenPilot[f.PICID] {
			seenPilot[f.PICID] = true
			pilotIDs = append(pilotIDs, f.PICID)
		}
	}

	airports, err := s.airports.FindByIDs(ctx, airportIDs)
	if err != nil {
		return nil, err
	}
	aircraft, err := s.aircraft.FindByIDs(ctx, aircraftIDs)
	if err != nil {
		return nil, err
	}
	pilots, err := s.pilots.FindByIDs(ctx, pilotIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dtos.FlightResponse, 0, len(flights))
	for _, f := range flights {
		resp := dtos.FlightResponse{Flight: f}
		if a, ok := airports[f.AirportID]; ok {
			resp.Airport = &a
		}
		if a, ok := aircraft[f.AircraftID]; ok {
			resp.Aircraft = &a
		}
		if p, ok := pilots[f.PICID]; ok {
			resp.Pilot = &p
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
