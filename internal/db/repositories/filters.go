package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"airfield-ops/towerlog/internal/models/dtos"
)

// Clause is one AND-ed predicate. List filters compile to a clause slice so
// that a parameter that was never supplied contributes nothing: an empty bag
// matches everything.
type Clause struct {
	Expr string
	Args []any
}

// Substring-search column sets per entity. The OR-group over these columns
// is appended as a single AND-ed clause.
var (
	airportSearchFields  = []string{"name", "icao_code", "faa_code", "city"}
	aircraftSearchFields = []string{"tail_number", "owner_name", "manufacturer", "model"}
	pilotSearchFields    = []string{"first_name", "last_name", "certificate_number"}
)

func applyClauses(q *gorm.DB, clauses []Clause) *gorm.DB {
	for _, c := range clauses {
		q = q.Where(c.Expr, c.Args...)
	}
	return q
}

// searchClause builds a case-insensitive "contains" OR-group over fields
func searchClause(fields []string, term string) Clause {
	pattern := "%" + strings.ToLower(term) + "%"
	parts := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, f := range fields {
		parts[i] = "LOWER(" + f + ") LIKE ?"
		args[i] = pattern
	}
	return Clause{Expr: "(" + strings.Join(parts, " OR ") + ")", Args: args}
}

func buildAirportClauses(f dtos.AirportFilter) []Clause {
	var clauses []Clause
	if f.State != nil {
		clauses = append(clauses, Clause{"state = ?", []any{strings.ToUpper(*f.State)}})
	}
	if f.AirportType != nil {
		clauses = append(clauses, Clause{"airport_type = ?", []any{*f.AirportType}})
	}
	if f.HasTower != nil {
		clauses = append(clauses, Clause{"has_tower = ?", []any{*f.HasTower}})
	}
	if f.Search != nil && *f.Search != "" {
		clauses = append(clauses, searchClause(airportSearchFields, *f.Search))
	}
	return clauses
}

func buildAircraftClauses(f dtos.AircraftFilter) []Clause {
	var clauses []Clause
	if f.Category != nil {
		clauses = append(clauses, Clause{"category = ?", []any{*f.Category}})
	}
	if f.Manufacturer != nil && *f.Manufacturer != "" {
		clauses = append(clauses, Clause{
			"LOWER(manufacturer) LIKE ?",
			[]any{"%" + strings.ToLower(*f.Manufacturer) + "%"},
		})
	}
	if f.IsActive != nil {
		clauses = append(clauses, Clause{"is_active = ?", []any{*f.IsActive}})
	}
	if f.Search != nil && *f.Search != "" {
		clauses = append(clauses, searchClause(aircraftSearchFields, *f.Search))
	}
	return clauses
}

func buildPilotClauses(f dtos.PilotFilter) []Clause {
	var clauses []Clause
	if f.CertificateType != nil {
		clauses = append(clauses, Clause{"certificate_type = ?", []any{*f.CertificateType}})
	}
	if f.IsActive != nil {
		clauses = append(clauses, Clause{"is_active = ?", []any{*f.IsActive}})
	}
	if f.State != nil {
		clauses = append(clauses, Clause{"state = ?", []any{strings.ToUpper(*f.State)}})
	}
	if f.Search != nil && *f.Search != "" {
		clauses = append(clauses, searchClause(pilotSearchFields, *f.Search))
	}
	return clauses
}

// buildFlightClauses compiles the flight filter bag. Columns are qualified
// because the pilot-name search joins the pilots table onto the same query.
//
// YearsBack uses 365-day years on purpose: the lookback window is
// now − N×365d, not N calendar years, and it takes precedence over an
// explicit DateFrom. DateTo applies independently of which lower bound won.
func buildFlightClauses(f dtos.FlightFilter, now time.Time) []Clause {
	var clauses []Clause
	if f.AirportID != nil {
		clauses = append(clauses, Clause{"flights.airport_id = ?", []any{*f.AirportID}})
	}
	if f.AircraftID != nil {
		clauses = append(clauses, Clause{"flights.aircraft_id = ?", []any{*f.AircraftID}})
	}
	if f.PilotID != nil {
		clauses = append(clauses, Clause{"flights.pic_id = ?", []any{*f.PilotID}})
	}
	if f.FlightType != nil {
		clauses = append(clauses, Clause{"flights.flight_type = ?", []any{*f.FlightType}})
	}
	if f.Operation != nil {
		clauses = append(clauses, Clause{"flights.operation = ?", []any{*f.Operation}})
	}

	if f.YearsBack != nil {
		lookback := now.Add(-time.Duration(*f.YearsBack) * 365 * 24 * time.Hour)
		clauses = append(clauses, Clause{"flights.actual_time >= ?", []any{lookback}})
	} else if f.DateFrom != nil {
		clauses = append(clauses, Clause{"flights.actual_time >= ?", []any{*f.DateFrom}})
	}
	if f.DateTo != nil {
		clauses = append(clauses, Clause{"flights.actual_time <= ?", []any{*f.DateTo}})
	}

	return clauses
}
