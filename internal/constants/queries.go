package constants

// Raw aggregate queries run through sqlx by the stats repository. Written
// with ? bindvars; the repository rebinds them to the driver's placeholder
// style, so the same text runs on Postgres and on SQLite in tests.
const (
	CountFlightsSince = `
	SELECT COUNT(id) FROM flights WHERE actual_time >= ?
	`

	CountActiveAircraft = `
	SELECT COUNT(id) FROM aircraft WHERE is_active = TRUE
	`

	CountActivePilots = `
	SELECT COUNT(id) FROM pilots WHERE is_active = TRUE
	`

	CountAirports = `
	SELECT COUNT(id) FROM airports
	`

	// Ties share a count; row order among them follows the store's natural
	// ordering, which is fine for a display ranking.
	BusiestAirports = `
	SELECT a.id, a.icao_code, a.name, COUNT(f.id) AS flight_count
	FROM airports a
	JOIN flights f ON f.airport_id = a.id
	WHERE f.actual_time >= ?
	GROUP BY a.id, a.icao_code, a.name
	ORDER BY COUNT(f.id) DESC
	LIMIT ?
	`
)
