package routes

import (
	"github.com/go-chi/chi/v5"

	"airfield-ops/towerlog/internal/api"
	"airfield-ops/towerlog/internal/metrics"
	"airfield-ops/towerlog/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies) {
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		v1.Route("/airports", func(airports chi.Router) {
			airports.Get("/", api.ListAirportsHandler(svcs.Airports))
			airports.Post("/", api.CreateAirportHandler(svcs.Airports))
			airports.Get("/code/{icao}", api.GetAirportByCodeHandler(svcs.Airports))
			airports.Get("/{id}", api.GetAirportHandler(svcs.Airports))
			airports.Patch("/{id}", api.UpdateAirportHandler(svcs.Airports))
			airports.Delete("/{id}", api.DeleteAirportHandler(svcs.Airports))
		})

		v1.Route("/aircraft", func(aircraft chi.Router) {
			aircraft.Get("/", api.ListAircraftHandler(svcs.Aircraft))
			aircraft.Post("/", api.CreateAircraftHandler(svcs.Aircraft))
			aircraft.Get("/tail/{tail_number}", api.GetAircraftByTailHandler(svcs.Aircraft))
			aircraft.Get("/{id}", api.GetAircraftHandler(svcs.Aircraft))
			aircraft.Patch("/{id}", api.UpdateAircraftHandler(svcs.Aircraft))
			aircraft.Delete("/{id}", api.DeleteAircraftHandler(svcs.Aircraft))
		})

		v1.Route("/pilots", func(pilots chi.Router) {
			pilots.Get("/", api.ListPilotsHandler(svcs.Pilots))
			pilots.Post("/", api.CreatePilotHandler(svcs.Pilots))
			pilots.Get("/certificate/{cert}", api.GetPilotByCertificateHandler(svcs.Pilots))
			pilots.Get("/{id}", api.GetPilotHandler(svcs.Pilots))
			pilots.Patch("/{id}", api.UpdatePilotHandler(svcs.Pilots))
			pilots.Delete("/{id}", api.DeletePilotHandler(svcs.Pilots))
		})

		v1.Route("/flights", func(flights chi.Router) {
			flights.Get("/", api.ListFlightsHandler(svcs.Flights))
			flights.Post("/", api.CreateFlightHandler(svcs.Flights))
			flights.Get("/pilot-history/{pilot_id}", api.PilotHistoryHandler(svcs.Flights))
			flights.Get("/{id}", api.GetFlightHandler(svcs.Flights))
			flights.Patch("/{id}", api.UpdateFlightHandler(svcs.Flights))
			flights.Delete("/{id}", api.DeleteFlightHandler(svcs.Flights))
		})

		v1.Get("/dashboard", api.DashboardHandler(svcs.Dashboard))
	})
}
