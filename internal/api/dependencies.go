package api

import (
	"airfield-ops/towerlog/internal/common"
	"airfield-ops/towerlog/internal/config"
	"airfield-ops/towerlog/internal/db"
	"airfield-ops/towerlog/internal/db/repositories"
	"airfield-ops/towerlog/internal/logging"
	"airfield-ops/towerlog/internal/services"
)

type Repositories struct {
	Airports *repositories.AirportRepository
	Aircraft *repositories.AircraftRepository
	Pilots   *repositories.PilotRepository
	Flights  *repositories.FlightRepository
	Stats    *repositories.StatsRepository
}

type Services struct {
	Cache     common.CacheInterface
	Airports  *services.AirportService
	Aircraft  *services.AircraftService
	Pilots    *services.PilotService
	Flights   *services.FlightService
	Dashboard *services.DashboardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services off the shared database
// handles. The cache backend falls back to in-memory when Redis is
// unreachable so a missing Redis never blocks startup.
func InitDependencies(cfg *config.Config) (*Dependencies, error) {
	repos := &Repositories{
		Airports: repositories.NewAirportRepository(db.PgDB),
		Aircraft: repositories.NewAircraftRepository(db.PgDB),
		Pilots:   repositories.NewPilotRepository(db.PgDB),
		Flights:  repositories.NewFlightRepository(db.PgDB),
		Stats:    repositories.NewStatsRepository(db.DB),
	}

	var cache common.CacheInterface
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
			cache = common.NewCacheService(60, 600)
		} else {
			cache = redisCache
		}
	} else {
		cache = common.NewCacheService(60, 600)
	}

	flightSvc := services.NewFlightService(repos.Flights, repos.Airports, repos.Aircraft, repos.Pilots)

	svcs := &Services{
		Cache:     cache,
		Airports:  services.NewAirportService(repos.Airports),
		Aircraft:  services.NewAircraftService(repos.Aircraft),
		Pilots:    services.NewPilotService(repos.Pilots),
		Flights:   flightSvc,
		Dashboard: services.NewDashboardService(repos.Stats, flightSvc, cache),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
