package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"airfield-ops/towerlog/internal/common"
	"airfield-ops/towerlog/internal/models/dtos"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 5 * time.Second

	recentFlightCount   = 10
	busiestAirportCount = 5
)

// StatsStore is the aggregate-query surface the dashboard reads from
type StatsStore interface {
	CountFlightsSince(ctx context.Context, since time.Time) (int64, error)
	CountActiveAircraft(ctx context.Context) (int64, error)
	CountActivePilots(ctx context.Context) (int64, error)
	CountAirports(ctx context.Context) (int64, error)
	BusiestAirports(ctx context.Context, since time.Time, limit int) ([]dtos.BusiestAirport, error)
}

// FlightLister provides the enriched recent-flights feed
type FlightLister interface {
	List(ctx context.Context, f dtos.FlightFilter) ([]dtos.FlightResponse, error)
}

// DashboardService computes the activity snapshot. All window boundaries in
// one snapshot derive from a single reference clock read: today-start is
// local midnight, week-start is seven days before that. The sub-queries run
// as separate statements (concurrently), so counts can skew slightly under
// concurrent writes; the store gives no cross-statement isolation here.
type DashboardService struct {
	stats   StatsStore
	flights FlightLister
	cache   common.CacheInterface
}

func NewDashboardService(stats StatsStore, flights FlightLister, cache common.CacheInterface) *DashboardService {
	return &DashboardService{
		stats:   stats,
		flights: flights,
		cache:   cache,
	}
}

// GetStats returns the current snapshot, serving a cached one when fresh.
// The cache lookup decodes into the concrete type so a serializing backend
// (Redis) serves hits the same as the in-memory store.
func (s *DashboardService) GetStats(ctx context.Context) (*dtos.DashboardStats, error) {
	var cached dtos.DashboardStats
	if s.cache.GetInto(dashboardCacheKey, &cached) {
		return &cached, nil
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)

	var stats dtos.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.stats.CountFlightsSince(gctx, todayStart)
		stats.TotalFlightsToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountFlightsSince(gctx, weekStart)
		stats.TotalFlightsWeek = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountActiveAircraft(gctx)
		stats.TotalAircraft = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountActivePilots(gctx)
		stats.TotalPilots = n
		return err
	})
	g.Go(func() error {
		n, err := s.stats.CountAirports(gctx)
		stats.TotalAirports = n
		return err
	})
	g.Go(func() error {
		rows, err := s.stats.BusiestAirports(gctx, weekStart, busiestAirportCount)
		stats.BusiestAirports = rows
		return err
	})
	g.Go(func() error {
		recent, err := s.flights.List(gctx, dtos.FlightFilter{Limit: recentFlightCount})
		stats.RecentFlights = recent
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.RecentFlights == nil {
		stats.RecentFlights = []dtos.FlightResponse{}
	}
	if stats.BusiestAirports == nil {
		stats.BusiestAirports = []dtos.BusiestAirport{}
	}

	s.cache.Set(dashboardCacheKey, &stats, dashboardCacheTTL)
	return &stats, nil
}
