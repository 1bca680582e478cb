package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"fleetops/fleetdeck/internal/analytics"
	"fleetops/fleetdeck/internal/common"
	"fleetops/fleetdeck/internal/constants"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/metrics"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
	"fleetops/fleetdeck/internal/realtime"
)

const statsCacheTTL = 30 * time.Second

// AnalyticsService runs the aggregation and reconciliation views over live
// projection snapshots. Aggregation itself is pure; this service only wires
// data in and caches results briefly.
type AnalyticsService struct {
	flightProj   *realtime.Projection[gormModels.Flight]
	aircraftProj *realtime.Projection[gormModels.Aircraft]
	flightRepo   *repositories.FlightRepository
	aircraftRepo *repositories.AircraftRepository
	pilotRepo    *repositories.PilotRepository
	targetRepo   *repositories.RouteTargetRepository
	cache        common.CacheInterface
	metricsReg   *metrics.MetricsRegistry
	now          func() time.Time
	version      atomic.Uint64
}

func NewAnalyticsService(
	flightProj *realtime.Projection[gormModels.Flight],
	aircraftProj *realtime.Projection[gormModels.Aircraft],
	flightRepo *repositories.FlightRepository,
	aircraftRepo *repositories.AircraftRepository,
	pilotRepo *repositories.PilotRepository,
	targetRepo *repositories.RouteTargetRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *AnalyticsService {
	return &AnalyticsService{
		flightProj:   flightProj,
		aircraftProj: aircraftProj,
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		pilotRepo:    pilotRepo,
		targetRepo:   targetRepo,
		cache:        cache,
		metricsReg:   metricsReg,
		now:          time.Now,
	}
}

func (s *AnalyticsService) flights(ctx context.Context) ([]gormModels.Flight, error) {
	if s.flightProj != nil && s.flightProj.State() == realtime.StateReady {
		return s.flightProj.Snapshot(), nil
	}
	return s.flightRepo.List(ctx)
}

func (s *AnalyticsService) aircraftNames(ctx context.Context) (map[string]string, error) {
	var fleet []gormModels.Aircraft
	if s.aircraftProj != nil && s.aircraftProj.State() == realtime.StateReady {
		fleet = s.aircraftProj.Snapshot()
	} else {
		var err error
		fleet, err = s.aircraftRepo.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	names := make(map[string]string, len(fleet))
	for _, ac := range fleet {
		names[ac.ID] = ac.DisplayName()
	}
	return names, nil
}

func (s *AnalyticsService) pilotNames(ctx context.Context) (map[string]string, error) {
	pilots, err := s.pilotRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(pilots))
	for _, p := range pilots {
		names[p.ID] = p.Name
	}
	return names, nil
}

// cacheKey includes the invalidation generation, so a flight write bumps
// every view to a fresh key instead of deleting each parameter combination.
func (s *AnalyticsService) cacheKey(view string, f analytics.Filters, sortField analytics.SortField, ascending bool) string {
	return fmt.Sprintf("stats:v%d:%s:%s:%s:%s:%s:%s:%s:%t",
		s.version.Load(), view, f.Month, f.Year, f.AircraftID, f.PilotID,
		strings.Join(f.Categories, ","), sortField, ascending)
}

// InvalidateStats retires every cached analytics response. Called after
// logbook writes so a dashboard never reads aggregates older than its own
// mutation.
func (s *AnalyticsService) InvalidateStats() {
	s.version.Add(1)
}

// cachedSlice recovers a cached result from either cache backend: the
// in-memory cache hands back the stored slice, the Redis cache hands back
// the JSON bytes it persisted.
func cachedSlice[T any](v any) ([]T, bool) {
	switch val := v.(type) {
	case []T:
		return val, true
	case []byte:
		var out []T
		if err := json.Unmarshal(val, &out); err == nil {
			return out, true
		}
	}
	return nil, false
}

func (s *AnalyticsService) observe(view string, start time.Time) {
	s.metricsReg.AggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

func fetchFailed(err error) *ServiceError {
	return &ServiceError{
		Code:    constants.ErrCodeFetchFailed,
		Message: constants.GetErrorMessage(constants.ErrCodeFetchFailed),
		Err:     err,
	}
}

// AircraftStats aggregates the filtered flight collection per aircraft.
func (s *AnalyticsService) AircraftStats(ctx context.Context, f analytics.Filters, sortField analytics.SortField, ascending bool) ([]analytics.GroupStat, *ServiceError) {
	key := s.cacheKey("aircraft", f, sortField, ascending)
	if cached, found := s.cache.Get(key); found {
		if stats, ok := cachedSlice[analytics.GroupStat](cached); ok {
			s.metricsReg.CacheHitsTotal.WithLabelValues("stats").Inc()
			return stats, nil
		}
	}
	s.metricsReg.CacheMissesTotal.WithLabelValues("stats").Inc()

	start := time.Now()
	defer s.observe("aircraft", start)

	flights, err := s.flights(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}
	names, err := s.aircraftNames(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	stats := analytics.GroupByAircraft(analytics.FilterFlights(flights, f), names)
	analytics.SortStats(stats, sortField, ascending)

	s.cache.Set(key, stats, statsCacheTTL)
	return stats, nil
}

// PilotStats aggregates the filtered flight collection per pilot name.
func (s *AnalyticsService) PilotStats(ctx context.Context, f analytics.Filters, sortField analytics.SortField, ascending bool) ([]analytics.GroupStat, *ServiceError) {
	key := s.cacheKey("pilots", f, sortField, ascending)
	if cached, found := s.cache.Get(key); found {
		if stats, ok := cachedSlice[analytics.GroupStat](cached); ok {
			s.metricsReg.CacheHitsTotal.WithLabelValues("stats").Inc()
			return stats, nil
		}
	}
	s.metricsReg.CacheMissesTotal.WithLabelValues("stats").Inc()

	start := time.Now()
	defer s.observe("pilots", start)

	flights, err := s.flights(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}
	names, err := s.pilotNames(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	stats := analytics.GroupByPilot(analytics.FilterFlights(flights, f), names)
	analytics.SortStats(stats, sortField, ascending)

	s.cache.Set(key, stats, statsCacheTTL)
	return stats, nil
}

// RouteStats aggregates per route and reconciles each route's average time
// against the configured targets under the current filter selection.
func (s *AnalyticsService) RouteStats(ctx context.Context, f analytics.Filters, sortField analytics.SortField, ascending bool) ([]analytics.RouteReport, *ServiceError) {
	key := s.cacheKey("routes", f, sortField, ascending)
	if cached, found := s.cache.Get(key); found {
		if reports, ok := cachedSlice[analytics.RouteReport](cached); ok {
			s.metricsReg.CacheHitsTotal.WithLabelValues("stats").Inc()
			return reports, nil
		}
	}
	s.metricsReg.CacheMissesTotal.WithLabelValues("stats").Inc()

	start := time.Now()
	defer s.observe("routes", start)

	flights, err := s.flights(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}
	targets, err := s.targetRepo.List(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	stats := analytics.GroupByRoute(analytics.FilterFlights(flights, f))
	reports := analytics.Reconcile(stats, targets, f)
	analytics.SortRouteReports(reports, sortField, ascending)

	s.cache.Set(key, reports, statsCacheTTL)
	return reports, nil
}

// Trend buckets the filtered flights into the trailing 12 calendar months.
func (s *AnalyticsService) Trend(ctx context.Context, f analytics.Filters) ([]analytics.TrendBucket, *ServiceError) {
	start := time.Now()
	defer s.observe("trend", start)

	flights, err := s.flights(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}

	return analytics.MonthlyTrend(analytics.FilterFlights(flights, f), s.now()), nil
}
