package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fleetops/fleetdeck/internal/analytics"
	"fleetops/fleetdeck/internal/common"
	"fleetops/fleetdeck/internal/db/repositories"
	"fleetops/fleetdeck/internal/models/dtos"
	gormModels "fleetops/fleetdeck/internal/models/gorm"

	"gorm.io/gorm"
)

func newAnalyticsService(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(
		nil, nil,
		repositories.NewFlightRepository(db),
		repositories.NewAircraftRepository(db),
		repositories.NewPilotRepository(db),
		repositories.NewRouteTargetRepository(db),
		common.NewCacheService(60, 600),
		testMetricsReg,
	)
}

func seedFlight(t *testing.T, db *gorm.DB, fl gormModels.Flight) {
	t.Helper()
	if err := db.Create(&fl).Error; err != nil {
		t.Fatalf("seed flight: %v", err)
	}
}

func TestAnalyticsService_AircraftStats(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Create(&gormModels.Aircraft{ID: "ac-x", TailNumber: "N123AB", Make: "Cessna", Model: "172", IsActive: true}).Error; err != nil {
		t.Fatalf("seed aircraft: %v", err)
	}
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 2.0, PassengerCount: 2})
	seedFlight(t, db, gormModels.Flight{ID: "f2", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 1.0, PassengerCount: 4})
	seedFlight(t, db, gormModels.Flight{ID: "f3", Date: jun, HobbsTime: 9.0}) // no aircraft, excluded

	service := newAnalyticsService(db)

	stats, svcErr := service.AircraftStats(context.Background(), analytics.Filters{}, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats: %v", svcErr)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(stats))
	}
	g := stats[0]
	if g.Label != "N123AB (Cessna 172)" {
		t.Errorf("Label = %q", g.Label)
	}
	if g.FlightCount != 2 || g.TotalHours != 3.0 || g.AverageHours != 1.5 {
		t.Errorf("Stats = %+v", g)
	}
}

func TestAnalyticsService_AircraftStats_CachesResult(t *testing.T) {
	db := setupTestDB(t)
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 1.0})

	service := newAnalyticsService(db)
	ctx := context.Background()
	sel := analytics.Filters{}

	first, svcErr := service.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats: %v", svcErr)
	}

	// a new flight inside the cache window is not visible yet
	seedFlight(t, db, gormModels.Flight{ID: "f2", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 1.0})

	second, svcErr := service.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats: %v", svcErr)
	}
	if second[0].FlightCount != first[0].FlightCount {
		t.Errorf("Cached view changed: %d vs %d", second[0].FlightCount, first[0].FlightCount)
	}
}

// jsonCache mimics the Redis cache contract: values are marshaled on Set
// and come back as raw JSON bytes on Get.
type jsonCache struct {
	entries map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{entries: make(map[string][]byte)}
}

func (c *jsonCache) Set(key string, value interface{}, _ time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = data
}

func (c *jsonCache) Get(key string) (interface{}, bool) {
	data, found := c.entries[key]
	if !found {
		return nil, false
	}
	return data, true
}

func (c *jsonCache) Delete(key string) { delete(c.entries, key) }

func (c *jsonCache) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := c.Get(key); found {
		return val, nil
	}
	val, err := loader()
	if err != nil {
		return nil, err
	}
	c.Set(key, val, duration)
	return val, nil
}

func (c *jsonCache) Close() error { return nil }

var _ common.CacheInterface = (*jsonCache)(nil)

func TestAnalyticsService_JSONBackedCacheRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&gormModels.Aircraft{ID: "ac-x", TailNumber: "N123AB", Make: "Cessna", Model: "172", IsActive: true}).Error; err != nil {
		t.Fatalf("seed aircraft: %v", err)
	}
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", AircraftID: strP("ac-x"), Date: jun, Route: "KPAO-KHAF", HobbsTime: 1.8})
	if err := db.Create(&gormModels.RouteTarget{ID: "t1", Route: "KPAO-KHAF", TargetTime: 1.5}).Error; err != nil {
		t.Fatalf("seed target: %v", err)
	}

	cache := newJSONCache()
	service := NewAnalyticsService(
		nil, nil,
		repositories.NewFlightRepository(db),
		repositories.NewAircraftRepository(db),
		repositories.NewPilotRepository(db),
		repositories.NewRouteTargetRepository(db),
		cache,
		testMetricsReg,
	)
	ctx := context.Background()
	sel := analytics.Filters{}

	first, svcErr := service.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats: %v", svcErr)
	}
	if len(cache.entries) == 0 {
		t.Fatal("Expected the result to be written to the cache")
	}

	// a new flight must stay invisible while the cached bytes decode cleanly
	seedFlight(t, db, gormModels.Flight{ID: "f2", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 1.0})

	second, svcErr := service.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats cached: %v", svcErr)
	}
	if second[0].FlightCount != first[0].FlightCount {
		t.Errorf("Cache was bypassed: %d vs %d flights", second[0].FlightCount, first[0].FlightCount)
	}
	if second[0].Label != first[0].Label || second[0].TotalHours != first[0].TotalHours {
		t.Errorf("Decoded cache entry diverged: %+v vs %+v", second[0], first[0])
	}

	// route reports round-trip too, including the pointer-valued variance
	reports, svcErr := service.RouteStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("RouteStats: %v", svcErr)
	}
	cachedReports, svcErr := service.RouteStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("RouteStats cached: %v", svcErr)
	}
	if len(cachedReports) != len(reports) {
		t.Fatalf("Cached reports length %d, want %d", len(cachedReports), len(reports))
	}
	if cachedReports[0].TargetTime == nil || *cachedReports[0].TargetTime != 1.5 {
		t.Errorf("TargetTime lost in cache round trip: %v", cachedReports[0].TargetTime)
	}
}

func TestFlightsService_WritesInvalidateStatsCache(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&gormModels.Aircraft{ID: "ac-x", TailNumber: "N123AB", IsActive: true}).Error; err != nil {
		t.Fatalf("seed aircraft: %v", err)
	}
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", AircraftID: strP("ac-x"), Date: jun, HobbsTime: 1.0})

	statsSvc := newAnalyticsService(db)
	flightSvc := NewFlightsService(repositories.NewFlightRepository(db), nil, nil, nil, statsSvc, testMetricsReg)
	ctx := context.Background()
	sel := analytics.Filters{}

	before, svcErr := statsSvc.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats: %v", svcErr)
	}
	if before[0].FlightCount != 1 {
		t.Fatalf("Baseline flightCount = %d", before[0].FlightCount)
	}

	if _, svcErr := flightSvc.CreateFlight(ctx, &dtos.FlightRequest{
		AircraftID: strP("ac-x"),
		Date:       "2026-06-11",
		HobbsTime:  2.0,
	}); svcErr != nil {
		t.Fatalf("CreateFlight: %v", svcErr)
	}

	// the write must retire the cached aggregate within the TTL window
	after, svcErr := statsSvc.AircraftStats(ctx, sel, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("AircraftStats after write: %v", svcErr)
	}
	if after[0].FlightCount != 2 {
		t.Errorf("Aggregate still stale after write: flightCount = %d, want 2", after[0].FlightCount)
	}
}

func TestAnalyticsService_PilotStats_UnknownFallback(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Create(&gormModels.Pilot{ID: "p-1", Name: "Ada", IsActive: true}).Error; err != nil {
		t.Fatalf("seed pilot: %v", err)
	}
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", PilotID: strP("p-1"), Date: jun, HobbsTime: 1.0})
	seedFlight(t, db, gormModels.Flight{ID: "f2", Date: jun, HobbsTime: 2.0})

	service := newAnalyticsService(db)

	stats, svcErr := service.PilotStats(context.Background(), analytics.Filters{}, analytics.SortByLabel, true)
	if svcErr != nil {
		t.Fatalf("PilotStats: %v", svcErr)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(stats))
	}
	if stats[0].Label != "Ada" || stats[1].Label != "Unknown" {
		t.Errorf("Labels = %q, %q", stats[0].Label, stats[1].Label)
	}
}

func TestAnalyticsService_RouteStats_ReconcilesAgainstTargets(t *testing.T) {
	db := setupTestDB(t)
	jun := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", Date: jun, Route: "KPAO-KHAF", HobbsTime: 1.8})
	if err := db.Create(&gormModels.RouteTarget{ID: "t1", Route: "KPAO-KHAF", TargetTime: 1.5}).Error; err != nil {
		t.Fatalf("seed target: %v", err)
	}

	service := newAnalyticsService(db)

	reports, svcErr := service.RouteStats(context.Background(), analytics.Filters{}, analytics.SortByFlights, false)
	if svcErr != nil {
		t.Fatalf("RouteStats: %v", svcErr)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.TargetTime == nil || *r.TargetTime != 1.5 {
		t.Fatalf("TargetTime = %v", r.TargetTime)
	}
	if *r.Difference != 0.3 || *r.PercentDiff != 20.0 {
		t.Errorf("Variance = %v / %v", *r.Difference, *r.PercentDiff)
	}
}

func TestAnalyticsService_Trend(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	seedFlight(t, db, gormModels.Flight{ID: "f1", Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), HobbsTime: 2.0})

	service := newAnalyticsService(db)
	service.now = func() time.Time { return now }

	buckets, svcErr := service.Trend(context.Background(), analytics.Filters{})
	if svcErr != nil {
		t.Fatalf("Trend: %v", svcErr)
	}
	if len(buckets) != 12 {
		t.Fatalf("Expected 12 buckets, got %d", len(buckets))
	}
	if buckets[11].Month != "2026-08" || buckets[11].TotalHours != 2.0 {
		t.Errorf("Newest bucket = %+v", buckets[11])
	}
}
