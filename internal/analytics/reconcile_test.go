package analytics

import (
	"testing"

	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

func intPtr(n int) *int { return &n }

func TestReconcile_MatchAndVariance(t *testing.T) {
	stats := []GroupStat{
		{Key: "KPAO-KHAF", Label: "KPAO-KHAF", FlightCount: 2, AverageHours: 1.8},
	}
	targets := []gormModels.RouteTarget{
		{ID: "t1", Route: "KPAO-KHAF", TargetTime: 1.5},
	}

	reports := Reconcile(stats, targets, Filters{})
	if len(reports) != 1 {
		t.Fatalf("got %d reports", len(reports))
	}
	r := reports[0]
	if r.TargetTime == nil || *r.TargetTime != 1.5 {
		t.Fatalf("targetTime = %v", r.TargetTime)
	}
	if *r.Difference != 0.3 {
		t.Errorf("difference = %v, want 0.3", *r.Difference)
	}
	if *r.PercentDiff != 20.0 {
		t.Errorf("percentDiff = %v, want 20.0", *r.PercentDiff)
	}
}

func TestReconcile_NoMatchingTarget(t *testing.T) {
	stats := []GroupStat{{Key: "KSQL-KMRY", Label: "KSQL-KMRY", AverageHours: 1.1}}
	targets := []gormModels.RouteTarget{{ID: "t1", Route: "KPAO-KHAF", TargetTime: 1.5}}

	reports := Reconcile(stats, targets, Filters{})
	if reports[0].TargetTime != nil || reports[0].Difference != nil || reports[0].PercentDiff != nil {
		t.Errorf("unmatched route carried target fields: %+v", reports[0])
	}
}

func TestReconcile_ZeroTargetTreatedAsAbsent(t *testing.T) {
	stats := []GroupStat{{Key: "KPAO-KHAF", Label: "KPAO-KHAF", AverageHours: 1.8}}
	targets := []gormModels.RouteTarget{{ID: "t1", Route: "KPAO-KHAF", TargetTime: 0}}

	reports := Reconcile(stats, targets, Filters{})
	if reports[0].TargetTime != nil {
		t.Errorf("zero-hour target produced a variance: %+v", reports[0])
	}
}

func TestMatchTarget_WildcardDimensions(t *testing.T) {
	targets := []gormModels.RouteTarget{
		{ID: "scoped", Route: "A-B", TargetTime: 2.0, AircraftID: strPtr("ac-x"), Month: intPtr(6)},
		{ID: "open", Route: "A-B", TargetTime: 1.0},
	}

	// concrete selection matching the scoped target wins by input order
	sel := Filters{AircraftID: "ac-x", Month: "6"}
	if got := matchTarget("A-B", targets, sel); got == nil || got.ID != "scoped" {
		t.Fatalf("matchTarget = %+v, want scoped", got)
	}

	// wildcard selection never matches a target scoped to a concrete value
	if got := matchTarget("A-B", targets, Filters{}); got == nil || got.ID != "open" {
		t.Fatalf("matchTarget = %+v, want open", got)
	}

	// mismatched concrete selection skips the scoped target
	sel = Filters{AircraftID: "ac-y", Month: "6"}
	if got := matchTarget("A-B", targets, sel); got == nil || got.ID != "open" {
		t.Fatalf("matchTarget = %+v, want open", got)
	}
}

func TestMatchTarget_FirstInInputOrder(t *testing.T) {
	targets := []gormModels.RouteTarget{
		{ID: "first", Route: "A-B", TargetTime: 1.0},
		{ID: "second", Route: "A-B", TargetTime: 2.0},
	}
	if got := matchTarget("A-B", targets, Filters{}); got == nil || got.ID != "first" {
		t.Fatalf("matchTarget = %+v, want first", got)
	}
}

func TestSortRouteReports_NilSortsLast(t *testing.T) {
	tt := 1.5
	reports := []RouteReport{
		{GroupStat: GroupStat{Key: "no-target"}},
		{GroupStat: GroupStat{Key: "with-target"}, TargetTime: &tt},
	}

	SortRouteReports(reports, "targetTime", true)
	if reports[0].Key != "with-target" {
		t.Errorf("ascending: nil sorted before non-nil")
	}

	SortRouteReports(reports, "targetTime", false)
	if reports[0].Key != "with-target" {
		t.Errorf("descending: nil sorted before non-nil")
	}
}

func TestParseSortField(t *testing.T) {
	if got := ParseSortField("totalHours"); got != SortByHours {
		t.Errorf("got %q", got)
	}
	if got := ParseSortField("nonsense"); got != SortByFlights {
		t.Errorf("default = %q, want flightCount", got)
	}
	if got := ParseSortField("percentDiff"); got != SortField("percentDiff") {
		t.Errorf("got %q", got)
	}
}

func TestParseMonthYear(t *testing.T) {
	m, y := ParseMonthYear("6", "2026")
	if m != "6" || y != "2026" {
		t.Errorf("got %q %q", m, y)
	}
	m, y = ParseMonthYear("junk", "alsojunk")
	if m != "all-months" || y != "all-years" {
		t.Errorf("invalid input degraded to %q %q", m, y)
	}
}
