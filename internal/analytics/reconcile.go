package analytics

import (
	"sort"
	"strconv"

	"fleetops/fleetdeck/internal/constants"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

// RouteReport is a route's aggregated stats reconciled against the best
// matching configured target. The target fields are nil when no target
// applies under the current filter selection.
type RouteReport struct {
	GroupStat
	TargetTime  *float64 `json:"targetTime"`
	Difference  *float64 `json:"difference"`
	PercentDiff *float64 `json:"percentDiff"`
}

// dimMatches checks one scoping dimension of a target against the filter
// selection: an unset target value is a wildcard, a set value must equal a
// concrete (non-wildcard) selection.
func dimMatches(targetVal *string, selected, sentinel string) bool {
	if targetVal == nil || *targetVal == "" {
		return true
	}
	if isWildcard(selected, sentinel) {
		return false
	}
	return *targetVal == selected
}

func dimMatchesInt(targetVal *int, selected, sentinel string) bool {
	if targetVal == nil {
		return true
	}
	n, ok := selectedInt(selected, sentinel)
	return ok && *targetVal == n
}

// matchTarget returns the first target in input order that applies to the
// route under the current selection. The first-in-input-order tie-break is a
// deliberate, documented policy: when several targets could match, callers
// control precedence through the order of the targets collection.
func matchTarget(route string, targets []gormModels.RouteTarget, sel Filters) *gormModels.RouteTarget {
	for i := range targets {
		t := &targets[i]
		if t.Route != route {
			continue
		}
		if !dimMatches(t.AircraftID, sel.AircraftID, constants.FilterAllAircraft) {
			continue
		}
		if !dimMatches(t.PilotID, sel.PilotID, constants.FilterAllPilots) {
			continue
		}
		if !dimMatchesInt(t.Month, sel.Month, constants.FilterAllMonths) {
			continue
		}
		if !dimMatchesInt(t.Year, sel.Year, constants.FilterAllYears) {
			continue
		}
		return t
	}
	return nil
}

// Reconcile matches each route's aggregated average time against the
// configured targets. A target of exactly 0 hours is treated as "no target"
// rather than producing an infinite variance.
func Reconcile(routeStats []GroupStat, targets []gormModels.RouteTarget, sel Filters) []RouteReport {
	reports := make([]RouteReport, 0, len(routeStats))
	for _, stat := range routeStats {
		report := RouteReport{GroupStat: stat}
		if t := matchTarget(stat.Key, targets, sel); t != nil && t.TargetTime != 0 {
			target := t.TargetTime
			diff := Round2(stat.AverageHours - target)
			pct := Round2((stat.AverageHours/target - 1) * 100)
			report.TargetTime = &target
			report.Difference = &diff
			report.PercentDiff = &pct
		}
		reports = append(reports, report)
	}
	return reports
}

func reportValue(r RouteReport, field SortField) *float64 {
	switch field {
	case "targetTime":
		return r.TargetTime
	case "difference":
		return r.Difference
	case "percentDiff":
		return r.PercentDiff
	default:
		v := statValue(r.GroupStat, field)
		return &v
	}
}

// SortRouteReports orders reconciled reports by the selected field. Routes
// whose comparison value is nil (no applicable target) sort after every
// non-nil value regardless of direction; ties keep encounter order.
func SortRouteReports(reports []RouteReport, field SortField, ascending bool) {
	sort.SliceStable(reports, func(i, j int) bool {
		if field == SortByLabel {
			if ascending {
				return reports[i].Label < reports[j].Label
			}
			return reports[i].Label > reports[j].Label
		}
		a, b := reportValue(reports[i], field), reportValue(reports[j], field)
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if ascending {
			return *a < *b
		}
		return *a > *b
	})
}

// ParseSortField maps a query-string value to a sort field, defaulting to
// the group's flight count.
func ParseSortField(raw string) SortField {
	switch SortField(raw) {
	case SortByHours, SortByAvgHours, SortByPassengers, SortByTach, SortByLabel,
		"targetTime", "difference", "percentDiff":
		return SortField(raw)
	default:
		return SortByFlights
	}
}

// ParseMonthYear is a small helper for services building Filters from query
// parameters; invalid numbers degrade to the wildcard sentinels.
func ParseMonthYear(month, year string) (string, string) {
	if month != "" && month != constants.FilterAllMonths {
		if _, err := strconv.Atoi(month); err != nil {
			month = constants.FilterAllMonths
		}
	}
	if year != "" && year != constants.FilterAllYears {
		if _, err := strconv.Atoi(year); err != nil {
			year = constants.FilterAllYears
		}
	}
	return month, year
}
