package analytics

import (
	"sort"
	"strconv"
	"time"

	"fleetops/fleetdeck/internal/constants"
	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

// Filters is the current dashboard filter selection. Empty values and the
// "all-*" sentinels are wildcards. Categories, when non-empty, restricts to
// an explicit category allow-set (e.g. SF + 135 for revenue analytics).
type Filters struct {
	Month      string
	Year       string
	AircraftID string
	PilotID    string
	Categories []string
}

func isWildcard(selected, sentinel string) bool {
	return selected == "" || selected == sentinel
}

// selectedInt parses a numeric filter dimension. Returns ok=false for
// wildcards and unparseable values, which both match everything.
func selectedInt(selected, sentinel string) (int, bool) {
	if isWildcard(selected, sentinel) {
		return 0, false
	}
	n, err := strconv.Atoi(selected)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Match reports whether a flight passes every filter dimension.
func (f Filters) Match(fl gormModels.Flight) bool {
	if m, ok := selectedInt(f.Month, constants.FilterAllMonths); ok && int(fl.Date.Month()) != m {
		return false
	}
	if y, ok := selectedInt(f.Year, constants.FilterAllYears); ok && fl.Date.Year() != y {
		return false
	}
	if !isWildcard(f.AircraftID, constants.FilterAllAircraft) {
		if fl.AircraftID == nil || *fl.AircraftID != f.AircraftID {
			return false
		}
	}
	if !isWildcard(f.PilotID, constants.FilterAllPilots) {
		if fl.PilotID == nil || *fl.PilotID != f.PilotID {
			return false
		}
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if fl.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterFlights returns the flights passing the filter selection.
func FilterFlights(flights []gormModels.Flight, f Filters) []gormModels.Flight {
	out := make([]gormModels.Flight, 0, len(flights))
	for _, fl := range flights {
		if f.Match(fl) {
			out = append(out, fl)
		}
	}
	return out
}

// GroupStat holds the derived statistics for one aggregation group. Tach
// fields are populated for aircraft groupings only.
type GroupStat struct {
	Key               string  `json:"key"`
	Label             string  `json:"label"`
	FlightCount       int     `json:"flightCount"`
	TotalHours        float64 `json:"totalHours"`
	TotalPassengers   float64 `json:"totalPassengers"`
	AverageHours      float64 `json:"averageHours"`
	AveragePassengers float64 `json:"averagePassengers"`
	TotalTach         float64 `json:"totalTach,omitempty"`
	AverageTach       float64 `json:"averageTach,omitempty"`
}

// keyFunc maps a flight to its group key and display label. ok=false
// excludes the flight from this grouping.
type keyFunc func(gormModels.Flight) (key, label string, ok bool)

// groupBy partitions flights by key, preserving first-encounter order of
// keys. Running sums are kept at full precision; only the final ratios are
// rounded for display.
func groupBy(flights []gormModels.Flight, fn keyFunc, withTach bool) []GroupStat {
	var order []string
	groups := make(map[string]*GroupStat)

	for _, fl := range flights {
		key, label, ok := fn(fl)
		if !ok {
			continue
		}
		g := groups[key]
		if g == nil {
			g = &GroupStat{Key: key, Label: label}
			groups[key] = g
			order = append(order, key)
		}
		g.FlightCount++
		g.TotalHours += ResolveDuration(fl)
		g.TotalPassengers += fl.PassengerCount
		if withTach {
			g.TotalTach += TachDiff(fl)
		}
	}

	out := make([]GroupStat, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.FlightCount > 0 {
			n := float64(g.FlightCount)
			g.AverageHours = Round2(g.TotalHours / n)
			g.AveragePassengers = Round1(g.TotalPassengers / n)
			if withTach {
				g.AverageTach = Round2(g.TotalTach / n)
			}
		}
		out = append(out, *g)
	}
	return out
}

// GroupByAircraft aggregates per aircraft. Flights without an aircraft
// reference are excluded from this grouping; pilot and route groupings use
// fallback labels instead. names maps aircraft id to display label.
func GroupByAircraft(flights []gormModels.Flight, names map[string]string) []GroupStat {
	return groupBy(flights, func(fl gormModels.Flight) (string, string, bool) {
		if fl.AircraftID == nil || *fl.AircraftID == "" {
			return "", "", false
		}
		id := *fl.AircraftID
		label := names[id]
		if label == "" {
			label = id
		}
		return id, label, true
	}, true)
}

// GroupByPilot aggregates per pilot display name, with unattributed flights
// collected under the "Unknown" label. names maps pilot id to display name.
func GroupByPilot(flights []gormModels.Flight, names map[string]string) []GroupStat {
	return groupBy(flights, func(fl gormModels.Flight) (string, string, bool) {
		name := constants.UnknownPilotLabel
		if fl.PilotID != nil {
			if n := names[*fl.PilotID]; n != "" {
				name = n
			}
		}
		return name, name, true
	}, false)
}

// GroupByRoute aggregates per route label; flights without a route fall back
// to the "Local" label.
func GroupByRoute(flights []gormModels.Flight) []GroupStat {
	return groupBy(flights, func(fl gormModels.Flight) (string, string, bool) {
		route := fl.Route
		if route == "" {
			route = constants.LocalRouteLabel
		}
		return route, route, true
	}, false)
}

// TrendBucket is one calendar month of the trailing-year trend view.
type TrendBucket struct {
	Month           string  `json:"month"` // YYYY-MM
	Label           string  `json:"label"` // e.g. "Aug 2026"
	FlightCount     int     `json:"flightCount"`
	TotalHours      float64 `json:"totalHours"`
	TotalPassengers float64 `json:"totalPassengers"`
	FuelAdded       float64 `json:"fuelAdded"`
}

// MonthlyTrend buckets flights into a fixed trailing 12-month window ending
// at the month of now (inclusive). Months with no matching flights are
// zero-filled, never omitted, and the result is chronological.
func MonthlyTrend(flights []gormModels.Flight, now time.Time) []TrendBucket {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	buckets := make([]TrendBucket, 12)
	index := make(map[string]int, 12)
	for i := 0; i < 12; i++ {
		m := start.AddDate(0, i, 0)
		key := m.Format("2006-01")
		buckets[i] = TrendBucket{Month: key, Label: m.Format("Jan 2006")}
		index[key] = i
	}

	for _, fl := range flights {
		i, ok := index[fl.Date.Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].FlightCount++
		buckets[i].TotalHours += ResolveDuration(fl)
		buckets[i].TotalPassengers += fl.PassengerCount
		buckets[i].FuelAdded += fl.FuelAdded
	}

	for i := range buckets {
		buckets[i].TotalHours = Round2(buckets[i].TotalHours)
		buckets[i].FuelAdded = Round2(buckets[i].FuelAdded)
	}
	return buckets
}

// SortField selects the comparison column for stat ordering.
type SortField string

const (
	SortByFlights    SortField = "flightCount"
	SortByHours      SortField = "totalHours"
	SortByAvgHours   SortField = "averageHours"
	SortByPassengers SortField = "totalPassengers"
	SortByTach       SortField = "totalTach"
	SortByLabel      SortField = "label"
)

func statValue(g GroupStat, field SortField) float64 {
	switch field {
	case SortByHours:
		return g.TotalHours
	case SortByAvgHours:
		return g.AverageHours
	case SortByPassengers:
		return g.TotalPassengers
	case SortByTach:
		return g.TotalTach
	default:
		return float64(g.FlightCount)
	}
}

// SortStats orders stats by the selected field. The sort is stable, so ties
// keep the first-encounter order the grouping produced. Default callers pass
// SortByFlights descending.
func SortStats(stats []GroupStat, field SortField, ascending bool) {
	sort.SliceStable(stats, func(i, j int) bool {
		if field == SortByLabel {
			if ascending {
				return stats[i].Label < stats[j].Label
			}
			return stats[i].Label > stats[j].Label
		}
		a, b := statValue(stats[i], field), statValue(stats[j], field)
		if ascending {
			return a < b
		}
		return a > b
	})
}
