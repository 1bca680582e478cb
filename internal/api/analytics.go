package api

import (
	"net/http"
	"strings"

	"fleetops/fleetdeck/internal/analytics"
	"fleetops/fleetdeck/internal/services"
)

// filtersFromQuery builds the aggregation filter selection from query
// parameters. Unset dimensions behave as wildcards; invalid month/year
// values degrade to wildcards rather than erroring.
func filtersFromQuery(r *http.Request) analytics.Filters {
	q := r.URL.Query()

	month, year := analytics.ParseMonthYear(q.Get("month"), q.Get("year"))

	var categories []string
	if raw := q.Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
	}

	return analytics.Filters{
		Month:      month,
		Year:       year,
		AircraftID: q.Get("aircraft"),
		PilotID:    q.Get("pilot"),
		Categories: categories,
	}
}

func sortFromQuery(r *http.Request) (analytics.SortField, bool) {
	q := r.URL.Query()
	field := analytics.ParseSortField(q.Get("sort"))
	ascending := q.Get("dir") == "asc"
	return field, ascending
}

// AircraftStatsHandler serves the per-aircraft analytics table.
func AircraftStatsHandler(statsSvc *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, asc := sortFromQuery(r)
		stats, svcErr := statsSvc.AircraftStats(r.Context(), filtersFromQuery(r), field, asc)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		if stats == nil {
			stats = []analytics.GroupStat{}
		}
		respondWithSuccess(w, http.StatusOK, &stats)
	}
}

// PilotStatsHandler serves the per-pilot analytics table.
func PilotStatsHandler(statsSvc *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, asc := sortFromQuery(r)
		stats, svcErr := statsSvc.PilotStats(r.Context(), filtersFromQuery(r), field, asc)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		if stats == nil {
			stats = []analytics.GroupStat{}
		}
		respondWithSuccess(w, http.StatusOK, &stats)
	}
}

// RouteStatsHandler serves the route analytics table with target variance.
func RouteStatsHandler(statsSvc *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, asc := sortFromQuery(r)
		reports, svcErr := statsSvc.RouteStats(r.Context(), filtersFromQuery(r), field, asc)
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		if reports == nil {
			reports = []analytics.RouteReport{}
		}
		respondWithSuccess(w, http.StatusOK, &reports)
	}
}

// TrendHandler serves the trailing 12-month chart data.
func TrendHandler(statsSvc *services.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets, svcErr := statsSvc.Trend(r.Context(), filtersFromQuery(r))
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}
		respondWithSuccess(w, http.StatusOK, &buckets)
	}
}
