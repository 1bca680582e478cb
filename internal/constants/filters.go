package constants

// Wildcard filter selections. A dimension set to its wildcard matches every
// flight; the UI sends these verbatim.
const (
	FilterAllMonths   = "all-months"
	FilterAllYears    = "all-years"
	FilterAllAircraft = "all-aircraft"
	FilterAllPilots   = "all-pilots"
)

// Flight category tags. Analytics views that only cover revenue operations
// restrict to the SF/135 subset.
const (
	CategorySF  = "SF"
	Category135 = "135"
)

// Fallback group labels for flights missing the grouping dimension.
const (
	UnknownPilotLabel = "Unknown"
	LocalRouteLabel   = "Local"
)
