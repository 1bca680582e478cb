package analytics

import (
	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

// TachDiff is the engine-meter elapsed time for a flight. A regression
// between readings (data entry error) yields 0, never a negative duration.
func TachDiff(f gormModels.Flight) float64 {
	d := f.TachEnd - f.TachStart
	if d < 0 {
		return 0
	}
	return d
}

// ResolveDuration returns the authoritative elapsed flight time in hours.
// Hobbs time is the pilot-reported value and wins whenever present; the tach
// meter difference is the fallback proxy. Every view that needs a duration
// must go through this resolver so totals stay consistent across screens.
func ResolveDuration(f gormModels.Flight) float64 {
	if f.HobbsTime > 0 {
		return f.HobbsTime
	}
	return TachDiff(f)
}
