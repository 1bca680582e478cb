package analytics

import (
	"testing"

	gormModels "fleetops/fleetdeck/internal/models/gorm"
)

func TestResolveDuration_HobbsWins(t *testing.T) {
	fl := gormModels.Flight{HobbsTime: 2.4, TachStart: 100, TachEnd: 101.9}
	if got := ResolveDuration(fl); got != 2.4 {
		t.Errorf("ResolveDuration = %v, want hobbs 2.4", got)
	}
}

func TestResolveDuration_TachFallback(t *testing.T) {
	fl := gormModels.Flight{TachStart: 1200.0, TachEnd: 1201.5}
	if got := ResolveDuration(fl); got != 1.5 {
		t.Errorf("ResolveDuration = %v, want tach diff 1.5", got)
	}
}

func TestResolveDuration_NeverNegative(t *testing.T) {
	cases := []gormModels.Flight{
		{TachStart: 500, TachEnd: 499.2}, // meter regression
		{},                               // all zero
		{HobbsTime: 0, TachStart: 10, TachEnd: 10},
	}
	for i, fl := range cases {
		if got := ResolveDuration(fl); got < 0 {
			t.Errorf("case %d: ResolveDuration = %v, want >= 0", i, got)
		}
	}
}

func TestTachDiff_Regression(t *testing.T) {
	fl := gormModels.Flight{TachStart: 50, TachEnd: 49}
	if got := TachDiff(fl); got != 0 {
		t.Errorf("TachDiff = %v, want 0 on regression", got)
	}
}
