package analytics

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNum_Coercions(t *testing.T) {
	three := 3.5
	four := 4
	str := "2.25"

	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float64", 1.5, 1.5},
		{"float32", float32(2.5), 2.5},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"json number", json.Number("3.75"), 3.75},
		{"numeric string", "12.3", 12.3},
		{"padded string", "  8.1  ", 8.1},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"float pointer", &three, 3.5},
		{"int pointer", &four, 4},
		{"string pointer", &str, 2.25},
		{"nil float pointer", (*float64)(nil), 0},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"unsupported type", struct{}{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Num(tc.in); got != tc.want {
				t.Errorf("Num(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNum_NeverNaNOrInf(t *testing.T) {
	for _, in := range []any{math.NaN(), math.Inf(1), math.Inf(-1), "NaN", "Inf"} {
		got := Num(in)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Num(%v) leaked non-finite value %v", in, got)
		}
		if got != 0 {
			t.Errorf("Num(%v) = %v, want 0", in, got)
		}
	}
}

func TestRounding(t *testing.T) {
	if got := Round1(1.25); got != 1.3 {
		t.Errorf("Round1(1.25) = %v, want 1.3", got)
	}
	if got := Round2(1.018); got != 1.02 {
		t.Errorf("Round2(1.018) = %v, want 1.02", got)
	}
	if got := Round2(1.014); got != 1.01 {
		t.Errorf("Round2(1.014) = %v, want 1.01", got)
	}
}
