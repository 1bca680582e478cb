package analytics

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Num coerces a possibly-missing or stringy numeric value to a safe float64.
// Absent, non-numeric, NaN and infinite values all degrade to 0 so malformed
// backend rows never propagate NaN into totals. Num never fails.
func Num(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return Num(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return Num(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return Num(f)
	case *float64:
		if n == nil {
			return 0
		}
		return Num(*n)
	case *int:
		if n == nil {
			return 0
		}
		return float64(*n)
	case *string:
		if n == nil {
			return 0
		}
		return Num(*n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Round1 rounds to one decimal place for displayed ratios.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places for displayed ratios.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
