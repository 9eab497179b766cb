package calc

import (
	"math"
	"strconv"
)

// Format renders v for the display. A negative precision selects the shortest
// representation that parses back to v, switching to exponent form outside
// [1e-7, 1e21).
func Format(v float64, precision int) string {
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}

	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	if abs := math.Abs(v); v != 0 && (abs < 1e-7 || abs >= 1e21) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
