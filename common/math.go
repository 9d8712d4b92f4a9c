package common

import "math"

// Epsilon absorbs the drift that accumulates when fractional steps are summed.
const Epsilon = 1e-6

// Approx reports whether a and b are equal within Epsilon.
func Approx(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// CellAt returns the cell containing a continuous grid coordinate. Cell x
// spans [x, x+1), matching the diamond the projection draws for it.
func CellAt(v float64) int {
	return int(math.Floor(v + Epsilon))
}
