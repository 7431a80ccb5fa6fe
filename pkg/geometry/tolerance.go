package geometry

import "math"

// Epsilon is the absolute tolerance used by every near-equality test in this
// package. It is fixed and not configurable.
const Epsilon = 1e-6

// ApproxEqual reports whether a and b differ by at most Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxZero reports whether v is within Epsilon of zero
func ApproxZero(v float64) bool {
	return ApproxEqual(0, v)
}
