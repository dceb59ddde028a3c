package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// PickIndex maps a uniform draw r in [0,1) onto an index in [0,n).
// Out-of-range draws are clamped so the result is always a valid index for n > 0.
func PickIndex(r float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(r * float64(n))
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

// RoundPrice rounds half away from zero, matching the currency rounding used by every price formula
func RoundPrice(v float64) int64 {
	return int64(math.Round(v))
}
