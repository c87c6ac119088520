package query

import "math"

// round1 rounds to one decimal place, half away from zero.
// Every percentage and average the bot reports goes through this, so the
// rounding policy is uniform and pinned by tests.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
