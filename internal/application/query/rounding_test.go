package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound1_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{66.66666666, 66.7},
		{66.64, 66.6},
		{0.05, 0.1},
		{0.25, 0.3},
		{-0.05, -0.1},
		{99.99, 100.0},
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, round1(c.in), 1e-9, "round1(%v)", c.in)
	}
}
