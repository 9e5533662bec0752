package series

import (
	"fmt"
)

// Summary is a snapshot of a Series' statistics. It holds no reference to the
// Series it was computed from.
type Summary struct {
	average   float64
	deviation float64
	min       float64
	max       float64
}

func NewSummary(average, deviation, min, max float64) Summary {
	return Summary{
		average:   average,
		deviation: deviation,
		min:       min,
		max:       max,
	}
}

func (s Summary) Average() float64 {
	return s.average
}

func (s Summary) Deviation() float64 {
	return s.deviation
}

func (s Summary) Min() float64 {
	return s.min
}

func (s Summary) Max() float64 {
	return s.max
}

// Equal reports whether all four statistics are exactly equal.
func (s Summary) Equal(other Summary) bool {
	return s.average == other.average &&
		s.deviation == other.deviation &&
		s.min == other.min &&
		s.max == other.max
}

func (s Summary) String() string {
	return fmt.Sprintf("average=%.3f deviation=%.3f min=%.3f max=%.3f", s.average, s.deviation, s.min, s.max)
}
