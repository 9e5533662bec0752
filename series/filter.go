package series

import (
	"slices"
)

// LessThan returns the readings strictly less than threshold, sorted
// ascending. The series itself is left untouched.
func (s *Series) LessThan(threshold float64) ([]float64, error) {
	return s.filter(func(r float64) bool { return r < threshold })
}

// AtLeast returns every reading that LessThan would leave out, sorted
// ascending. For ordinary numbers that is r >= threshold; NaN readings land
// here too, so the two results always partition the series.
func (s *Series) AtLeast(threshold float64) ([]float64, error) {
	return s.filter(func(r float64) bool { return !(r < threshold) })
}

func (s *Series) filter(keep func(float64) bool) ([]float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(s.readings))
	for _, r := range s.readings {
		if keep(r) {
			out = append(out, r)
		}
	}
	slices.Sort(out)

	return out, nil
}
