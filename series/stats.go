package series

import (
	"math"
)

func (s *Series) Average() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}

	var sum float64
	for _, r := range s.readings {
		sum += r
	}

	return sum / float64(len(s.readings)), nil
}

// Deviation returns the population standard deviation of the readings.
func (s *Series) Deviation() (float64, error) {
	avg, err := s.Average()
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, r := range s.readings {
		sum += math.Pow(r-avg, 2)
	}

	return math.Sqrt(sum / float64(len(s.readings))), nil
}

func (s *Series) Min() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}

	x := s.readings[0]
	for _, r := range s.readings[1:] {
		if r < x {
			x = r
		}
	}

	return x, nil
}

func (s *Series) Max() (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}

	x := s.readings[0]
	for _, r := range s.readings[1:] {
		if r > x {
			x = r
		}
	}

	return x, nil
}

func (s *Series) ClosestToZero() (float64, error) {
	return s.ClosestTo(0)
}

// ClosestTo returns the reading nearest to target. If several readings are
// equally near, the one appended first wins. NaN readings are never nearest
// unless every reading is NaN.
func (s *Series) ClosestTo(target float64) (float64, error) {
	if err := s.checkNotEmpty(); err != nil {
		return 0, err
	}

	closest := s.readings[0]
	dist := math.Inf(1)
	for _, r := range s.readings {
		if d := math.Abs(r - target); d < dist {
			closest = r
			dist = d
		}
	}

	return closest, nil
}

// Summary computes all four statistics. Each one is a separate pass over the
// readings.
func (s *Series) Summary() (Summary, error) {
	avg, err := s.Average()
	if err != nil {
		return Summary{}, err
	}

	dev, err := s.Deviation()
	if err != nil {
		return Summary{}, err
	}

	min, err := s.Min()
	if err != nil {
		return Summary{}, err
	}

	max, err := s.Max()
	if err != nil {
		return Summary{}, err
	}

	return NewSummary(avg, dev, min, max), nil
}
