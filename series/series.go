// Package series computes summary statistics over an in-memory series of
// temperature readings.
//
// A Series is not safe for concurrent use. Callers that share one between
// goroutines must guard it with their own lock.
package series

import (
	"errors"
	"fmt"
)

// Floor is the lowest reading accepted by New, in degrees Celsius.
const Floor = -273.0

var (
	ErrInvalidInput = errors.New("series: invalid input")
	ErrOutOfRange   = errors.New("series: reading out of range")
)

type Series struct {
	readings []float64
}

// New returns a Series holding a copy of readings. It returns an error
// wrapping ErrInvalidInput if readings is empty and one wrapping
// ErrOutOfRange if any reading is below Floor.
func New(readings []float64) (*Series, error) {
	if err := validate(readings); err != nil {
		return nil, err
	}

	r := make([]float64, len(readings))
	copy(r, readings)
	return &Series{
		readings: r,
	}, nil
}

// NewEmpty returns a Series with no readings. Nothing is validated.
func NewEmpty() *Series {
	return &Series{
		readings: []float64{},
	}
}

func validate(readings []float64) error {
	if len(readings) == 0 {
		return fmt.Errorf("%w: no readings given", ErrInvalidInput)
	}

	for i, r := range readings {
		if r < Floor {
			return fmt.Errorf("%w: reading %v at index %d is below %v", ErrOutOfRange, r, i, Floor)
		}
	}

	return nil
}

// Append adds readings to the end of the series and returns the new number
// of readings. Appended readings are not checked against Floor.
func (s *Series) Append(readings ...float64) int {
	s.readings = append(s.readings, readings...)
	return len(s.readings)
}

func (s *Series) Len() int {
	return len(s.readings)
}

// Readings returns a copy of the readings in insertion order.
func (s *Series) Readings() []float64 {
	r := make([]float64, len(s.readings))
	copy(r, s.readings)
	return r
}

func (s *Series) checkNotEmpty() error {
	if len(s.readings) == 0 {
		return fmt.Errorf("%w: series is empty", ErrInvalidInput)
	}
	return nil
}
