package sensor

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
)

var (
	sensorsMu sync.Mutex
	sensors   map[string]Sensor
)

type Sensor interface {
	// Init performs any sensor-specific initialization.
	Init() error
	// Sense takes a single temperature reading.
	Sense() (physic.Temperature, error)
	// Shutdown performs any sensor-specific shutdown or cleanup operations.
	Shutdown() error
}

// Register adds a Sensor to the set of available sensors.
func Register(name string, s Sensor) {
	sensorsMu.Lock()
	defer sensorsMu.Unlock()

	if sensors == nil {
		sensors = make(map[string]Sensor)
	}
	sensors[name] = s
}

// Get looks up a sensor by name. It returns an error if no sensor with
// the given name is found.
func Get(name string) (Sensor, error) {
	sensorsMu.Lock()
	defer sensorsMu.Unlock()

	s, ok := sensors[name]
	if !ok {
		return nil, fmt.Errorf("unknown sensor %q", name)
	}
	return s, nil
}

// Names returns the names of all registered sensors, sorted.
func Names() []string {
	sensorsMu.Lock()
	defer sensorsMu.Unlock()

	names := make([]string, 0, len(sensors))
	for name := range sensors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Celsius converts t to degrees Celsius.
func Celsius(t physic.Temperature) float64 {
	return t.Celsius()
}

// Sample initializes s, takes the given number of readings with interval
// between consecutive ones, and shuts s down. Readings are in degrees Celsius.
func Sample(s Sensor, samples int, interval time.Duration) ([]float64, error) {
	if samples < 1 {
		return nil, fmt.Errorf("samples must be at least 1, got %d", samples)
	}

	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize sensor: %w", err)
	}

	temps, err := readMulti(s, samples, interval)
	if shutdownErr := s.Shutdown(); err == nil && shutdownErr != nil {
		err = fmt.Errorf("failed to shut down sensor: %w", shutdownErr)
	}

	return temps, err
}

func readMulti(s Sensor, samples int, interval time.Duration) ([]float64, error) {
	temps := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		temp, err := s.Sense()
		if err != nil {
			return temps, fmt.Errorf("failed to read temp: %w", err)
		}

		temps = append(temps, Celsius(temp))
		if i < samples-1 {
			time.Sleep(interval)
		}
	}

	return temps, nil
}
