// Package mcp9808 reads temperatures from an MCP9808 on the default I²C bus.
package mcp9808

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/mcp9808"
	"periph.io/x/host/v3"

	"github.com/mtraver/tempseries/sensor"
)

type MCP9808 struct {
	bus i2c.BusCloser
	dev *mcp9808.Dev
}

func init() {
	sensor.Register("mcp9808", &MCP9808{})
}

func (s *MCP9808) Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		return fmt.Errorf("failed to open I²C bus: %w", err)
	}

	d, err := mcp9808.New(bus, &mcp9808.DefaultOpts)
	if err != nil {
		bus.Close()
		return fmt.Errorf("failed to initialize MCP9808: %w", err)
	}

	s.bus = bus
	s.dev = d
	return nil
}

func (s *MCP9808) Sense() (physic.Temperature, error) {
	if s.dev == nil {
		return 0, fmt.Errorf("MCP9808 not initialized")
	}
	return s.dev.SenseTemp()
}

func (s *MCP9808) Shutdown() error {
	if s.bus == nil {
		return nil
	}

	err := s.bus.Close()
	s.bus = nil
	s.dev = nil
	return err
}
