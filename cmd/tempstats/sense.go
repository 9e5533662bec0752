package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtraver/tempseries/sensor"
	_ "github.com/mtraver/tempseries/sensor/dummy"
	_ "github.com/mtraver/tempseries/sensor/mcp9808"
	"github.com/mtraver/tempseries/series"
)

func newSenseCmd(opts *options) *cobra.Command {
	var (
		sensorName string
		samples    int
		interval   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sense",
		Short: "Sample a sensor and print the summary",
		Long: fmt.Sprintf(`Take a batch of readings from a sensor and print them with their summary.

Available sensors: %s`, strings.Join(sensor.Names(), ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("sensor") {
				sensorName = opts.cfg.Sensor
			}
			if !cmd.Flags().Changed("samples") {
				samples = opts.cfg.Samples
			}
			if !cmd.Flags().Changed("interval") {
				interval = opts.cfg.Interval.Duration()
			}

			sn, err := sensor.Get(sensorName)
			if err != nil {
				return err
			}

			log.Printf("Taking %d samples from %s every %v", samples, sensorName, interval)
			readings, err := sensor.Sample(sn, samples, interval)
			if err != nil {
				return err
			}

			s, err := series.New(readings)
			if err != nil {
				return err
			}

			summary, err := s.Summary()
			if err != nil {
				return err
			}
			return opts.printer(cmd).sampled(sensorName, readings, summary)
		},
	}

	cmd.Flags().StringVar(&sensorName, "sensor", "", "name of the sensor to read")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of readings to take")
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between readings")
	return cmd
}
