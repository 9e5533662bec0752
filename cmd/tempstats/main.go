// Binary tempstats computes summary statistics over a series of temperature
// readings given on the command line, read from a CSV file, or sampled from a
// sensor.
//
// Usage:
//
//	tempstats summary -- 3 -5 1 5
//	tempstats closest --target 6 -- 3 -5 1 5
//	tempstats below --threshold 2 --csv readings.csv
//	tempstats sense --sensor mcp9808 --samples 10 --interval 2s
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtraver/tempseries/config"
	"github.com/mtraver/tempseries/readingutil"
	"github.com/mtraver/tempseries/series"
)

// Set at build time via -ldflags "-X main.version=1.0.0".
var version = "dev"

type options struct {
	configPath string
	csvPath    string
	json       bool
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tempstats",
		Short: "Summary statistics over a series of temperature readings",
		Long: `tempstats computes statistics over temperature readings in degrees Celsius.

Readings are taken from positional arguments and, if --csv is given, from a
CSV file whose first line is a header and whose rows look like

  timestamp,temp1,temp2,...

Readings below -273 are rejected. Put -- before the readings if any of them
are negative.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			opts.cfg = cfg
			log.Printf("Loaded config: %+v", *cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().StringVar(&opts.csvPath, "csv", "", "path to a CSV file of readings")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		newSummaryCmd(opts),
		newClosestCmd(opts),
		newBelowCmd(opts),
		newAtLeastCmd(opts),
		newAppendCmd(opts),
		newSenseCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tempstats %s\n", version)
		},
	}
}

// readings gathers readings from the CSV file, if any, followed by args.
func (o *options) readings(args []string) ([]float64, error) {
	var readings []float64
	if o.csvPath != "" {
		r, err := readingutil.LoadCSV(o.csvPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", o.csvPath, err)
		}
		log.Printf("Read %d readings from %s", len(r), o.csvPath)
		readings = append(readings, r...)
	}

	r, err := readingutil.ParseReadings(args)
	if err != nil {
		return nil, err
	}

	return append(readings, r...), nil
}

func (o *options) series(args []string) (*series.Series, error) {
	readings, err := o.readings(args)
	if err != nil {
		return nil, err
	}
	return series.New(readings)
}

func (o *options) printer(cmd *cobra.Command) printer {
	return printer{
		w:    cmd.OutOrStdout(),
		json: o.json || o.cfg.Format == config.FormatJSON,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Cobra already prints the error.
		os.Exit(1)
	}
}
