package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mtraver/tempseries/readingutil"
	"github.com/mtraver/tempseries/series"
)

func newAppendCmd(opts *options) *cobra.Command {
	var add []float64

	cmd := &cobra.Command{
		Use:   "append --add x,y,... [readings...]",
		Short: "Append readings to a series and print the new count and summary",
		Long: `Build a series from the given readings, or an empty one if there are none,
append the --add readings, and print the new count and summary.

Appended readings are not checked against the -273 floor.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			readings, err := opts.readings(args)
			if err != nil {
				return err
			}
			if err := readingutil.CheckFinite(add...); err != nil {
				return err
			}

			s := series.NewEmpty()
			if len(readings) > 0 {
				if s, err = series.New(readings); err != nil {
					return err
				}
			}

			count := s.Append(add...)
			log.Printf("Appended %d readings", len(add))

			summary, err := s.Summary()
			if err != nil {
				return err
			}
			return opts.printer(cmd).appended(count, summary)
		},
	}

	cmd.Flags().Float64SliceVar(&add, "add", nil, "comma-separated readings to append")
	return cmd
}
