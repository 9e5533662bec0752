package main

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [readings...]",
		Short: "Print average, standard deviation, min and max",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.series(args)
			if err != nil {
				return err
			}

			summary, err := s.Summary()
			if err != nil {
				return err
			}
			return opts.printer(cmd).summary(summary)
		},
	}
}

func newClosestCmd(opts *options) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "closest [readings...]",
		Short: "Print the reading closest to a target",
		Long: `Print the reading closest to --target, or to the target in the config file.
With neither set, print the reading closest to zero. Ties go to the reading
that comes first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.series(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("target") && opts.cfg.Target != nil {
				target = *opts.cfg.Target
			}

			var closest float64
			if target == 0 {
				closest, err = s.ClosestToZero()
			} else {
				closest, err = s.ClosestTo(target)
			}
			if err != nil {
				return err
			}
			return opts.printer(cmd).closest(target, closest)
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "value to compare readings against")
	return cmd
}

func newBelowCmd(opts *options) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "below [readings...]",
		Short: "Print readings strictly less than a threshold, sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.series(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = opts.cfg.Threshold
			}

			readings, err := s.LessThan(threshold)
			if err != nil {
				return err
			}
			return opts.printer(cmd).filtered("below", threshold, readings)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0, "exclusive upper bound")
	return cmd
}

func newAtLeastCmd(opts *options) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "atleast [readings...]",
		Short: "Print readings greater than or equal to a threshold, sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.series(args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = opts.cfg.Threshold
			}

			readings, err := s.AtLeast(threshold)
			if err != nil {
				return err
			}
			return opts.printer(cmd).filtered("atleast", threshold, readings)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 0, "inclusive lower bound")
	return cmd
}
