package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc-ca/internal/puzzle"
)

// parseDays turns "YEAR DAY..." arguments into registered days.
func parseDays(args []string) ([]puzzle.Day, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", args[0])
	}
	var out []puzzle.Day
	for _, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", a)
		}
		d, err := puzzle.Lookup(year, n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (c *cli) runner(cmd *cobra.Command) *puzzle.Runner {
	return puzzle.NewRunner(c.cfg.DataDir, cmd.OutOrStdout(), c.logger)
}

func (c *cli) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run YEAR DAY...",
		Short: "Solve days against their puzzle input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := parseDays(args)
			if err != nil {
				return err
			}
			r := c.runner(cmd)
			for i, d := range ds {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Day %s:\n", d.ID())
				c.logger.Info("running day", zap.Stringer("day", d.ID()), zap.String("input", r.InputPath(d)))
				if err := r.Run(d); err != nil {
					return fmt.Errorf("day %s: %w", d.ID(), err)
				}
			}
			return nil
		},
	}
}

func (c *cli) testCmd() *cobra.Command {
	var (
		all      bool
		skipSlow bool
		workers  int
		fixtures string
	)
	cmd := &cobra.Command{
		Use:   "test [YEAR DAY...]",
		Short: "Check days against their example cases",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds []puzzle.Day
			if all {
				year := 0
				if len(args) == 1 {
					y, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid year %q", args[0])
					}
					year = y
				}
				ds = puzzle.Days(year)
			} else {
				var err error
				if ds, err = parseDays(args); err != nil {
					return err
				}
			}
			if len(ds) == 0 {
				return errors.New("no days registered")
			}

			r := c.runner(cmd)
			r.SkipSlow = skipSlow
			r.Workers = workers
			if fixtures == "" {
				fixtures = c.cfg.Fixtures
			}
			if fixtures != "" {
				extra, err := puzzle.LoadFixtures(fixtures)
				if err != nil {
					return err
				}
				r.Extra = extra
				c.logger.Debug("loaded fixtures", zap.String("path", fixtures), zap.Int("days", len(extra)))
			}

			return r.TestAll(cmd.Context(), ds)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "test every registered day, optionally only of one YEAR")
	cmd.Flags().BoolVar(&skipSlow, "skip-slow", false, "skip cases marked slow")
	cmd.Flags().IntVar(&workers, "workers", 0, "days checked concurrently (0 = one per CPU)")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "YAML file with extra example cases")
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [YEAR]",
		Short: "List registered days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := 0
			if len(args) == 1 {
				y, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				year = y
			}
			for _, d := range puzzle.Days(year) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.ID(), d.Title)
			}
			return nil
		},
	}
}

func (c *cli) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new YEAR DAY",
		Short: "Write a skeleton solution package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[1])
			}
			path, err := puzzle.NewDayFile(c.cfg.DaysDir, c.cfg.Module, year, day)
			if err != nil {
				return err
			}
			c.logger.Info("created day", zap.String("path", path))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
