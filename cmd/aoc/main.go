package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"aoc-ca/internal/config"
	_ "aoc-ca/internal/days/y2020/day08"
	_ "aoc-ca/internal/days/y2020/day11"
	_ "aoc-ca/internal/days/y2020/day15"
	_ "aoc-ca/internal/days/y2020/day17"
	_ "aoc-ca/internal/days/y2020/day22"
	_ "aoc-ca/internal/days/y2020/day23"
	_ "aoc-ca/internal/days/y2020/day24"
	_ "aoc-ca/internal/days/y2021/day11"
	"aoc-ca/internal/logging"
)

// cli carries the state shared by every subcommand once the root command's
// pre-run hook has resolved configuration.
type cli struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Run and test Advent of Code solutions",
		Long: `aoc runs registered Advent of Code solutions against puzzle input read
from <data-dir>/<year>/<day>.txt, or checks them against their example cases.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(c.v, path)
			if err != nil {
				return err
			}
			c.cfg = cfg
			logger, err := logging.New(cfg.LogLevel, cfg.DevLog)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(out)
	if err := config.BindFlags(c.v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		c.runCmd(),
		c.testCmd(),
		c.listCmd(),
		c.newCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
