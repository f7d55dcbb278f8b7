//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"aoc-ca/internal/app"
	"aoc-ca/internal/core"
	"aoc-ca/internal/logging"
	_ "aoc-ca/internal/sims/octopus"
	_ "aoc-ca/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	logger, err := logging.New("info", true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig())
	if err != nil {
		logger.Fatal("cannot create sim", zap.Error(err), zap.Strings("available", core.SimNames()))
	}

	game := app.New(sim, cfg)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("aoc-ca: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	logger.Info("starting viewer", zap.String("sim", sim.Name()), zap.Int("tps", cfg.TPS))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
}
