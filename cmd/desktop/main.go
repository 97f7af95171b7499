package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/desktop"
	"github.com/tomz197/asteroidfall/internal/loop"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop", log.InfoLevel)

	seed := int64(config.GetEnvInt(config.EnvSeed, 0))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := loop.EnvWorldConfig()
	world := loop.NewWorld(cfg, rand.New(rand.NewSource(seed)))

	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle("asteroidfall")
	ebiten.SetTPS(config.TargetFPS)

	logger.Info("starting", "seed", seed, "particles", cfg.Particles)
	if err := ebiten.RunGame(desktop.NewGame(world, cfg.Bindings)); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("stopped", "frames", world.Frame())
}
