package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/asteroidfall/internal/config"
	"github.com/tomz197/asteroidfall/internal/loop"
	"github.com/tomz197/asteroidfall/internal/session"
)

func main() {
	logger := config.NewLogger(os.Stderr, "game", log.WarnLevel)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worldCfg := loop.EnvWorldConfig()
	s, err := session.New(bufio.NewReader(os.Stdin), os.Stdout, session.Options{
		KeyHold: config.GetEnvDuration(config.EnvKeyHoldMS, config.KeyHoldDuration),
		World:   &worldCfg,
		Seed:    int64(config.GetEnvInt(config.EnvSeed, 0)),
		Logger:  logger,
	})
	if err == nil {
		err = s.Run(ctx)
	}

	_ = term.Restore(fd, oldState)
	if err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}
