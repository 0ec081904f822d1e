package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-crossing/internal/assets"
	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// session bundles what a front-end needs to run one game.
type session struct {
	game    config.CrossingConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	loop    *crossing.Loop
	closeFn func() error
}

// Close releases the log file, if any.
func (s *session) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// newLogger builds the session logger. Output goes to the --log file, or
// nowhere, so it never corrupts the terminal UI.
func newLogger() (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("session", uuid.NewString()), closeFn, nil
}

// newSession loads config and assets and builds the game loop. decode is
// the front-end's asset decoder.
func newSession(ctx context.Context, decode assets.Decoder, screenW, screenH int) (*session, error) {
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closeFn, err := newLogger()
	if err != nil {
		return nil, err
	}

	rt := core.DefaultConfig()
	rt.ScreenW = screenW
	rt.ScreenH = screenH
	rt.TickRate = cfg.Loop.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	cache := assets.NewCache(decode)
	cache.OnReady(func() {
		logger.Info("assets ready", "count", cache.Len())
	})
	if err := cache.Load(ctx, crossing.Manifest()...); err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("load assets: %w", err)
	}

	logger.Info("session created", "seed", rt.Seed, "tick_rate", rt.TickRate, "lives", cfg.Player.Lives)
	return &session{
		game:    cfg,
		runtime: rt,
		logger:  logger,
		loop:    crossing.New(cfg, rt.Seed, cache, logger),
		closeFn: closeFn,
	}, nil
}
