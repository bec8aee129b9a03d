package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// newLogger builds the command logger from --log-level.
func newLogger() (*log.Logger, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           lvl,
	}), nil
}

// loadConfig reads --config and applies --difficulty when it is set.
func loadConfig() (config.ArkanoidConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ArkanoidConfig{}, err
	}
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		config.ApplyArkanoidPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadLevels returns the campaign plus --levels-dir, logging skipped files.
func loadLevels(logger *log.Logger) ([]*level.Level, error) {
	levels, skipped, err := level.Catalog(flagLevelsDir)
	for _, e := range skipped {
		logger.Warn("skipping level file", "err", e)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("levels loaded", "count", len(levels))
	return levels, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// session collects everything a UI command needs. The returned cleanup
// closes the store and the log file.
func session() (tui.Options, func(), error) {
	logger, err := newLogger()
	if err != nil {
		return tui.Options{}, nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return tui.Options{}, nil, err
	}
	levels, err := loadLevels(logger)
	if err != nil {
		return tui.Options{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		store = nil
	}

	w, h := terminalSize()
	opts := tui.Options{
		Levels: levels,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  w,
			ScreenH:  h,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Player: os.Getenv("USER"),
		Logger: logger,
	}

	// The alternate screen owns the terminal from here on.
	var logFile *os.File
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logger.Warn("could not open log file", "path", flagLogFile, "err", err)
		}
	}
	if logFile != nil {
		logger.SetOutput(logFile)
	} else {
		logger.SetOutput(io.Discard)
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		if logFile != nil {
			logFile.Close()
		}
	}
	return opts, cleanup, nil
}
