package cli

import (
	"fmt"

	"aoc/internal/config"
	"aoc/internal/store"
	"aoc/pkg/logx"
)

// app bundles the pieces every command needs: loaded settings, the
// on-disk store, and the logger.
type app struct {
	cfg   *config.Config
	store *store.Store
	log   logx.Logger

	closeLog func() error
}

// openApp loads the settings file and opens the store. The returned
// close function flushes the log file, if one is configured.
func openApp(opts *RootOptions) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.ConfigExplicit)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	log, closeLog, err := logx.New(logx.Config{
		Level:   level,
		Console: true,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	})
	if err != nil {
		return nil, err
	}

	st, err := store.Open(store.Options{
		CacheDir:  cfg.CacheDir,
		ConfigDir: cfg.ConfigDir,
		DataDir:   cfg.DataDir,
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &app{cfg: cfg, store: st, log: log, closeLog: closeLog}, nil
}

func (a *app) close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}
