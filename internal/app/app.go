package app

import (
	"context"
	"fmt"

	"github.com/five82/facet/internal/config"
	"github.com/five82/facet/internal/logging"
	"github.com/five82/facet/internal/ui"
)

// Options configure the facet application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath  string
	StateDir    string
	CatalogURL  string
	CatalogFile string
	Theme       string
}

// Run boots the facet TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg, err = applyOverrides(cfg, opts); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.File(cfg.LogFile, "facet", level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	c, err := Build(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer func() { _ = c.Close() }()

	logger.Info().
		Str("catalog", cfg.CatalogSource()).
		Str("state_backend", cfg.StateBackend).
		Int("selected_filters", c.Flow.Store().Selection().Len()).
		Msg("facet started")

	uiOpts := ui.Options{
		Context:   ctx,
		Flow:      c.Flow,
		Catalog:   c.Catalog,
		Fetcher:   c.Fetcher,
		Source:    cfg.CatalogSource(),
		ThemeName: cfg.Theme,
		Logger:    logger,
	}
	err = ui.Run(uiOpts)
	logger.Info().Err(err).Msg("facet stopped")
	return err
}

func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if opts.StateDir != "" {
		dir, err := config.ExpandPath(opts.StateDir)
		if err != nil {
			return cfg, fmt.Errorf("state dir: %w", err)
		}
		cfg.StateDir = dir
	}
	if opts.CatalogURL != "" {
		cfg.CatalogURL = opts.CatalogURL
		cfg.CatalogFile = ""
	}
	if opts.CatalogFile != "" {
		file, err := config.ExpandPath(opts.CatalogFile)
		if err != nil {
			return cfg, fmt.Errorf("catalog file: %w", err)
		}
		cfg.CatalogFile = file
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	return cfg, nil
}
