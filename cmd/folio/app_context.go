package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/folio/internal/assets"
	"github.com/alexisbeaulieu97/folio/internal/config"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// AppContext bundles the services every command needs, created once per
// invocation from the persistent flags.
type AppContext struct {
	Config    *config.Config
	Portfolio *content.Portfolio
	Scale     components.ScaleTable
	Theme     components.ThemeMode
	Logger    *logger.Logger

	// ContentPath is the content file in use, empty for the built-in portfolio.
	ContentPath string
}

func loadApp(flags *rootFlags) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	opts := logger.Options{
		Level:         cfg.Logging.Level,
		HumanReadable: cfg.Logging.HumanReadable,
		File:          cfg.Logging.File,
	}
	if opts.File == "" {
		opts.Writer = io.Discard
	}
	log, err := logger.New(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	contentPath := flags.contentPath
	if contentPath == "" {
		contentPath = cfg.Content
	}
	portfolio, err := content.Load(contentPath)
	if err != nil {
		log.Close() //nolint:errcheck
		return nil, err
	}

	scale, err := components.ScaleByName(cfg.Typography.Scale)
	if err != nil {
		log.Close() //nolint:errcheck
		return nil, err
	}
	theme, err := components.ParseThemeMode(cfg.Theme)
	if err != nil {
		log.Close() //nolint:errcheck
		return nil, err
	}

	log.WithFields(map[string]any{
		"config":  flags.configPath,
		"content": contentPath,
		"theme":   theme.String(),
		"scale":   scale.Name(),
	}).Debug("configuration loaded")

	return &AppContext{
		Config:      cfg,
		Portfolio:   portfolio,
		ContentPath: contentPath,
		Scale:       scale,
		Theme:       theme,
		Logger:      log,
	}, nil
}

// Close releases the log file.
func (a *AppContext) Close() error {
	return a.Logger.Close()
}

func (a *AppContext) pageOptions() page.Options {
	opts := page.DefaultOptions()
	opts.CellWidth = a.Config.Decorations.CellWidth
	opts.CellHeight = a.Config.Decorations.CellHeight
	opts.Assets = assets.NewPlaceholder(opts.CellWidth, opts.CellHeight)
	return opts
}

func (a *AppContext) stateOptions(theme components.ThemeMode) []page.StateOption {
	return []page.StateOption{
		page.WithTheme(theme),
		page.WithDecorations(a.Config.Decorations.Enabled),
		page.WithParticles(a.Config.Decorations.Particles),
	}
}
