package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the marquee application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Source     string
	LogFile    string
	Debug      bool
}

// Run boots the marquee TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closeLog, err := prepare(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	uiOpts.Logger.Info("marquee starting", "source", uiOpts.Source.Location(), "theme", uiOpts.ThemeName)

	if err := ui.Run(uiOpts); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	uiOpts.Logger.Info("marquee stopped")
	return nil
}

// prepare resolves configuration and builds the UI options. The returned
// function closes the log file.
func prepare(ctx context.Context, opts Options) (ui.Options, func() error, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		// The TUI owns the terminal, so there is nowhere else to report this.
		logger, closeLog = logging.Discard(), func() error { return nil }
	}

	source, err := catalog.NewSource(cfg.Source)
	if err != nil {
		_ = closeLog()
		return ui.Options{}, nil, fmt.Errorf("init catalog source: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	return ui.Options{
		Context:   ctx,
		Source:    source,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefs.Path(opts.PrefsPath),
	}, closeLog, nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if source := strings.TrimSpace(opts.Source); source != "" {
		cfg.Source = config.ResolveSource(source)
	}
	if logFile := strings.TrimSpace(opts.LogFile); logFile != "" {
		cfg.LogFile = config.ExpandPath(logFile)
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg
}
