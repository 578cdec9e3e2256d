package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/compare"
	"github.com/five82/devicedeck/internal/config"
	"github.com/five82/devicedeck/internal/feed"
	"github.com/five82/devicedeck/internal/logging"
	"github.com/five82/devicedeck/internal/prefs"
	"github.com/five82/devicedeck/internal/state"
	"github.com/five82/devicedeck/internal/ui"
)

// Options configure the devicedeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/devicedeck/prefs.toml
	ReloadSecs int    // seconds; zero keeps the configured interval
	Verbose    bool
}

// Runtime holds the wired components shared by the TUI and the CLI.
type Runtime struct {
	Config  config.Config
	Logger  *zap.Logger
	Catalog *catalog.Store
	Sync    *state.Store
	Compare *compare.Manager
	Source  catalog.Source
}

// Setup loads configuration, builds the logger and performs the first
// catalog load. console, when non-nil, receives log output alongside the
// log file.
func Setup(ctx context.Context, opts Options, console io.Writer) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.ReloadSecs > 0 {
		cfg.ReloadEvery = time.Duration(opts.ReloadSecs) * time.Second
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: level, Console: console})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	source, label, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	status := state.NewStore(label)
	lists, err := source.Load(ctx)
	status.Update(lists, err)
	if err != nil {
		if !cfg.UsesFeed() {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		// A feed outage at startup falls back to the built-in catalog; the
		// reloader keeps trying the feed.
		logger.Warn("catalog feed unavailable, using built-in catalog", zap.String("feed", cfg.FeedURL), zap.Error(err))
		lists = catalog.Default()
	}
	logger.Info("catalog loaded", zap.String("source", label), zap.Int("lists", len(lists)))

	manager := compare.NewManager(logger)
	if err := manager.Subscribe(logChanges(logger)); err != nil {
		return nil, fmt.Errorf("subscribe compare changes: %w", err)
	}

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog.NewStore(lists),
		Sync:    status,
		Compare: manager,
		Source:  source,
	}, nil
}

// Run boots the devicedeck TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	rt, err := Setup(ctx, opts, nil)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Logger.Sync() }()

	StartReloader(ctx, Reloader{
		Catalog:  rt.Catalog,
		Sync:     rt.Sync,
		Source:   rt.Source,
		Interval: rt.Config.ReloadEvery,
		Logger:   rt.Logger.Named("reload"),
	})

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Run(ui.Options{
		Context:        ctx,
		Catalog:        rt.Catalog,
		Compare:        rt.Compare,
		Sync:           rt.Sync,
		Logger:         rt.Logger,
		CurrencySymbol: rt.Config.CurrencySymbol,
		Prefs:          prefs.Load(prefsPath),
		PrefsPath:      prefsPath,
	})
}

// newSource picks the feed when configured, else the catalog file or the
// built-in catalog.
func newSource(cfg config.Config) (catalog.Source, string, error) {
	if cfg.UsesFeed() {
		client, err := feed.NewClient(cfg.FeedURL)
		if err != nil {
			return nil, "", fmt.Errorf("init catalog feed: %w", err)
		}
		return client, "feed " + cfg.FeedURL, nil
	}
	if cfg.CatalogPath != "" {
		return catalog.FileSource{Path: cfg.CatalogPath}, cfg.CatalogPath, nil
	}
	return catalog.FileSource{}, "built-in catalog", nil
}

// logChanges records every compare list change at debug level.
func logChanges(logger *zap.Logger) func(compare.Set) {
	logger = logger.Named("compare.events")
	return func(set compare.Set) {
		logger.Debug("compare list changed",
			zap.Strings("ids", set.IDs()),
			zap.Stringer("stage", set.Stage()),
			zap.Uint64("version", set.Version),
		)
	}
}
