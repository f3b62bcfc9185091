package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"memegrip/internal/catalog"
	"memegrip/internal/config"
	"memegrip/internal/eventbus"
	"memegrip/internal/favorites"
	"memegrip/internal/imgflip"
	"memegrip/internal/kv"
	"memegrip/internal/logging"
)

// options are the persistent flags shared by every command
type options struct {
	configPath  string
	endpoint    string
	debounce    time.Duration
	storage     string
	storagePath string
	verbose     bool
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default <config dir>/memegrip/config.toml)")
	flags.StringVar(&o.endpoint, "endpoint", "", "template listing endpoint")
	flags.DurationVar(&o.debounce, "debounce", config.DefaultDebounce, "quiet period before a typed query is searched")
	flags.StringVar(&o.storage, "storage", "", "favorites backend: file, sqlite or memory")
	flags.StringVar(&o.storagePath, "storage-path", "", "favorites file or database")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
}

func (o *options) configService(bus eventbus.EventBus) config.ConfigService {
	if o.configPath != "" {
		return config.NewConfigServiceAt(o.configPath, bus)
	}
	return config.NewConfigServiceWithBus(bus)
}

// loadConfig reads the config file and applies the flags the user set
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := o.configService(nil).Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = o.endpoint
	}
	if flags.Changed("debounce") {
		cfg.Debounce = config.Duration(o.debounce)
	}
	if flags.Changed("storage") {
		cfg.Storage.Backend = o.storage
		if !flags.Changed("storage-path") {
			cfg.Storage.Path = ""
		}
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = o.storagePath
	}
	if o.verbose {
		cfg.Log.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// App holds the services the commands share
type App struct {
	Config    *config.Config
	ConfigSvc config.ConfigService
	Logger    *zap.Logger
	Bus       eventbus.EventBus
	Store     *catalog.Store
	Favorites *favorites.Manager

	kv kv.Store
}

// openApp builds the service graph: config, logger, bus, template store and
// the favorites manager with its persisted set loaded
func (o *options) openApp(cmd *cobra.Command) (*App, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Verbose)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New(logger)

	client := imgflip.NewClient(cfg.Endpoint,
		imgflip.WithTimeout(cfg.HTTPTimeout.Std()),
		imgflip.WithLogger(logger),
	)

	store, err := kv.Open(cfg.Storage.Backend, cfg.StoragePath())
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("failed to open favorites storage: %w", err)
	}

	favs := favorites.NewManager(store, config.FavoritesKey, bus, logger)
	favs.Load()

	logger.Info("memegrip started",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("storage", cfg.Storage.Backend),
		zap.Duration("debounce", cfg.Debounce.Std()),
	)

	return &App{
		Config:    cfg,
		ConfigSvc: o.configService(bus),
		Logger:    logger,
		Bus:       bus,
		Store:     catalog.NewStore(client, bus, logger),
		Favorites: favs,
		kv:        store,
	}, nil
}

// Close releases storage and stops the bus
func (a *App) Close() error {
	err := a.kv.Close()
	a.Bus.Close()
	_ = a.Logger.Sync()
	return err
}
