package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"memegrip/internal/eventbus"
)

const (
	DefaultEndpoint = "https://api.imgflip.com/get_memes"
	DefaultDebounce = 360 * time.Millisecond

	// FavoritesKey is the fixed storage key holding the favorite IDs
	FavoritesKey = "fav_memes"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	Version     int                `toml:"version"`
	Endpoint    string             `toml:"endpoint"`
	HTTPTimeout Duration           `toml:"http_timeout"`
	Debounce    Duration           `toml:"debounce"`
	Suggestions SuggestionSettings `toml:"suggestions"`
	Storage     StorageSettings    `toml:"storage"`
	UISettings  UISettings         `toml:"ui"`
	Log         LogSettings        `toml:"log"`
}

// SuggestionSettings controls the popular-words hint list
type SuggestionSettings struct {
	Pool  int `toml:"pool"`  // how many templates feed the word count
	Limit int `toml:"limit"` // how many words are shown
}

// StorageSettings controls where favorites are persisted
type StorageSettings struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"` // empty means the default for the backend
}

// UISettings represents UI-related configuration
type UISettings struct {
	Skeletons int      `toml:"skeletons"`
	Toast     Duration `toml:"toast"`
}

// LogSettings controls the log file
type LogSettings struct {
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// Duration is a time.Duration that reads and writes as "360ms" in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the memegrip configuration directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "memegrip")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Endpoint: cfg.Endpoint,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Endpoint: DefaultEndpoint,
		Debounce: Duration(DefaultDebounce),
		Suggestions: SuggestionSettings{
			Pool:  40,
			Limit: 10,
		},
		Storage: StorageSettings{
			Backend: BackendFile,
		},
		UISettings: UISettings{
			Skeletons: 6,
			Toast:     Duration(900 * time.Millisecond),
		},
		Log: LogSettings{
			File: filepath.Join(Dir(), "memegrip.log"),
		},
	}
}

// StoragePath returns the favorites location for the configured backend
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Backend {
	case BackendSQLite:
		return filepath.Join(Dir(), "favorites.db")
	case BackendMemory:
		return ""
	default:
		return filepath.Join(Dir(), "favorites.json")
	}
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if c.Debounce < 0 {
		return errors.New("debounce must not be negative")
	}
	return nil
}

// normalize replaces zero values that would break the UI with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	if c.Suggestions.Pool <= 0 {
		c.Suggestions.Pool = def.Suggestions.Pool
	}
	if c.Suggestions.Limit <= 0 {
		c.Suggestions.Limit = def.Suggestions.Limit
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.UISettings.Skeletons <= 0 {
		c.UISettings.Skeletons = def.UISettings.Skeletons
	}
	if c.UISettings.Toast <= 0 {
		c.UISettings.Toast = def.UISettings.Toast
	}
}
