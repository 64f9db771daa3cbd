package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"

	"pincab/internal/domain"
)

// Config holds all application configuration. Everything under the top-level
// keys round-trips through the YAML config file.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Preferences PreferencesConfig `mapstructure:"preferences"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig holds the cabinet backend address.
type ServerConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// PreferencesConfig holds durable user preferences. EmulatorID of -1 means
// no emulator has been selected yet.
type PreferencesConfig struct {
	EmulatorID int        `mapstructure:"emulator_id"`
	Search     string     `mapstructure:"search"`
	Sort       SortConfig `mapstructure:"sort"`
	Language   string     `mapstructure:"language"`
}

// SortConfig is the persisted form of domain.SortSpec.
type SortConfig struct {
	Key string `mapstructure:"key"`
	Dir int    `mapstructure:"dir"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://192.168.0.5:8089/api/v1",
		},
		Preferences: PreferencesConfig{
			EmulatorID: -1,
			Search:     "",
			Sort:       SortConfig{Key: string(domain.SortByIndex), Dir: int(domain.SortAsc)},
			Language:   "en",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pincab", "pincab.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pincab", "pincab.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pincab")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pincab")
	}
}

// DefaultCacheDir returns the default cache directory for the current OS
func DefaultCacheDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "pincab", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pincab", "cache")
	}
}

// Store loads and saves the config through its own viper instance so
// concurrent stores (tests, mainly) never share state.
type Store struct {
	dir string
	v   *viper.Viper
}

// NewStore creates a preference store rooted at dir. An empty dir selects the
// platform default.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Store{dir: dir, v: viper.New()}
}

// Load merges any previously persisted values over the defaults, field by
// field. A missing or unreadable config file yields the defaults; a sort
// sub-structure with an unknown key or direction is replaced wholesale by the
// default sort rather than partially merged. Values are never validated
// beyond shape (the base URL is not checked to be well-formed here).
func (s *Store) Load() (*Config, error) {
	cfg := Default()

	s.v.SetConfigName("config")
	s.v.SetConfigType("yaml")
	s.v.AddConfigPath(s.dir)

	s.v.SetEnvPrefix("PINCAB")
	s.v.AutomaticEnv()

	if err := s.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Corrupted file: fall back to defaults rather than failing the
			// whole startup. Persistence is best-effort in both directions.
			return Default(), nil
		}
	}

	if err := s.v.Unmarshal(cfg); err != nil {
		return Default(), nil
	}

	sanitize(cfg)
	return cfg, nil
}

// sanitize replaces structurally invalid fields with their defaults so a
// malformed stored value never propagates into the rest of the system.
func sanitize(cfg *Config) {
	def := Default()
	if _, ok := domain.ParseSortKey(cfg.Preferences.Sort.Key); !ok {
		cfg.Preferences.Sort = def.Preferences.Sort
	} else if cfg.Preferences.Sort.Dir != int(domain.SortAsc) && cfg.Preferences.Sort.Dir != int(domain.SortDesc) {
		cfg.Preferences.Sort = def.Preferences.Sort
	}
	if cfg.Preferences.Language != "en" && cfg.Preferences.Language != "fr" {
		cfg.Preferences.Language = def.Preferences.Language
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = def.Server.BaseURL
	}
}

// Save writes the full structure. Failures are returned for logging but the
// interactive layer treats persistence as best-effort and never lets a save
// failure interrupt control flow.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	s.v.Set("server.base_url", cfg.Server.BaseURL)
	s.v.Set("preferences.emulator_id", cfg.Preferences.EmulatorID)
	s.v.Set("preferences.search", cfg.Preferences.Search)
	s.v.Set("preferences.sort.key", cfg.Preferences.Sort.Key)
	s.v.Set("preferences.sort.dir", cfg.Preferences.Sort.Dir)
	s.v.Set("preferences.language", cfg.Preferences.Language)
	s.v.Set("logging.file", cfg.Logging.File)
	s.v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(s.dir, "config.yaml")
	if err := s.v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SortSpec converts the persisted sort fields to the domain form.
func (c *Config) SortSpec() domain.SortSpec {
	key, ok := domain.ParseSortKey(c.Preferences.Sort.Key)
	if !ok {
		return domain.DefaultSort()
	}
	if c.Preferences.Sort.Dir == int(domain.SortDesc) {
		return domain.SortSpec{Key: key, Dir: domain.SortDesc}
	}
	return domain.SortSpec{Key: key, Dir: domain.SortAsc}
}

// SetSortSpec stores a domain sort back into its persisted form.
func (c *Config) SetSortSpec(s domain.SortSpec) {
	c.Preferences.Sort = SortConfig{Key: string(s.Key), Dir: int(s.Dir)}
}
