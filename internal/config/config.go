package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"boundless/internal/eventbus"
	"boundless/internal/geometry"
)

// Config represents the application configuration
type Config struct {
	Version    int     `toml:"version"`
	Axis       string  `toml:"axis"`       // "vertical" or "horizontal"
	Spacing    float64 `toml:"spacing"`    // gap between adjacent entries, in rows
	Multiplier float64 `toml:"multiplier"` // content region oversize factor

	Timeline TimelineSettings `toml:"timeline"`
	Refresh  RefreshSettings  `toml:"refresh"`
}

// TimelineSettings configures the demo content source
type TimelineSettings struct {
	StartOffsetDays int  `toml:"start_offset_days"` // initial key relative to today
	Bounded         bool `toml:"bounded"`
	PastDays        int  `toml:"past_days"`   // lower bound when bounded
	FutureDays      int  `toml:"future_days"` // upper bound when bounded
}

// RefreshSettings configures pull-to-refresh behavior
type RefreshSettings struct {
	Enabled bool `toml:"enabled"`
}

// ScrollAxis parses the configured axis, defaulting to vertical
func (c *Config) ScrollAxis() geometry.Axis {
	if c.Axis == "horizontal" {
		return geometry.Horizontal
	}
	return geometry.Vertical
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "boundless")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded()
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded()
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Multiplier < 2 {
		return nil, fmt.Errorf("multiplier must be at least 2, got %g", cfg.Multiplier)
	}
	if cfg.Spacing < 0 {
		return nil, fmt.Errorf("spacing must not be negative, got %g", cfg.Spacing)
	}

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

func (cs *configService) publishLoaded() {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Axis:       "vertical",
		Spacing:    0,
		Multiplier: 6,
		Timeline: TimelineSettings{
			StartOffsetDays: 0,
			Bounded:         false,
			PastDays:        365,
			FutureDays:      365,
		},
		Refresh: RefreshSettings{
			Enabled: true,
		},
	}
}
