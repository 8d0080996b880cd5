package common

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultWidth         = 1280
	defaultHeight        = 800
	minimumWidth         = 600
	minimumHeight        = 480
	defaultIconSize      = 32
	defaultThumbnailSize = 128
	defaultQueueSize     = 100
	defaultRecentLimit   = 10
)

// Config is the YAML configuration of the viewer.
type Config struct {
	Window struct {
		Width         int `yaml:"width"`
		Height        int `yaml:"height"`
		MinimumWidth  int `yaml:"minimumWidth"`
		MinimumHeight int `yaml:"minimumHeight"`
	} `yaml:"window"`

	Navigation struct {
		// Wrap makes next on the last slide go to the first one and vice versa
		Wrap bool `yaml:"wrap"`
	} `yaml:"navigation"`

	Display struct {
		IconSize      int `yaml:"iconSize"`
		ThumbnailSize int `yaml:"thumbnailSize"`
	} `yaml:"display"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`

	Events struct {
		QueueSize int `yaml:"queueSize"`
	} `yaml:"events"`

	Recent struct {
		Limit int `yaml:"limit"`
	} `yaml:"recent"`

	DefaultDirectory string `yaml:"defaultDirectory"`
}

func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Width = defaultWidth
	cfg.Window.Height = defaultHeight
	cfg.Window.MinimumWidth = minimumWidth
	cfg.Window.MinimumHeight = minimumHeight

	cfg.Navigation.Wrap = false

	cfg.Display.IconSize = defaultIconSize
	cfg.Display.ThumbnailSize = defaultThumbnailSize

	cfg.Logging.Level = "INFO"
	cfg.Events.QueueSize = defaultQueueSize
	cfg.Recent.Limit = defaultRecentLimit

	if home, err := os.UserHomeDir(); err == nil {
		cfg.DefaultDirectory = filepath.Join(home, "Desktop")
	}

	return cfg
}

// LoadConfig reads the YAML file at configPath on top of the defaults.
// A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Config) Validate() error {
	if s.Window.Width < s.Window.MinimumWidth || s.Window.Height < s.Window.MinimumHeight {
		return fmt.Errorf("window size %dx%d is below the minimum %dx%d",
			s.Window.Width, s.Window.Height, s.Window.MinimumWidth, s.Window.MinimumHeight)
	}
	if s.Display.IconSize <= 0 || s.Display.ThumbnailSize <= 0 {
		return fmt.Errorf("icon and thumbnail sizes must be positive")
	}
	if s.Events.QueueSize <= 0 {
		return fmt.Errorf("event queue size must be positive")
	}
	return nil
}
