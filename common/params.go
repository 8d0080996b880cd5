package common

import (
	"flag"
	"path/filepath"
)

type Params struct {
	config     *Config
	configPath string
	logLevel   string
	paths      []string
}

func NewEmptyParams() *Params {
	return &Params{
		config:   DefaultConfig(),
		logLevel: "INFO",
		paths:    []string{},
	}
}

// ParseParams parses the command line. Flags given explicitly override
// the values read from the config file.
func ParseParams(arguments []string) (*Params, error) {
	flags := flag.NewFlagSet("slideshow", flag.ContinueOnError)
	configPath := flags.String("config", defaultConfigPath(), "Path to YAML configuration")
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	wrap := flags.Bool("wrap", false, "Wrap around when navigating past the first or last slide")
	width := flags.Int("width", defaultWidth, "Initial window width")
	height := flags.Int("height", defaultHeight, "Initial window height")
	queueSize := flags.Int("eventBusQueueSize", defaultQueueSize, "Event bus queue size")

	if err := flags.Parse(arguments); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "logLevel":
			level = *logLevel
		case "wrap":
			cfg.Navigation.Wrap = *wrap
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "eventBusQueueSize":
			cfg.Events.QueueSize = *queueSize
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Params{
		config:     cfg,
		configPath: *configPath,
		logLevel:   level,
		paths:      flags.Args(),
	}, nil
}

func defaultConfigPath() string {
	return filepath.Join(UserHomeDir(), SlideshowDir, "config.yaml")
}

func (s *Params) Config() *Config {
	return s.config
}

func (s *Params) ConfigPath() string {
	return s.configPath
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

// Paths are the positional arguments: a slideshow file or image files
// and directories.
func (s *Params) Paths() []string {
	return s.paths
}
