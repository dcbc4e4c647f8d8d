// Package config loads the focusflow configuration file and merges command
// line overrides into it.
package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage       StorageConfig      `mapstructure:"storage"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Offline       OfflineConfig      `mapstructure:"offline"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Log           LogConfig          `mapstructure:"log"`
		Path          string             `mapstructure:"-"`
		CLI           CLIConfig          `mapstructure:"-"`
		Timer         TimerConfig        `mapstructure:"timer"`
	}

	// StorageConfig selects the persistence backend.
	StorageConfig struct {
		Driver    string `mapstructure:"driver"`
		Namespace string `mapstructure:"namespace"`
	}

	// SoundConfig holds the sound file paths. Empty paths select the
	// built-in tones.
	SoundConfig struct {
		Focus string `mapstructure:"focus"`
		Alarm string `mapstructure:"alarm"`
	}

	// TimerConfig holds sequencer options.
	TimerConfig struct {
		RingRadius       float64 `mapstructure:"ring_radius"`
		RestoreRemaining bool    `mapstructure:"restore_remaining"`
	}

	// NotificationConfig holds the completion hooks.
	NotificationConfig struct {
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// OfflineConfig holds the offline cache server options.
	OfflineConfig struct {
		CacheName string `mapstructure:"cache_name"`
		Origin    string `mapstructure:"origin"`
		Port      int    `mapstructure:"port"`
	}

	// LogConfig holds logging options.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds settings given on the command line. They are saved
	// through the settings store rather than the config file.
	CLIConfig struct {
		Mute       *bool
		AutoStart  *bool
		Focus      string
		ShortBreak string
		LongBreak  string
		Volume     string
		NoColor    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

// Version is the application version.
const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:    defaultDriver,
			Namespace: defaultNamespace,
		},
		Timer: TimerConfig{
			RingRadius: defaultRingRadius,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Offline: OfflineConfig{
			CacheName: defaultCacheName,
			Port:      defaultPort,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}
