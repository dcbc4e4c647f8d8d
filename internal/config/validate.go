package config

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/focusflow/sound"
	"github.com/ayoisaiah/focusflow/store"
)

const maxPort = 65535

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	if err := c.validateSounds(); err != nil {
		return err
	}

	if c.Timer.RingRadius <= 0 {
		return errInvalidRingRadius.Fmt(c.Timer.RingRadius)
	}

	if err := c.validateOffline(); err != nil {
		return err
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateStorage() error {
	if !slices.Contains(store.Drivers, store.Driver(c.Storage.Driver)) {
		return errInvalidDriver.Fmt(c.Storage.Driver, store.Drivers)
	}

	if strings.TrimSpace(c.Storage.Namespace) == "" {
		return errEmptyNamespace
	}

	return nil
}

func (c *Config) validateSounds() error {
	for kind, path := range map[string]string{
		"focus": c.Sound.Focus,
		"alarm": c.Sound.Alarm,
	} {
		if path != "" && !sound.Supported(path) {
			return errInvalidSoundFormat.Fmt(kind, path)
		}
	}

	return nil
}

func (c *Config) validateOffline() error {
	if c.Offline.Port < 1 || c.Offline.Port > maxPort {
		return errInvalidPort.Fmt(c.Offline.Port)
	}

	if strings.TrimSpace(c.Offline.CacheName) == "" {
		return errEmptyCacheName
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return level, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return level, nil
}
