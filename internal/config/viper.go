package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyStorageDriver        = "storage.driver"
	keyStorageNamespace     = "storage.namespace"
	keySoundFocus           = "sound.focus"
	keySoundAlarm           = "sound.alarm"
	keyRestoreRemaining     = "timer.restore_remaining"
	keyRingRadius           = "timer.ring_radius"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsCmd     = "notifications.cmd"
	keyOfflineCacheName     = "offline.cache_name"
	keyOfflineOrigin        = "offline.origin"
	keyOfflinePort          = "offline.port"
	keyLogLevel             = "log.level"
)

const (
	defaultDriver     = "bolt"
	defaultNamespace  = "focusflow:"
	defaultRingRadius = 100
	defaultCacheName  = "focusflow-cache-v1"
	defaultPort       = 1111
	defaultLogLevel   = "info"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing it with defaults first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		c.Path = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyStorageDriver, defaultDriver)
	v.SetDefault(keyStorageNamespace, defaultNamespace)
	v.SetDefault(keySoundFocus, "")
	v.SetDefault(keySoundAlarm, "")
	v.SetDefault(keyRestoreRemaining, false)
	v.SetDefault(keyRingRadius, defaultRingRadius)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsCmd, "")
	v.SetDefault(keyOfflineCacheName, defaultCacheName)
	v.SetDefault(keyOfflineOrigin, "")
	v.SetDefault(keyOfflinePort, defaultPort)
	v.SetDefault(keyLogLevel, defaultLogLevel)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	path, cli := c.Path, c.CLI

	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Path, c.CLI = path, cli

	return nil
}
