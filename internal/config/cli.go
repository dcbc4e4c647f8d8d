package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Mute          *bool
	AutoStart     *bool
	Focus         string
	ShortBreak    string
	LongBreak     string
	Volume        string
	Storage       string
	SessionCmd    string
	Port          int
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:         ctx.String("focus"),
			ShortBreak:    ctx.String("short-break"),
			LongBreak:     ctx.String("long-break"),
			Volume:        ctx.String("volume"),
			Storage:       ctx.String("storage"),
			SessionCmd:    ctx.String("session-cmd"),
			Port:          ctx.Int("port"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		if ctx.IsSet("mute") {
			v := ctx.Bool("mute")
			opts.Mute = &v
		}

		if ctx.IsSet("auto-start") {
			v := ctx.Bool("auto-start")
			opts.AutoStart = &v
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Focus != "" {
		c.CLI.Focus = opts.Focus
	}

	if opts.ShortBreak != "" {
		c.CLI.ShortBreak = opts.ShortBreak
	}

	if opts.LongBreak != "" {
		c.CLI.LongBreak = opts.LongBreak
	}

	if opts.Volume != "" {
		c.CLI.Volume = opts.Volume
	}

	if opts.Mute != nil {
		c.CLI.Mute = opts.Mute
	}

	if opts.AutoStart != nil {
		c.CLI.AutoStart = opts.AutoStart
	}

	if opts.Storage != "" {
		c.Storage.Driver = opts.Storage
	}

	if opts.SessionCmd != "" {
		c.Notifications.Cmd = opts.SessionCmd
	}

	if opts.Port != 0 {
		c.Offline.Port = opts.Port
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.NoColor = opts.NoColor
}
