package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 _____                     _____ _
|  ___|__   ___ _   _ ___ |  ___| | _____      __
| |_ / _ \ / __| | | / __|| |_  | |/ _ \ \ /\ / /
|  _| (_) | (__| |_| \__ \|  _| | | (_) \ V  V /
|_|  \___/ \___|\__,_|___/|_|   |_|\___/ \_/\_/`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Focus      int
	ShortBreak int
	LongBreak  int
	AutoStart  bool
}

// WithPromptConfig returns an Option that asks for the session lengths when
// no config file exists at configPath yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to set up FocusFlow for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Change them later from the settings panel (press 'o') or with 'focusflow edit-config'.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("35 minutes", 35),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.Focus),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Short break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
				).
				Value(&opts.ShortBreak),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Long break length").
				Options(
					huh.NewOption("15 minutes", 15).Selected(true),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
				).
				Value(&opts.LongBreak),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start the next session automatically?").
				Value(&opts.AutoStart),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the
// configuration. They are saved like command line settings.
func applyPromptOptions(c *Config, opts PromptOptions) {
	if opts.Focus > 0 {
		c.CLI.Focus = strconv.Itoa(opts.Focus)
	}

	if opts.ShortBreak > 0 {
		c.CLI.ShortBreak = strconv.Itoa(opts.ShortBreak)
	}

	if opts.LongBreak > 0 {
		c.CLI.LongBreak = strconv.Itoa(opts.LongBreak)
	}

	autoStart := opts.AutoStart
	c.CLI.AutoStart = &autoStart
}
