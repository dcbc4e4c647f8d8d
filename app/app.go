// Package app wires the focusflow components into the command-line
// application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the focusflow app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "focusflow",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		FocusFlow is a Pomodoro timer for the command-line. Work in focus
		sessions separated by short breaks, with a long break after every
		fourth focus session.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "stats",
				Usage:  "Print today's focus time and completed sessions",
				Action: statsAction,
				Flags: []cli.Flag{
					storageFlag,
					dateFlag,
					historyFlag,
					jsonFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the timer dashboard through the offline cache",
				Action: serveAction,
				Flags: []cli.Flag{
					storageFlag,
					portFlag,
				},
			},
			{
				Name:   "reset-settings",
				Usage:  "Restore the default session lengths and volume",
				Action: resetSettingsAction,
				Flags: []cli.Flag{
					storageFlag,
				},
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			shortBreakFlag,
			longBreakFlag,
			volumeFlag,
			muteFlag,
			autoStartFlag,
			storageFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
