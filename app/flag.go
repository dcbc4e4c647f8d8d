package app

import "github.com/urfave/cli/v2"

var (
	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration in minutes, 1 to 420 (default: 25)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes, 1 to 60 (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes, 1 to 120 (default: 15)",
	}

	volumeFlag = &cli.StringFlag{
		Name:  "volume",
		Usage: "Sound volume between 0 and 1 (default: 0.5)",
	}

	muteFlag = &cli.BoolFlag{
		Name:  "mute",
		Usage: "Silence the focus and alarm sounds",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:    "auto-start",
		Aliases: []string{"a"},
		Usage:   "Start the next session as soon as one completes",
	}

	storageFlag = &cli.StringFlag{
		Name:  "storage",
		Usage: "Storage driver: bolt, sqlite or memory",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	portFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "Specify the port for the dashboard server (default: 1111)",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Report on a past day (e.g. 'yesterday', '2026-09-30')",
	}

	historyFlag = &cli.BoolFlag{
		Name:  "history",
		Usage: "List the focus time of every recorded day",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the statistics as JSON",
	}
)
