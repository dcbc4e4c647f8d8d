// Package ui holds the console colors and tables used outside the TUI.
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusflow/internal/session"
)

// DarkTheme selects the light variants of each color.
var DarkTheme = true

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Session colors a session label the way the TUI does.
func Session(kind session.Kind, a any) string {
	switch kind {
	case session.ShortBreak:
		return Cyan(a)
	case session.LongBreak:
		return Magenta(a)
	default:
		return Green(a)
	}
}
