// Package report prints command results and problems to the console.
package report

import (
	"github.com/pterm/pterm"
)

// Warn prints a non-fatal problem.
func Warn(msg string, err error) {
	pterm.Warning.Printfln("%s: %v", msg, err)
}

// Success prints a confirmation.
func Success(msg string) {
	pterm.Success.Println(msg)
}
