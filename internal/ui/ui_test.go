package ui

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focusflow/internal/session"
)

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	PrintTable([][]string{{"DATE", "FOCUS"}, {"2026-10-01", "1h 40m"}}, &buf)

	out := buf.String()
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "1h 40m")
}

func TestSessionColorsKeepText(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	for _, k := range session.Kinds {
		assert.Equal(t, k.Label(), Session(k, k.Label()))
	}
}
