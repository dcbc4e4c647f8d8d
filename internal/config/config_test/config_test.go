package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
)

func TestFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	want := config.Default()
	want.Path = path

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "cache_name: focusflow-cache-v1")
	assert.Contains(t, string(b), "driver: bolt")
}

func TestReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  driver: sqlite
timer:
  restore_remaining: true
  ring_radius: 50
notifications:
  cmd: notify-send done
offline:
  port: 8080
log:
  level: debug
`), 0o600))

	cfg, err := config.New(config.WithViperConfig(path))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "focusflow:", cfg.Storage.Namespace)
	assert.True(t, cfg.Timer.RestoreRemaining)
	assert.InDelta(t, 50, cfg.Timer.RingRadius, 1e-9)
	assert.Equal(t, "notify-send done", cfg.Notifications.Cmd)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, 8080, cfg.Offline.Port)
	assert.Equal(t, "focusflow-cache-v1", cfg.Offline.CacheName)
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"unknown driver":  "storage:\n  driver: redis\n",
		"empty namespace": "storage:\n  namespace: \" \"\n",
		"bad sound":       "sound:\n  alarm: alarm.aac\n",
		"bad radius":      "timer:\n  ring_radius: 0\n",
		"bad port":        "offline:\n  port: 70000\n",
		"empty cache":     "offline:\n  cache_name: \"\"\n",
		"bad level":       "log:\n  level: loud\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			_, err := config.New(config.WithViperConfig(path))
			assert.Error(t, err)
		})
	}
}

func TestCLIOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	f := flag.NewFlagSet("focusflow", flag.ContinueOnError)
	_ = f.String("focus", "", "")
	_ = f.String("short-break", "", "")
	_ = f.String("long-break", "", "")
	_ = f.String("volume", "", "")
	_ = f.String("storage", "", "")
	_ = f.String("session-cmd", "", "")
	_ = f.Bool("mute", false, "")
	_ = f.Bool("auto-start", false, "")
	_ = f.Bool("disable-notification", false, "")
	_ = f.Bool("no-color", false, "")

	require.NoError(t, f.Parse([]string{
		"-focus", "50",
		"-storage", "memory",
		"-session-cmd", "echo done",
		"-mute",
		"-disable-notification",
	}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg, err := config.New(config.WithViperConfig(path), config.WithCLIConfig(ctx))
	require.NoError(t, err)

	want := config.CLIConfig{
		Focus: "50",
		Mute:  boolPtr(true),
	}

	if diff := cmp.Diff(want, cfg.CLI, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("cli config mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "echo done", cfg.Notifications.Cmd)
	assert.False(t, cfg.Notifications.Enabled)
}

func boolPtr(b bool) *bool {
	return &b
}
