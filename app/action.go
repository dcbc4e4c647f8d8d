package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/logging"
	"github.com/ayoisaiah/focusflow/internal/pathutil"
	"github.com/ayoisaiah/focusflow/report"
	"github.com/ayoisaiah/focusflow/settings"
	"github.com/ayoisaiah/focusflow/sound"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envFocusFlowNoColor = "FOCUSFLOW_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file, asking for the session lengths on first
// run, and applies the command-line flags. It also installs the logger.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, io.Closer, error) {
	path := pathutil.ConfigFilePath()

	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(path))
	}

	opts = append(opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	// Validate has already rejected unknown levels
	level, _ := cfg.LogLevel()

	closer := logging.Setup(pathutil.LogFilePath(), level)

	if level == slog.LevelDebug {
		slog.Debug("loaded config", slog.String("config", spew.Sdump(cfg)))
	}

	return cfg, closer, nil
}

// storagePath returns the database file used by driver.
func storagePath(driver store.Driver) string {
	switch driver {
	case store.DriverSQLite:
		return pathutil.SQLiteFilePath()
	case store.DriverBolt:
		return pathutil.DBFilePath()
	default:
		return ""
	}
}

// openStore opens the configured store. If the backend cannot be opened a
// warning is printed and an in-memory store is used for this run.
func openStore(cfg *config.Config) *store.Store {
	driver := store.Driver(cfg.Storage.Driver)

	st, err := store.Open(driver, storagePath(driver), cfg.Storage.Namespace)
	if err != nil {
		report.Warn("settings and statistics will not be saved", err)
		slog.Error("unable to open storage",
			slog.String("driver", string(driver)),
			slog.Any("error", err),
		)
	}

	return st
}

// defaultAction runs the timer in the terminal.
func defaultAction(ctx *cli.Context) error {
	cfg, closer, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	defer closer.Close()

	st := openStore(cfg)
	defer st.Close()

	loop := timer.NewLoop()
	hooks := NewHooks(cfg.Notifications.Enabled, cfg.Notifications.Cmd)
	statusFile := timer.NewStatusFile(pathutil.StatusFilePath())

	c := Bootstrap(cfg, st, Deps{
		NewAudio: func(st *store.Store) Player {
			return sound.Open(st, sound.Sources{
				Focus: cfg.Sound.Focus,
				Alarm: cfg.Sound.Alarm,
			})
		},
		Scheduler: loop,
		Calls:     loop.Calls(),
		Hook:      hooks.OnComplete,
		Displays:  []timer.Display{statusFile},
	})

	defer statusFile.Remove()

	slog.Info("starting timer",
		slog.String("session", c.Sequencer.Current().String()),
		slog.Bool("running", c.Sequencer.Running()),
	)

	// the running flag stays as it was so the next start can resume
	_, err = tea.NewProgram(c.Controls).Run()

	hooks.Wait()

	return err
}

// statusAction prints the state of a timer running in another process.
func statusAction(_ *cli.Context) error {
	return printStatus(os.Stdout, pathutil.StatusFilePath())
}

// resetSettingsAction restores the default settings.
func resetSettingsAction(ctx *cli.Context) error {
	cfg, closer, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	defer closer.Close()

	st := openStore(cfg)
	defer st.Close()

	if !st.Init() || st.Degraded() {
		return errStorageUnavailable
	}

	settings.New(st).Reset()

	report.Success("Settings restored to their defaults")

	return nil
}

// statsAction prints the recorded statistics.
func statsAction(ctx *cli.Context) error {
	cfg, closer, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	defer closer.Close()

	st := openStore(cfg)
	defer st.Close()

	return printStats(os.Stdout, st, statsOptions{
		Date:    ctx.String("date"),
		History: ctx.Bool("history"),
		JSON:    ctx.Bool("json"),
	})
}

// serveAction serves the dashboard until interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, closer, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	defer closer.Close()

	st := openStore(cfg)
	defer st.Close()

	return serve(ctx.Context, cfg, st)
}

// editConfigAction handles the edit-config command which opens the focusflow
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/focusflow/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FOCUSFLOW_NO_COLOR is set
	if _, exists := os.LookupEnv(envFocusFlowNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting focusflow")

	return nil
}
