package app

import (
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focusflow/internal/session"
)

// Hooks runs the desktop notification and the session command after each
// completed session. Both run in the background and only log failures.
type Hooks struct {
	notify  func(title, msg string) error
	run     func(args []string, env []string) error
	cmd     string
	wg      sync.WaitGroup
	enabled bool
}

// NewHooks returns the completion hooks. cmd is split like a shell would.
func NewHooks(notify bool, cmd string) *Hooks {
	return &Hooks{
		enabled: notify,
		cmd:     cmd,
		notify: func(title, msg string) error {
			return beeep.Notify(title, msg, "")
		},
		run: runCommand,
	}
}

func runCommand(args, env []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}

func completionMessage(completed, next session.Kind) (title, msg string) {
	if completed != session.Focus {
		return "Break is over", "Time to focus"
	}

	if next == session.LongBreak {
		return "Focus session complete", "Time for a long break"
	}

	return "Focus session complete", "Time for a short break"
}

// OnComplete is a timer.CompletionHook.
func (h *Hooks) OnComplete(completed, next session.Kind) {
	if h.enabled {
		title, msg := completionMessage(completed, next)

		h.wg.Add(1)

		go func() {
			defer h.wg.Done()

			if err := h.notify(title, msg); err != nil {
				slog.Warn("unable to display notification", slog.Any("error", err))
			}
		}()
	}

	if h.cmd == "" {
		return
	}

	args, err := shellquote.Split(h.cmd)
	if err != nil {
		slog.Warn("unable to parse session command",
			slog.String("cmd", h.cmd),
			slog.Any("error", err),
		)

		return
	}

	if len(args) == 0 {
		return
	}

	env := []string{
		"FOCUSFLOW_SESSION=" + completed.String(),
		"FOCUSFLOW_NEXT_SESSION=" + next.String(),
	}

	h.wg.Add(1)

	go func() {
		defer h.wg.Done()

		if err := h.run(args, env); err != nil {
			slog.Warn("session command failed",
				slog.String("cmd", h.cmd),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until running hooks finish.
func (h *Hooks) Wait() {
	h.wg.Wait()
}
