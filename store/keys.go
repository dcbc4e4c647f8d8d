package store

// Persisted keys. Every key is stored under the configured namespace.
const (
	KeyFocus            = "pomodoro"
	KeyShortBreak       = "shortBreak"
	KeyLongBreak        = "longBreak"
	KeyVolume           = "volume"
	KeyMute             = "mute"
	KeyAutoStart        = "autoStart"
	KeyCurrentSession   = "currentSession"
	KeyIsRunning        = "isRunning"
	KeyRemainingSeconds = "remainingSeconds"
	KeyTotalSessions    = "totalSessions"
	// KeyFocusDayPrefix is followed by a YYYY-MM-DD UTC date
	KeyFocusDayPrefix = "focus-"
)

// SettingsKeys are the keys owned by user settings.
var SettingsKeys = []string{
	KeyFocus,
	KeyShortBreak,
	KeyLongBreak,
	KeyVolume,
	KeyMute,
	KeyAutoStart,
}

// FocusDayKey returns the key holding the focus seconds of day
// (formatted YYYY-MM-DD).
func FocusDayKey(day string) string {
	return KeyFocusDayPrefix + day
}
