// Package session defines the kinds of focusflow sessions
package session

// Kind identifies a session. The string values are what gets persisted.
type Kind string

const (
	Focus      Kind = "pomodoro"
	ShortBreak Kind = "shortBreak"
	LongBreak  Kind = "longBreak"
)

// Kinds lists every session kind in tab order.
var Kinds = []Kind{Focus, ShortBreak, LongBreak}

// Parse converts a persisted value to a Kind. Unknown values map to Focus.
func Parse(s string) Kind {
	switch Kind(s) {
	case ShortBreak:
		return ShortBreak
	case LongBreak:
		return LongBreak
	default:
		return Focus
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Focus || k == ShortBreak || k == LongBreak
}

// IsBreak reports whether k is a break session.
func (k Kind) IsBreak() bool {
	return k == ShortBreak || k == LongBreak
}

// Label returns the human-readable name of the session.
func (k Kind) Label() string {
	switch k {
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	default:
		return "Focus"
	}
}

// Index returns the position of k in Kinds.
func (k Kind) Index() int {
	for i, v := range Kinds {
		if v == k {
			return i
		}
	}

	return 0
}

func (k Kind) String() string {
	return string(k)
}
