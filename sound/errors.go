package sound

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errUnsupportedFormat = &apperr.Error{
		Message: "unsupported sound format %q: use mp3, ogg, flac or wav",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound file %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound file %s",
	}
)
