package timeutil

import "github.com/ayoisaiah/focusflow/internal/apperr"

var errInvalidDate = &apperr.Error{
	Message: "unable to parse date: %s",
}
