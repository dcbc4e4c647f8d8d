package timer

import "github.com/ayoisaiah/focusflow/internal/apperr"

var errInvalidStatusFile = &apperr.Error{
	Message: "status file is corrupt",
}
