package approvalerrors

import (
	"net/http"

	"go-leaveai/internal/shared/apperror"
)

var ErrOpenTaskExists = apperror.New(
	apperror.CodeConflict,
	"an open approval task already exists for this leave request",
	http.StatusConflict,
)
