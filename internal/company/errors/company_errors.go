package companyerrors

import (
	"net/http"

	"go-leaveai/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidWeeklyOff = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid weekly off type",
		http.StatusBadRequest,
	)

	ErrInvalidEffectiveFrom = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_from, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
