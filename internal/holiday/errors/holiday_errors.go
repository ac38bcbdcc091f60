package holidayerrors

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

	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported holiday file, expected .xlsx or .ics",
		http.StatusBadRequest,
	)

	ErrBadHeader = apperror.New(
		apperror.CodeInvalidInput,
		"Holiday sheet must have 'Start Date' and 'Occasion' columns",
		http.StatusBadRequest,
	)

	ErrNoHolidays = apperror.New(
		apperror.CodeInvalidInput,
		"No holidays found in file",
		http.StatusBadRequest,
	)

	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"file is required",
		http.StatusBadRequest,
	)

	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid year",
		http.StatusBadRequest,
	)
)
