package attendanceerrors

import (
	"go-fichaje/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"already checked in today",
		http.StatusConflict,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"not checked in",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"already checked out",
		http.StatusConflict,
	)
	ErrPauseActive = apperror.New(
		apperror.CodeInvalidState,
		"pause active, resume first",
		http.StatusConflict,
	)
	ErrPauseAlreadyActive = apperror.New(
		apperror.CodeInvalidState,
		"pause already active",
		http.StatusConflict,
	)
	ErrNoActivePause = apperror.New(
		apperror.CodeInvalidState,
		"no active pause",
		http.StatusConflict,
	)

	ErrEmployeeRequired = apperror.RequiredField("employee_id")
	ErrInvalidDate      = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to, and the range must not exceed 366 days",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate export file",
		http.StatusInternalServerError,
	)
)
