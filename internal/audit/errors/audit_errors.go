package auditerrors

import (
	"go-fichaje/internal/shared/apperror"
	"net/http"
)

var (
	ErrEventAlreadyRecorded = apperror.New(
		apperror.CodeConflict,
		"Event already recorded",
		http.StatusConflict,
	)
	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid fichaje event",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.RequiredField("employee_id")
)
