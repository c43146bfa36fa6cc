package clockcodeerrors

import (
	"go-fichaje/internal/shared/apperror"
	"net/http"
)

var (
	ErrCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"code must not be empty",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.RequiredField("employee_id")
	ErrCodeExists       = apperror.New(
		apperror.CodeConflict,
		"code already exists",
		http.StatusConflict,
	)
	ErrCodeNotFound = apperror.New(
		apperror.CodeNotFound,
		"code not found",
		http.StatusNotFound,
	)
	ErrInvalidID = apperror.InvalidField("id")

	ErrImportFileRequired = apperror.RequiredField("file")
	ErrImportUnsupported  = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported file type, expected .xlsx or .csv",
		http.StatusBadRequest,
	)
	ErrImportUnreadable = apperror.New(
		apperror.CodeInvalidInput,
		"Import file could not be read",
		http.StatusBadRequest,
	)
	ErrImportBadHeader = apperror.New(
		apperror.CodeInvalidInput,
		"Import header must contain a code column and an employee column",
		http.StatusBadRequest,
	)
	ErrImportNoData = apperror.New(
		apperror.CodeInvalidInput,
		"Import file has no data rows",
		http.StatusBadRequest,
	)
	ErrImportTooManyRows = apperror.New(
		apperror.CodeInvalidInput,
		"Import file exceeds 5000 rows",
		http.StatusBadRequest,
	)
)
