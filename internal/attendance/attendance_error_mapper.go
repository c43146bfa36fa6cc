package attendance

import (
	"context"
	"errors"
	"strings"

	attendanceerrors "go-fichaje/internal/attendance/errors"
	"go-fichaje/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError turns the unique indexes guarding the state machine into
// state conflicts. Application errors pass through and anything else becomes
// an opaque persistence error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.ErrTimeout.WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "57014" {
		// query_canceled, raised by statement_timeout
		return apperror.ErrTimeout.WithCause(err)
	}
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_fichajes_empleado_fecha":
			return attendanceerrors.ErrAlreadyCheckedIn.WithCause(err)
		case "uq_fichajes_pausas_activa":
			return attendanceerrors.ErrPauseAlreadyActive.WithCause(err)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_fichajes_empleado_fecha"):
			return attendanceerrors.ErrAlreadyCheckedIn.WithCause(err)
		case strings.Contains(errMsg, "uq_fichajes_pausas_activa"):
			return attendanceerrors.ErrPauseAlreadyActive.WithCause(err)
		}
	}

	return apperror.Persistence(err)
}
