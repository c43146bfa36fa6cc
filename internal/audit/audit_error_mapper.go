package audit

import (
	"errors"
	"strings"

	auditerrors "go-fichaje/internal/audit/errors"
	"go-fichaje/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_fichajes_auditoria_event" {
			return auditerrors.ErrEventAlreadyRecorded
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_fichajes_auditoria_event") {
		return auditerrors.ErrEventAlreadyRecorded
	}

	return apperror.Persistence(err)
}
