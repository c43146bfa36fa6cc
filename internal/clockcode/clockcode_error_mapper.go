package clockcode

import (
	"errors"
	"strings"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"
	"go-fichaje/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clockcodeerrors.ErrCodeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_fichajes_codigos_codigo" {
		return clockcodeerrors.ErrCodeExists.WithCause(err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_fichajes_codigos_codigo") {
		return clockcodeerrors.ErrCodeExists.WithCause(err)
	}

	return apperror.Persistence(err)
}
