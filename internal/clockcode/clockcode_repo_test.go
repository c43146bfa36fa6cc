package clockcode

import (
	"context"
	"regexp"
	"testing"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`ON CONFLICT (codigo) DO UPDATE SET`)

	t.Run("reassigns existing code", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()
		mock.ExpectQuery(query).
			WithArgs("A1", "EMP-9", nil, "admin-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "codigo", "empleado_id", "activo"}).
				AddRow(id, "A1", "EMP-9", true))

		got, err := NewRepository(db).Upsert(ctx, &CodeEntry{Code: "A1", EmployeeID: "EMP-9", CreatedBy: "admin-1"})
		assert.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "EMP-9", got.EmployeeID)
		assert.True(t, got.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation becomes duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_fichajes_codigos_codigo"})

		_, err := NewRepository(db).Upsert(ctx, &CodeEntry{Code: "A1", EmployeeID: "EMP-9"})
		assert.ErrorIs(t, err, clockcodeerrors.ErrCodeExists)
	})
}

func TestRepository_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE fichajes_codigos SET activo = false, updated_at = now() WHERE id = $1`)

	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Deactivate(ctx, id))

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Deactivate(ctx, id), clockcodeerrors.ErrCodeNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveByCode(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "fichajes_codigos" WHERE codigo = $1 AND activo`)).
		WithArgs("A1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := NewRepository(db).FindActiveByCode(ctx, "A1")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "fichajes_codigos" WHERE activo AND (codigo ILIKE $1 OR empleado_id ILIKE $2) ORDER BY codigo ASC`)).
		WithArgs("%emp%", "%emp%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "codigo"}).AddRow(uuid.New(), "A1").AddRow(uuid.New(), "B2"))

	rows, err := NewRepository(db).ListActive(ctx, "emp")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
