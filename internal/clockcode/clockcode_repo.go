package clockcode

import (
	"context"
	"errors"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const upsertSQL = `INSERT INTO fichajes_codigos (codigo, empleado_id, descripcion, activo, created_by)
VALUES (?, ?, ?, true, ?)
ON CONFLICT (codigo) DO UPDATE SET
	empleado_id = EXCLUDED.empleado_id,
	descripcion = EXCLUDED.descripcion,
	activo = true,
	updated_at = now()
RETURNING *`

//go:generate mockgen -source=clockcode_repo.go -destination=mock/clockcode_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, entry *CodeEntry) (*CodeEntry, error)
	FindActiveByCode(ctx context.Context, code string) (*CodeEntry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CodeEntry, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context, search string) ([]CodeEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Upsert inserts the code or reassigns and reactivates the existing row in a
// single statement.
func (r *repository) Upsert(ctx context.Context, entry *CodeEntry) (*CodeEntry, error) {
	var out CodeEntry
	err := r.conn(ctx).
		Raw(upsertSQL, entry.Code, entry.EmployeeID, entry.Description, entry.CreatedBy).
		Scan(&out).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &out, nil
}

func (r *repository) FindActiveByCode(ctx context.Context, code string) (*CodeEntry, error) {
	var entry CodeEntry
	err := r.conn(ctx).
		Where("codigo = ? AND activo", code).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &entry, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*CodeEntry, error) {
	var entry CodeEntry
	err := r.conn(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return &entry, nil
}

// Deactivate is a logical delete. Deactivating an inactive code succeeds.
func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Exec(
		"UPDATE fichajes_codigos SET activo = false, updated_at = now() WHERE id = ?", id,
	)
	if res.Error != nil {
		return mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return clockcodeerrors.ErrCodeNotFound
	}
	return nil
}

func (r *repository) ListActive(ctx context.Context, search string) ([]CodeEntry, error) {
	var rows []CodeEntry
	q := r.conn(ctx).Where("activo")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("(codigo ILIKE ? OR empleado_id ILIKE ?)", like, like)
	}
	if err := q.Order("codigo ASC").Find(&rows).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}
