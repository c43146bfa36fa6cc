package audit

import (
	"context"

	"go-fichaje/internal/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Entry, error) {
	var rows []Entry
	err := r.db.WithContext(ctx).
		Scopes(scope.Employee(employeeID)).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
