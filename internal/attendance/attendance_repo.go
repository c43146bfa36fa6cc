package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-fichaje/internal/attendance/errors"
	"go-fichaje/internal/database"
	"go-fichaje/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateCheckIn(ctx context.Context, employeeID string, date time.Time, actorID string) (*AttendanceRecord, error)
	SetCheckOut(ctx context.Context, recordID uuid.UUID) (*AttendanceRecord, error)
	GetRecordForDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)
	GetOpenRecords(ctx context.Context, employeeID string) ([]AttendanceRecord, error)
	ListOpenRecords(ctx context.Context, limit int) ([]AttendanceRecord, error)
	ForceClose(ctx context.Context, recordID uuid.UUID, reason string) (bool, error)
	StartPause(ctx context.Context, recordID uuid.UUID, kind string, description *string) (*PauseInterval, error)
	EndPause(ctx context.Context, pauseID uuid.UUID) (*PauseInterval, error)
	GetPauses(ctx context.Context, recordID uuid.UUID) ([]PauseInterval, error)
	GetActivePause(ctx context.Context, recordID uuid.UUID) (*PauseInterval, error)
	GetRecordsInRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return database.Bind(r.db, r.tx).WithContext(ctx)
}

func (r *repository) CreateCheckIn(ctx context.Context, employeeID string, date time.Time, actorID string) (*AttendanceRecord, error) {
	rec := &AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		CreatedBy:  actorID,
	}
	if err := r.conn(ctx).Create(rec).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return rec, nil
}

// SetCheckOut closes the record only while hora_salida is still null.
func (r *repository) SetCheckOut(ctx context.Context, recordID uuid.UUID) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	res := r.conn(ctx).Raw("SELECT * FROM registrar_salida_fichaje(?)", recordID).Scan(&rec)
	if res.Error != nil {
		return nil, mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	}
	return &rec, nil
}

func (r *repository) GetRecordForDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID)).
		Where("fecha = ?", date.Format(dateLayout)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) GetOpenRecords(ctx context.Context, employeeID string) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID), scope.OpenRecords).
		Order("fecha DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListOpenRecords(ctx context.Context, limit int) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Scopes(scope.OpenRecords).
		Order("fecha ASC, hora_entrada ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// ForceClose reports false when the record was already closed.
func (r *repository) ForceClose(ctx context.Context, recordID uuid.UUID, reason string) (bool, error) {
	var rec AttendanceRecord
	res := r.conn(ctx).Raw("SELECT * FROM cerrar_fichaje_automaticamente(?, ?)", recordID, reason).Scan(&rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) StartPause(ctx context.Context, recordID uuid.UUID, kind string, description *string) (*PauseInterval, error) {
	p := &PauseInterval{
		ID:          uuid.New(),
		RecordID:    recordID,
		Kind:        kind,
		Description: description,
	}
	if err := r.conn(ctx).Create(p).Error; err != nil {
		return nil, mapRepositoryError(err)
	}
	return p, nil
}

func (r *repository) EndPause(ctx context.Context, pauseID uuid.UUID) (*PauseInterval, error) {
	var p PauseInterval
	res := r.conn(ctx).Raw("SELECT * FROM finalizar_pausa_fichaje(?)", pauseID).Scan(&p)
	if res.Error != nil {
		return nil, mapRepositoryError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, attendanceerrors.ErrNoActivePause
	}
	return &p, nil
}

func (r *repository) GetPauses(ctx context.Context, recordID uuid.UUID) ([]PauseInterval, error) {
	var rows []PauseInterval
	err := r.conn(ctx).
		Where("fichaje_id = ?", recordID).
		Order("inicio ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetActivePause(ctx context.Context, recordID uuid.UUID) (*PauseInterval, error) {
	var p PauseInterval
	err := r.conn(ctx).
		Where("fichaje_id = ?", recordID).
		Where("fin IS NULL").
		Order("inicio DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetRecordsInRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error) {
	var rows []AttendanceRecord
	err := r.conn(ctx).
		Scopes(scope.Employee(employeeID)).
		Where("fecha BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("fecha DESC").
		Find(&rows).Error
	return rows, err
}
