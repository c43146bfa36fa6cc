package attendance

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"time"

	attendanceerrors "go-fichaje/internal/attendance/errors"
	"go-fichaje/internal/config"
	"go-fichaje/internal/events"
	"go-fichaje/internal/messaging/kafka"
	"go-fichaje/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	QueryState(ctx context.Context, employeeID string) (StateResponse, error)
	CheckIn(ctx context.Context, employeeID, actorID string) (RecordResponse, error)
	CheckOut(ctx context.Context, employeeID string) (RecordResponse, error)
	StartPause(ctx context.Context, employeeID string, req StartPauseRequest) (PauseResponse, error)
	EndPause(ctx context.Context, employeeID string) (PauseResponse, error)
	SweepForgotten(ctx context.Context, employeeID string) int
	SweepAll(ctx context.Context) (int, error)
	History(ctx context.Context, employeeID, from, to string) ([]RecordResponse, error)
	MonthlySummary(ctx context.Context, employeeID, month string) (MonthlySummaryResponse, error)
	ExportHistory(ctx context.Context, employeeID, from, to string) (*bytes.Buffer, string, error)
}

type Options struct {
	Location         *time.Location
	StaleAfter       time.Duration
	DefaultPauseKind string
	// RequestTimeout caps each public call, database work included.
	RequestTimeout time.Duration
	// Now is the clock; tests replace it.
	Now func() time.Time
}

func OptionsFromConfig(cfg config.AttendanceConfig) Options {
	return Options{
		Location:         cfg.Location(),
		StaleAfter:       cfg.StaleAfter,
		DefaultPauseKind: cfg.DefaultPauseKind,
		RequestTimeout:   cfg.RequestTimeout,
	}
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.StaleAfter <= 0 {
		o.StaleAfter = 14 * time.Hour
	}
	if o.DefaultPauseKind == "" {
		o.DefaultPauseKind = "descanso"
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	opts   Options
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, opts Options, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, opts, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		opts:   opts.withDefaults(),
		logger: l,
	}
}

func (s *service) today() time.Time {
	return calendarDate(s.opts.Now(), s.opts.Location)
}

// bounded derives the per-call deadline. Long-lived callers such as the state
// stream pass their own context and get a fresh deadline on every call.
func (s *service) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.RequestTimeout)
}

// inTx runs fn inside one database transaction so that state changes and
// their outbox rows commit together.
func (s *service) inTx(ctx context.Context, fn func(tx *sql.Tx, qtx Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	if err := fn(tx, s.repo.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

// loadToday sweeps, then returns today's record and its active pause.
func (s *service) loadToday(ctx context.Context, employeeID string) (*AttendanceRecord, *PauseInterval, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, nil, attendanceerrors.ErrEmployeeRequired
	}

	s.SweepForgotten(ctx, employeeID)

	rec, err := s.repo.GetRecordForDate(ctx, employeeID, s.today())
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}
	if rec == nil {
		return nil, nil, nil
	}

	active, err := s.repo.GetActivePause(ctx, rec.ID)
	if err != nil {
		return nil, nil, mapRepositoryError(err)
	}
	return rec, active, nil
}

func deriveState(rec *AttendanceRecord, active *PauseInterval) State {
	switch {
	case rec == nil:
		return StateNoRecord
	case !rec.IsOpen():
		return StateClosed
	case active != nil:
		return StatePaused
	default:
		return StateWorking
	}
}

func (s *service) QueryState(ctx context.Context, employeeID string) (StateResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	log := contextutil.GetLogger(ctx, s.logger)
	rec, active, err := s.loadToday(ctx, employeeID)
	if err != nil {
		log.Error("query state failed", zap.String("employee_id", employeeID), zap.Error(err))
		return StateResponse{}, err
	}

	state := deriveState(rec, active)
	resp := StateResponse{
		State:      state,
		Pauses:     []PauseResponse{},
		CanCheckIn: state == StateNoRecord,
	}
	if rec == nil {
		return resp, nil
	}

	pauses, err := s.repo.GetPauses(ctx, rec.ID)
	if err != nil {
		log.Error("query state get pauses failed", zap.String("record_id", rec.ID.String()), zap.Error(err))
		return StateResponse{}, mapRepositoryError(err)
	}

	record := mapRecord(*rec)
	resp.HasRecord = true
	resp.Record = &record
	resp.Pauses = mapPauses(pauses)
	resp.CanCheckOut = state == StateWorking
	resp.CanStartPause = state == StateWorking
	resp.CanEndPause = active != nil
	if active != nil {
		p := mapPause(*active)
		resp.ActivePause = &p
	}
	return resp, nil
}

func (s *service) CheckIn(ctx context.Context, employeeID, actorID string) (RecordResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("check-in requested", zap.String("request_id", rid), zap.String("employee_id", employeeID))

	existing, _, err := s.loadToday(ctx, employeeID)
	if err != nil {
		return RecordResponse{}, err
	}
	if existing != nil {
		return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	var rec *AttendanceRecord
	err = s.inTx(ctx, func(tx *sql.Tx, qtx Repository) error {
		created, err := qtx.CreateCheckIn(ctx, employeeID, s.today(), actorID)
		if err != nil {
			return mapRepositoryError(err)
		}
		rec = created
		return s.enqueue(ctx, tx, events.FichajeEvent{
			EventType:  events.FichajeCheckedIn,
			EmployeeID: employeeID,
			RecordID:   created.ID.String(),
			ActorID:    actorID,
		})
	})
	if err != nil {
		log.Warn("check-in failed", zap.String("request_id", rid), zap.String("employee_id", employeeID), zap.Error(err))
		return RecordResponse{}, err
	}

	log.Info("check-in recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("record_id", rec.ID.String()),
	)
	return mapRecord(*rec), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (RecordResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	rec, active, err := s.loadToday(ctx, employeeID)
	if err != nil {
		return RecordResponse{}, err
	}
	switch {
	case rec == nil:
		return RecordResponse{}, attendanceerrors.ErrNotCheckedIn
	case !rec.IsOpen():
		return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	case active != nil:
		return RecordResponse{}, attendanceerrors.ErrPauseActive
	}

	var closed *AttendanceRecord
	err = s.inTx(ctx, func(tx *sql.Tx, qtx Repository) error {
		out, err := qtx.SetCheckOut(ctx, rec.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		closed = out
		return s.enqueue(ctx, tx, events.FichajeEvent{
			EventType:  events.FichajeCheckedOut,
			EmployeeID: employeeID,
			RecordID:   rec.ID.String(),
			ActorID:    contextutil.GetUserID(ctx),
		})
	})
	if err != nil {
		log.Warn("check-out failed", zap.String("request_id", rid), zap.String("employee_id", employeeID), zap.Error(err))
		return RecordResponse{}, err
	}

	log.Info("check-out recorded",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("record_id", closed.ID.String()),
	)
	return mapRecord(*closed), nil
}

func (s *service) StartPause(ctx context.Context, employeeID string, req StartPauseRequest) (PauseResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	rec, active, err := s.loadToday(ctx, employeeID)
	if err != nil {
		return PauseResponse{}, err
	}
	switch {
	case rec == nil:
		return PauseResponse{}, attendanceerrors.ErrNotCheckedIn
	case !rec.IsOpen():
		return PauseResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	case active != nil:
		return PauseResponse{}, attendanceerrors.ErrPauseAlreadyActive
	}

	kind := strings.TrimSpace(req.Kind)
	if kind == "" {
		kind = s.opts.DefaultPauseKind
	}

	var pause *PauseInterval
	err = s.inTx(ctx, func(tx *sql.Tx, qtx Repository) error {
		p, err := qtx.StartPause(ctx, rec.ID, kind, req.Description)
		if err != nil {
			return mapRepositoryError(err)
		}
		pause = p
		return s.enqueue(ctx, tx, events.FichajeEvent{
			EventType:  events.FichajePauseStarted,
			EmployeeID: employeeID,
			RecordID:   rec.ID.String(),
			PauseID:    p.ID.String(),
			PauseKind:  kind,
			ActorID:    contextutil.GetUserID(ctx),
		})
	})
	if err != nil {
		log.Warn("start pause failed", zap.String("request_id", rid), zap.String("employee_id", employeeID), zap.Error(err))
		return PauseResponse{}, err
	}

	log.Info("pause started",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("pause_id", pause.ID.String()),
		zap.String("kind", kind),
	)
	return mapPause(*pause), nil
}

func (s *service) EndPause(ctx context.Context, employeeID string) (PauseResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	rec, active, err := s.loadToday(ctx, employeeID)
	if err != nil {
		return PauseResponse{}, err
	}
	if rec == nil {
		return PauseResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if active == nil {
		return PauseResponse{}, attendanceerrors.ErrNoActivePause
	}

	var ended *PauseInterval
	err = s.inTx(ctx, func(tx *sql.Tx, qtx Repository) error {
		p, err := qtx.EndPause(ctx, active.ID)
		if err != nil {
			return mapRepositoryError(err)
		}
		ended = p
		return s.enqueue(ctx, tx, events.FichajeEvent{
			EventType:  events.FichajePauseEnded,
			EmployeeID: employeeID,
			RecordID:   rec.ID.String(),
			PauseID:    p.ID.String(),
			PauseKind:  p.Kind,
			ActorID:    contextutil.GetUserID(ctx),
		})
	})
	if err != nil {
		log.Warn("end pause failed", zap.String("request_id", rid), zap.String("employee_id", employeeID), zap.Error(err))
		return PauseResponse{}, err
	}

	log.Info("pause ended",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("pause_id", ended.ID.String()),
	)
	return mapPause(*ended), nil
}
