package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-fichaje/internal/events"

	"go.uber.org/zap"
)

const (
	reasonPriorDay = "auto-closed: prior day record left open"
	sweepBatchSize = 500
)

func staleReason(hoursOpen float64) string {
	return fmt.Sprintf("stale record auto-closed after %.2f hours open", hoursOpen)
}

// SweepForgotten force-closes the employee's forgotten records and returns how
// many it closed. Failures are logged and never returned.
func (s *service) SweepForgotten(ctx context.Context, employeeID string) int {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	open, err := s.repo.GetOpenRecords(ctx, employeeID)
	if err != nil {
		s.logger.Warn("sweep list open records failed", zap.String("employee_id", employeeID), zap.Error(err))
		return 0
	}
	return s.sweepRecords(ctx, open, false)
}

// SweepAll runs the sweep over every open record. Only the initial listing
// can fail.
func (s *service) SweepAll(ctx context.Context) (int, error) {
	listCtx, cancel := s.bounded(ctx)
	open, err := s.repo.ListOpenRecords(listCtx, sweepBatchSize)
	cancel()
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	closed := s.sweepRecords(ctx, open, true)
	if closed > 0 {
		s.logger.Info("global sweep closed forgotten records", zap.Int("closed", closed), zap.Int("open", len(open)))
	}
	return closed, nil
}

// sweepRecords closes what is due. perRecord gives each record its own
// deadline so one stuck row cannot starve a global sweep.
func (s *service) sweepRecords(ctx context.Context, records []AttendanceRecord, perRecord bool) int {
	now := s.opts.Now()
	today := s.today()

	closed := 0
	for _, rec := range records {
		reason, due := s.closeReason(rec, now, today)
		if !due {
			continue
		}

		ok, err := s.sweepRecord(ctx, rec, reason, perRecord)
		if err != nil {
			s.logger.Warn("sweep record failed",
				zap.String("record_id", rec.ID.String()),
				zap.String("employee_id", rec.EmployeeID),
				zap.Error(err),
			)
			continue
		}
		if ok {
			closed++
			s.logger.Info("forgotten record auto-closed",
				zap.String("record_id", rec.ID.String()),
				zap.String("employee_id", rec.EmployeeID),
				zap.String("reason", reason),
			)
		}
	}
	return closed
}

// sweepRecord force-closes rec unless it has an active pause.
func (s *service) sweepRecord(ctx context.Context, rec AttendanceRecord, reason string, bound bool) (bool, error) {
	if bound {
		var cancel context.CancelFunc
		ctx, cancel = s.bounded(ctx)
		defer cancel()
	}

	active, err := s.repo.GetActivePause(ctx, rec.ID)
	if err != nil {
		return false, err
	}
	if active != nil {
		return false, nil
	}
	return s.forceClose(ctx, rec, reason)
}

// closeReason decides whether an open record is forgotten.
func (s *service) closeReason(rec AttendanceRecord, now, today time.Time) (string, bool) {
	if !rec.IsOpen() {
		return "", false
	}
	if rec.Date.Before(today) && !sameDate(rec.Date, today) {
		return reasonPriorDay, true
	}
	if sameDate(rec.Date, today) {
		open := now.Sub(rec.CheckIn)
		if open >= s.opts.StaleAfter {
			return staleReason(open.Hours()), true
		}
	}
	return "", false
}

func (s *service) forceClose(ctx context.Context, rec AttendanceRecord, reason string) (bool, error) {
	var closed bool
	err := s.inTx(ctx, func(tx *sql.Tx, qtx Repository) error {
		ok, err := qtx.ForceClose(ctx, rec.ID, reason)
		if err != nil {
			return mapRepositoryError(err)
		}
		closed = ok
		if !ok {
			return nil
		}
		return s.enqueue(ctx, tx, events.FichajeEvent{
			EventType:  events.FichajeAutoClosed,
			EmployeeID: rec.EmployeeID,
			RecordID:   rec.ID.String(),
			Reason:     reason,
		})
	})
	return closed, err
}

// RunSweepLoop runs SweepAll on every tick until ctx is done.
func RunSweepLoop(ctx context.Context, svc Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	log := logger.Named("attendance.sweeper")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("sweeper started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			log.Info("sweeper stopped")
			return
		case <-ticker.C:
			if _, err := svc.SweepAll(ctx); err != nil {
				log.Error("global sweep failed", zap.Error(err))
			}
		}
	}
}
