package attendance

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StateQuerier interface {
	QueryState(ctx context.Context, employeeID string) (StateResponse, error)
}

// Poller re-queries an employee's state on a fixed interval.
type Poller struct {
	querier  StateQuerier
	interval time.Duration
	logger   *zap.Logger
}

func NewPoller(querier StateQuerier, interval time.Duration, logger ...*zap.Logger) *Poller {
	l := zap.L().Named("attendance.poller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.poller")
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{querier: querier, interval: interval, logger: l}
}

// Run emits the state immediately and then on every tick until ctx is done
// or emit returns false. Query errors are emitted too and do not stop the loop.
func (p *Poller) Run(ctx context.Context, employeeID string, emit func(StateResponse, error) bool) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Debug("state poller started", zap.String("employee_id", employeeID), zap.Duration("interval", p.interval))
	defer p.logger.Debug("state poller stopped", zap.String("employee_id", employeeID))

	for {
		state, err := p.querier.QueryState(ctx, employeeID)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !emit(state, err) {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
