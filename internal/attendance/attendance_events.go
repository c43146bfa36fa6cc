package attendance

import (
	"context"
	"database/sql"

	"go-fichaje/internal/events"
	"go-fichaje/internal/messaging/kafka"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/contextutil"

	"github.com/google/uuid"
)

const aggregateType = "fichaje"

// enqueue writes the event to the outbox inside tx. Without an outbox it is a
// no-op.
func (s *service) enqueue(ctx context.Context, tx *sql.Tx, event events.FichajeEvent) error {
	if s.outbox == nil {
		return nil
	}

	event.EventID = uuid.NewString()
	event.RequestID = contextutil.GetRequestID(ctx)
	event.OccurredAt = s.opts.Now().UTC()

	outboxEvent, err := kafka.NewOutboxEvent(
		events.FichajeLifecycleTopic,
		aggregateType,
		event.RecordID,
		event.EventType,
		event.RequestID,
		event,
	)
	if err != nil {
		return apperror.Persistence(err)
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		return apperror.Persistence(err)
	}
	return nil
}
