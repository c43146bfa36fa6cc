package consumer

import (
	"context"
	"errors"
	"time"

	"go-fichaje/internal/audit"
	auditerrors "go-fichaje/internal/audit/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Retry delays for a message whose audit entry could not be stored.
var (
	retryBackoff    = 500 * time.Millisecond
	maxRetryBackoff = 30 * time.Second
)

// ConsumeFichajeLifecycle stores every lifecycle event in the audit trail
// until ctx is cancelled. Duplicates and undecodable messages are committed
// and skipped. A storage failure retries the same message with backoff and
// nothing after it is fetched until it succeeds.
func ConsumeFichajeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditService audit.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.fichaje_lifecycle")
	log.Info("fichaje lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("fichaje lifecycle consumer stopped")
				return
			}
			log.Error("fetch fichaje lifecycle message failed", zap.Error(err))
			continue
		}

		if !processWithRetry(ctx, reader, auditService, msg, log) {
			log.Info("fichaje lifecycle consumer stopped", zap.Int64("pending_offset", msg.Offset))
			return
		}
	}
}

// processWithRetry returns false only when ctx ends before msg is settled.
func processWithRetry(
	ctx context.Context,
	reader MessageReader,
	auditService audit.Service,
	msg kafkago.Message,
	log *zap.Logger,
) bool {
	delay := retryBackoff
	for attempt := 1; ; attempt++ {
		if handleMessage(ctx, reader, auditService, msg, log) {
			return true
		}

		log.Warn("retrying fichaje lifecycle message",
			zap.Int64("offset", msg.Offset),
			zap.Int("partition", msg.Partition),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		delay *= 2
		if delay > maxRetryBackoff {
			delay = maxRetryBackoff
		}
	}
}

// handleMessage reports whether msg is settled (committed, or skipped as a
// duplicate or undecodable).
func handleMessage(
	ctx context.Context,
	reader MessageReader,
	auditService audit.Service,
	msg kafkago.Message,
	log *zap.Logger,
) bool {
	event, err := auditService.Record(ctx, msg.Value)
	if err != nil {
		switch {
		case errors.Is(err, auditerrors.ErrEventAlreadyRecorded):
			log.Warn("fichaje event already audited, skipping",
				zap.String("event_id", event.EventID),
				zap.String("employee_id", event.EmployeeID),
			)
		case errors.Is(err, auditerrors.ErrInvalidEvent):
			log.Error("decode fichaje event failed",
				zap.Int64("offset", msg.Offset),
				zap.Int("partition", msg.Partition),
				zap.Error(err),
			)
		default:
			log.Error("record fichaje audit entry failed",
				zap.String("event_id", event.EventID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			return false
		}
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit skipped fichaje lifecycle message failed", zap.Error(err))
			return false
		}
		return true
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit fichaje lifecycle message failed", zap.Error(err))
		return false
	}

	log.Info("fichaje event audited",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("employee_id", event.EmployeeID),
		zap.String("request_id", event.RequestID),
	)
	return true
}
