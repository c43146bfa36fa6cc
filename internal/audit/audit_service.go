package audit

import (
	"context"
	"encoding/json"

	auditerrors "go-fichaje/internal/audit/errors"
	"go-fichaje/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultListLimit = 100

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, raw []byte) (events.FichajeEvent, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, logger: l}
}

// Record decodes a lifecycle event and stores it once. Replays of the same
// event id return ErrEventAlreadyRecorded.
func (s *service) Record(ctx context.Context, raw []byte) (events.FichajeEvent, error) {
	var event events.FichajeEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return event, auditerrors.ErrInvalidEvent.WithCause(err)
	}
	if !events.IsFichajeEvent(event.EventType) || event.EmployeeID == "" {
		return event, auditerrors.ErrInvalidEvent
	}

	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return event, auditerrors.ErrInvalidEvent.WithCause(err)
	}

	entry := &Entry{
		ID:         uuid.New(),
		EventID:    eventID,
		EventType:  event.EventType,
		EmployeeID: event.EmployeeID,
		RecordID:   parseOptionalUUID(event.RecordID),
		PauseID:    parseOptionalUUID(event.PauseID),
		RequestID:  event.RequestID,
		Payload:    json.RawMessage(raw),
		OccurredAt: event.OccurredAt,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return event, mapRepositoryError(err)
	}

	s.logger.Debug("audit entry recorded",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("employee_id", event.EmployeeID),
	)
	return event, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]EntryResponse, error) {
	if employeeID == "" {
		return nil, auditerrors.ErrEmployeeIDRequired
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.repo.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		s.logger.Error("list audit entries failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]EntryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToResponse(row))
	}
	return resp, nil
}

func mapToResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:         e.ID.String(),
		EventID:    e.EventID.String(),
		EventType:  e.EventType,
		EmployeeID: e.EmployeeID,
		RequestID:  e.RequestID,
		OccurredAt: e.OccurredAt,
	}
	if e.RecordID != nil {
		resp.RecordID = e.RecordID.String()
	}
	if e.PauseID != nil {
		resp.PauseID = e.PauseID.String()
	}
	if len(e.Payload) > 0 {
		var payload map[string]any
		if json.Unmarshal(e.Payload, &payload) == nil {
			resp.Payload = payload
		}
	}
	return resp
}

func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
