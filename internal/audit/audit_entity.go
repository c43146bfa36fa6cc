package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventID    uuid.UUID       `gorm:"column:event_id;type:uuid"`
	EventType  string          `gorm:"column:event_type"`
	EmployeeID string          `gorm:"column:empleado_id"`
	RecordID   *uuid.UUID      `gorm:"column:fichaje_id;type:uuid"`
	PauseID    *uuid.UUID      `gorm:"column:pausa_id;type:uuid"`
	RequestID  string          `gorm:"column:request_id"`
	Payload    json.RawMessage `gorm:"column:payload;type:jsonb"`
	OccurredAt time.Time       `gorm:"column:occurred_at"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string {
	return "fichajes_auditoria"
}
