package audit

import "time"

type EntryResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	RecordID   string    `json:"record_id,omitempty"`
	PauseID    string    `json:"pause_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ListRequest struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=500"`
}
