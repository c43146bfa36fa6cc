package events

import "time"

const FichajeLifecycleTopic = "fichaje.lifecycle.v1"

const (
	FichajeCheckedIn    = "fichaje.checked_in"
	FichajeCheckedOut   = "fichaje.checked_out"
	FichajePauseStarted = "fichaje.pause_started"
	FichajePauseEnded   = "fichaje.pause_ended"
	FichajeAutoClosed   = "fichaje.auto_closed"
)

// FichajeEvent is published for every attendance state transition.
type FichajeEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	RecordID   string    `json:"record_id"`
	PauseID    string    `json:"pause_id,omitempty"`
	PauseKind  string    `json:"pause_kind,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func IsFichajeEvent(eventType string) bool {
	switch eventType {
	case FichajeCheckedIn, FichajeCheckedOut, FichajePauseStarted, FichajePauseEnded, FichajeAutoClosed:
		return true
	default:
		return false
	}
}
