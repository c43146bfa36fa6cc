package attendance

import "time"

// State is derived from the record and pause rows, never stored.
type State string

const (
	StateNoRecord State = "NO_RECORD"
	StateWorking  State = "WORKING"
	StatePaused   State = "PAUSED"
	StateClosed   State = "CLOSED"
)

type StartPauseRequest struct {
	Kind        string  `json:"kind" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type HistoryRequest struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	EmployeeID string `form:"employee_id" binding:"omitempty,max=64"`
}

type SummaryRequest struct {
	Month      string `form:"month" binding:"omitempty,datetime=2006-01"`
	EmployeeID string `form:"employee_id" binding:"omitempty,max=64"`
}

type RecordResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	Date            string     `json:"date"`
	CheckIn         time.Time  `json:"check_in"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	HoursWorked     *float64   `json:"hours_worked,omitempty"`
	HoursLabel      string     `json:"hours_label,omitempty"`
	Modified        bool       `json:"modified"`
	AutoCloseReason string     `json:"auto_close_reason,omitempty"`
}

type PauseResponse struct {
	ID              string     `json:"id"`
	RecordID        string     `json:"record_id"`
	Kind            string     `json:"kind"`
	Description     *string    `json:"description,omitempty"`
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Active          bool       `json:"active"`
}

// StateResponse is the single eligibility read clients render from.
type StateResponse struct {
	State         State           `json:"state"`
	HasRecord     bool            `json:"has_record"`
	Record        *RecordResponse `json:"record,omitempty"`
	ActivePause   *PauseResponse  `json:"active_pause,omitempty"`
	Pauses        []PauseResponse `json:"pauses"`
	CanCheckIn    bool            `json:"can_check_in"`
	CanCheckOut   bool            `json:"can_check_out"`
	CanStartPause bool            `json:"can_start_pause"`
	CanEndPause   bool            `json:"can_end_pause"`
}

type MonthlySummaryResponse struct {
	Month          string           `json:"month"`
	EmployeeID     string           `json:"employee_id"`
	TotalDays      int              `json:"total_days"`
	TotalHours     float64          `json:"total_hours"`
	TotalLabel     string           `json:"total_label"`
	CompleteDays   int              `json:"complete_days"`
	IncompleteDays int              `json:"incomplete_days"`
	Records        []RecordResponse `json:"records"`
}
