package kiosk

import "time"

type StartSessionRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type SessionResponse struct {
	Token       string    `json:"token"`
	EmployeeID  string    `json:"employee_id"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
