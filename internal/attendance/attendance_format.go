package attendance

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// FormatHours renders decimal hours as "7h" or "7h 30m".
func FormatHours(h float64) string {
	if h <= 0 || math.IsNaN(h) {
		return "0h"
	}
	whole := math.Floor(h)
	minutes := int(math.Round((h - whole) * 60))
	if minutes == 60 {
		whole++
		minutes = 0
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", int(whole))
	}
	return fmt.Sprintf("%dh %dm", int(whole), minutes)
}

// calendarDate returns the date of t in loc as midnight UTC, the value stored
// in the DATE column.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func mapRecord(r AttendanceRecord) RecordResponse {
	resp := RecordResponse{
		ID:              r.ID.String(),
		EmployeeID:      r.EmployeeID,
		Date:            r.Date.Format(dateLayout),
		CheckIn:         r.CheckIn,
		CheckOut:        r.CheckOut,
		HoursWorked:     r.HoursWorked,
		Modified:        r.Modified,
		AutoCloseReason: r.AutoCloseReason(),
	}
	if r.HoursWorked != nil {
		resp.HoursLabel = FormatHours(*r.HoursWorked)
	}
	return resp
}

func mapRecords(rows []AttendanceRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapRecord(r))
	}
	return out
}

func mapPause(p PauseInterval) PauseResponse {
	return PauseResponse{
		ID:              p.ID.String(),
		RecordID:        p.RecordID.String(),
		Kind:            p.Kind,
		Description:     p.Description,
		Start:           p.Start,
		End:             p.End,
		DurationMinutes: p.DurationMinutes,
		Active:          p.IsActive(),
	}
}

func mapPauses(rows []PauseInterval) []PauseResponse {
	out := make([]PauseResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, mapPause(p))
	}
	return out
}
