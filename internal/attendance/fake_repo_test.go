package attendance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"sort"
	"sync"
	"time"

	"go-fichaje/internal/attendance"
	attendanceerrors "go-fichaje/internal/attendance/errors"

	"github.com/google/uuid"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// fakeRepo keeps records and pauses in memory and mirrors the SQL functions:
// hours exclude closed pauses and closures only apply to open rows.
type fakeRepo struct {
	mu      sync.Mutex
	clock   *fakeClock
	records map[uuid.UUID]*attendance.AttendanceRecord
	pauses  map[uuid.UUID]*attendance.PauseInterval
	closes  int
}

func newFakeRepo(clock *fakeClock) *fakeRepo {
	return &fakeRepo{
		clock:   clock,
		records: map[uuid.UUID]*attendance.AttendanceRecord{},
		pauses:  map[uuid.UUID]*attendance.PauseInterval{},
	}
}

func (f *fakeRepo) WithTx(*sql.Tx) attendance.Repository { return f }

func (f *fakeRepo) seed(rec attendance.AttendanceRecord) *attendance.AttendanceRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.records[rec.ID] = &rec
	return &rec
}

func (f *fakeRepo) seedPause(p attendance.PauseInterval) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.pauses[p.ID] = &p
}

func (f *fakeRepo) record(id uuid.UUID) attendance.AttendanceRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.records[id]
}

func (f *fakeRepo) CreateCheckIn(_ context.Context, employeeID string, date time.Time, actorID string) (*attendance.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return nil, attendanceerrors.ErrAlreadyCheckedIn
		}
	}
	rec := &attendance.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    f.clock.Now(),
		CreatedBy:  actorID,
	}
	f.records[rec.ID] = rec
	out := *rec
	return &out, nil
}

func (f *fakeRepo) close(rec *attendance.AttendanceRecord) {
	now := f.clock.Now()
	worked := now.Sub(rec.CheckIn)
	for _, p := range f.pauses {
		if p.RecordID == rec.ID && p.End != nil {
			worked -= p.End.Sub(p.Start)
		}
	}
	hours := math.Round(worked.Hours()*100) / 100
	rec.CheckOut = &now
	rec.HoursWorked = &hours
}

func (f *fakeRepo) SetCheckOut(_ context.Context, recordID uuid.UUID) (*attendance.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[recordID]
	if !ok || rec.CheckOut != nil {
		return nil, attendanceerrors.ErrAlreadyCheckedOut
	}
	f.close(rec)
	out := *rec
	return &out, nil
}

func (f *fakeRepo) GetRecordForDate(_ context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			out := *r
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) open(match func(*attendance.AttendanceRecord) bool) []attendance.AttendanceRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []attendance.AttendanceRecord
	for _, r := range f.records {
		if r.CheckOut == nil && match(r) {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows
}

func (f *fakeRepo) GetOpenRecords(_ context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	return f.open(func(r *attendance.AttendanceRecord) bool { return r.EmployeeID == employeeID }), nil
}

func (f *fakeRepo) ListOpenRecords(_ context.Context, limit int) ([]attendance.AttendanceRecord, error) {
	rows := f.open(func(*attendance.AttendanceRecord) bool { return true })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeRepo) ForceClose(_ context.Context, recordID uuid.UUID, reason string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[recordID]
	if !ok || rec.CheckOut != nil {
		return false, nil
	}
	f.close(rec)
	rec.Modified = true
	rec.OriginalValue, _ = json.Marshal(map[string]string{"motivo_cierre_auto": reason})
	f.closes++
	return true, nil
}

func (f *fakeRepo) StartPause(_ context.Context, recordID uuid.UUID, kind string, description *string) (*attendance.PauseInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pauses {
		if p.RecordID == recordID && p.End == nil {
			return nil, attendanceerrors.ErrPauseAlreadyActive
		}
	}
	p := &attendance.PauseInterval{
		ID:          uuid.New(),
		RecordID:    recordID,
		Kind:        kind,
		Description: description,
		Start:       f.clock.Now(),
	}
	f.pauses[p.ID] = p
	out := *p
	return &out, nil
}

func (f *fakeRepo) EndPause(_ context.Context, pauseID uuid.UUID) (*attendance.PauseInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pauses[pauseID]
	if !ok || p.End != nil {
		return nil, attendanceerrors.ErrNoActivePause
	}
	now := f.clock.Now()
	minutes := int(now.Sub(p.Start).Minutes())
	p.End = &now
	p.DurationMinutes = &minutes
	out := *p
	return &out, nil
}

func (f *fakeRepo) GetPauses(_ context.Context, recordID uuid.UUID) ([]attendance.PauseInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []attendance.PauseInterval
	for _, p := range f.pauses {
		if p.RecordID == recordID {
			rows = append(rows, *p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Start.Before(rows[j].Start) })
	return rows, nil
}

func (f *fakeRepo) GetActivePause(_ context.Context, recordID uuid.UUID) (*attendance.PauseInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pauses {
		if p.RecordID == recordID && p.End == nil {
			out := *p
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetRecordsInRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []attendance.AttendanceRecord
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			rows = append(rows, *r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}
