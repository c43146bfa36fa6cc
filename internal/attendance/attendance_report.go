package attendance

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	attendanceerrors "go-fichaje/internal/attendance/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 366
	monthLayout        = "2006-01"
	exportSheet        = "Fichajes"
)

// resolveRange parses from/to, defaulting to the last 30 days up to today.
func (s *service) resolveRange(from, to string) (time.Time, time.Time, error) {
	end := s.today()
	if strings.TrimSpace(to) != "" {
		t, err := parseDate(strings.TrimSpace(to))
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
		end = t
	}

	start := end.AddDate(0, 0, -(defaultHistoryDays - 1))
	if strings.TrimSpace(from) != "" {
		t, err := parseDate(strings.TrimSpace(from))
		if err != nil {
			return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidDate
		}
		start = t
	}

	if start.After(end) || end.Sub(start) > maxHistoryDays*24*time.Hour {
		return time.Time{}, time.Time{}, attendanceerrors.ErrInvalidRange
	}
	return start, end, nil
}

func (s *service) History(ctx context.Context, employeeID, from, to string) ([]RecordResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	if strings.TrimSpace(employeeID) == "" {
		return nil, attendanceerrors.ErrEmployeeRequired
	}
	start, end, err := s.resolveRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetRecordsInRange(ctx, employeeID, start, end)
	if err != nil {
		s.logger.Error("history query failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapRecords(rows), nil
}

func (s *service) MonthlySummary(ctx context.Context, employeeID, month string) (MonthlySummaryResponse, error) {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	if strings.TrimSpace(employeeID) == "" {
		return MonthlySummaryResponse{}, attendanceerrors.ErrEmployeeRequired
	}

	first := s.today().AddDate(0, 0, -s.today().Day()+1)
	if strings.TrimSpace(month) != "" {
		t, err := time.Parse(monthLayout, strings.TrimSpace(month))
		if err != nil {
			return MonthlySummaryResponse{}, attendanceerrors.ErrInvalidMonth
		}
		first = t
	}
	last := first.AddDate(0, 1, -1)

	rows, err := s.repo.GetRecordsInRange(ctx, employeeID, first, last)
	if err != nil {
		s.logger.Error("monthly summary query failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MonthlySummaryResponse{}, mapRepositoryError(err)
	}

	resp := summarize(rows)
	resp.Month = first.Format(monthLayout)
	resp.EmployeeID = employeeID
	return resp, nil
}

func summarize(rows []AttendanceRecord) MonthlySummaryResponse {
	resp := MonthlySummaryResponse{Records: mapRecords(rows)}
	for _, r := range rows {
		resp.TotalDays++
		if r.HoursWorked != nil {
			resp.TotalHours += *r.HoursWorked
		}
		if r.CheckOut != nil {
			resp.CompleteDays++
		} else {
			resp.IncompleteDays++
		}
	}
	resp.TotalHours = math.Round(resp.TotalHours*100) / 100
	resp.TotalLabel = FormatHours(resp.TotalHours)
	return resp
}

// ExportHistory renders the history range as a single-sheet workbook.
func (s *service) ExportHistory(ctx context.Context, employeeID, from, to string) (*bytes.Buffer, string, error) {
	records, err := s.History(ctx, employeeID, from, to)
	if err != nil {
		return nil, "", err
	}
	start, end, _ := s.resolveRange(from, to)

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", attendanceerrors.ErrExportFailed.WithCause(err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})

	headers := []any{"Fecha", "Entrada", "Salida", "Horas", "Horas (texto)", "Modificado", "Motivo cierre"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, "", attendanceerrors.ErrExportFailed.WithCause(err)
	}
	_ = f.SetCellStyle(exportSheet, "A1", "G1", headerStyle)
	_ = f.SetColWidth(exportSheet, "A", "A", 12)
	_ = f.SetColWidth(exportSheet, "B", "C", 10)
	_ = f.SetColWidth(exportSheet, "G", "G", 48)

	loc := s.opts.Location
	for i, r := range records {
		row := []any{r.Date, r.CheckIn.In(loc).Format("15:04"), "", "", r.HoursLabel, yesNo(r.Modified), r.AutoCloseReason}
		if r.CheckOut != nil {
			row[2] = r.CheckOut.In(loc).Format("15:04")
		}
		if r.HoursWorked != nil {
			row[3] = *r.HoursWorked
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, "", attendanceerrors.ErrExportFailed.WithCause(err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write export workbook failed", zap.Error(err))
		return nil, "", attendanceerrors.ErrExportFailed.WithCause(err)
	}

	filename := fmt.Sprintf("fichajes_%s_%s_%s.xlsx", sanitizeFilePart(employeeID), start.Format(dateLayout), end.Format(dateLayout))
	return buf, filename, nil
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func sanitizeFilePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
