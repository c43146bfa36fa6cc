package clockcode

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
)

const maxImportRows = 5000

var (
	codeHeaders        = []string{"clave", "codigo", "código", "code"}
	employeeHeaders    = []string{"nombre", "empleado", "empleado_id", "employee", "employee_id"}
	descriptionHeaders = []string{"descripcion", "descripción", "description"}
)

// ParseImportFile reads the first sheet of an .xlsx file or a .csv file. The
// first row is the header; fully empty rows are skipped.
func ParseImportFile(filename string, r io.Reader) ([]ImportRow, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		records, err = readXLSX(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, clockcodeerrors.ErrImportUnsupported
	}
	if err != nil {
		return nil, clockcodeerrors.ErrImportUnreadable.WithCause(err)
	}
	return parseRecords(records)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return records, err
}

func parseRecords(records [][]string) ([]ImportRow, error) {
	if len(records) < 2 {
		return nil, clockcodeerrors.ErrImportNoData
	}

	colIndex := parseHeaderIndex(records[0])
	if colIndex["code"] < 0 || colIndex["employee"] < 0 {
		return nil, clockcodeerrors.ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		if idx := colIndex[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportRow
	for i := 1; i < len(records); i++ {
		if isEmptyRow(records[i]) {
			continue
		}
		rows = append(rows, ImportRow{
			Row:         i + 1,
			Code:        cell(records[i], "code"),
			EmployeeID:  cell(records[i], "employee"),
			Description: cell(records[i], "description"),
		})
	}

	if len(rows) == 0 {
		return nil, clockcodeerrors.ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, clockcodeerrors.ErrImportTooManyRows
	}
	return rows, nil
}

// parseHeaderIndex maps logical columns to positions, -1 when absent. Header
// names are matched case-insensitively.
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"code":        -1,
		"employee":    -1,
		"description": -1,
	}
	fold := cases.Fold()
	aliases := map[string][]string{
		"code":        codeHeaders,
		"employee":    employeeHeaders,
		"description": descriptionHeaders,
	}

	for i, h := range header {
		name := fold.String(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for key, names := range aliases {
			if idx[key] >= 0 {
				continue
			}
			for _, alias := range names {
				if name == fold.String(alias) {
					idx[key] = i
				}
			}
		}
	}
	return idx
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
