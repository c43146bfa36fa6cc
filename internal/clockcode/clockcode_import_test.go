package clockcode

import (
	"bytes"
	"strings"
	"testing"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		assert.NoError(t, err)
		r := row
		assert.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	buf := new(bytes.Buffer)
	assert.NoError(t, f.Write(buf))
	return buf
}

func TestParseImportFile_CSV(t *testing.T) {
	data := "\ufeffCLAVE,NOMBRE,Descripción\n a1 ,EMP-1,Recepción\n,,\nB2,EMP-2,\n"

	rows, err := ParseImportFile("codes.csv", strings.NewReader(data))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, ImportRow{Row: 2, Code: "a1", EmployeeID: "EMP-1", Description: "Recepción"}, rows[0])
	assert.Equal(t, 4, rows[1].Row)
	assert.Equal(t, "B2", rows[1].Code)
}

func TestParseImportFile_XLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Código", "empleado_id"},
		{"K1", "EMP-1"},
		{"", ""},
		{"K2", ""},
	})

	rows, err := ParseImportFile("Codes.XLSX", buf)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "K1", rows[0].Code)
	assert.Equal(t, "EMP-1", rows[0].EmployeeID)
	assert.Equal(t, "", rows[1].EmployeeID)
}

func TestParseImportFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
		want     error
	}{
		{"unsupported", "codes.txt", "code,employee\nA,B\n", clockcodeerrors.ErrImportUnsupported},
		{"missing employee column", "codes.csv", "code,notes\nA,x\n", clockcodeerrors.ErrImportBadHeader},
		{"header only", "codes.csv", "code,employee\n", clockcodeerrors.ErrImportNoData},
		{"only blank rows", "codes.csv", "code,employee\n , \n", clockcodeerrors.ErrImportNoData},
		{"broken xlsx", "codes.xlsx", "not a zip", clockcodeerrors.ErrImportUnreadable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImportFile(tt.filename, strings.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseImportFile_TooManyRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("code,employee\n")
	for i := 0; i <= maxImportRows; i++ {
		b.WriteString("A,B\n")
	}
	_, err := ParseImportFile("codes.csv", strings.NewReader(b.String()))
	assert.ErrorIs(t, err, clockcodeerrors.ErrImportTooManyRows)
}

func TestParseHeaderIndex(t *testing.T) {
	idx := parseHeaderIndex([]string{" Employee ", "CODE", "description"})
	assert.Equal(t, 1, idx["code"])
	assert.Equal(t, 0, idx["employee"])
	assert.Equal(t, 2, idx["description"])
}
