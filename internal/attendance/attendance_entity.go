package attendance

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is one employee's fichaje for one calendar date.
type AttendanceRecord struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    string          `gorm:"column:empleado_id;not null"`
	Date          time.Time       `gorm:"column:fecha;type:date;not null"`
	CheckIn       time.Time       `gorm:"column:hora_entrada;type:timestamptz;default:now()"`
	CheckOut      *time.Time      `gorm:"column:hora_salida;type:timestamptz"`
	HoursWorked   *float64        `gorm:"column:horas_trabajadas;type:numeric(6,2)"`
	Modified      bool            `gorm:"column:es_modificado"`
	OriginalValue json.RawMessage `gorm:"column:valor_original;type:jsonb"`
	CreatedBy     string          `gorm:"column:created_by"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (AttendanceRecord) TableName() string {
	return "fichajes"
}

func (r AttendanceRecord) IsOpen() bool {
	return r.CheckOut == nil
}

// AutoCloseReason returns the note stored by a forced closure, if any.
func (r AttendanceRecord) AutoCloseReason() string {
	if len(r.OriginalValue) == 0 {
		return ""
	}
	var note autoCloseNote
	if err := json.Unmarshal(r.OriginalValue, &note); err != nil {
		return ""
	}
	return note.Reason
}

type autoCloseNote struct {
	Reason string `json:"motivo_cierre_auto"`
}

type PauseInterval struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordID        uuid.UUID  `gorm:"column:fichaje_id;type:uuid;not null"`
	Kind            string     `gorm:"column:tipo;not null"`
	Description     *string    `gorm:"column:descripcion"`
	Start           time.Time  `gorm:"column:inicio;type:timestamptz;default:now()"`
	End             *time.Time `gorm:"column:fin;type:timestamptz"`
	DurationMinutes *int       `gorm:"column:duracion_minutos"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (PauseInterval) TableName() string {
	return "fichajes_pausas"
}

func (p PauseInterval) IsActive() bool {
	return p.End == nil
}
