package clockcode

import (
	"time"

	"github.com/google/uuid"
)

// CodeEntry maps a kiosk code to an employee. Codes are stored normalized.
type CodeEntry struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"column:codigo;not null"`
	EmployeeID  string    `gorm:"column:empleado_id;not null"`
	Description *string   `gorm:"column:descripcion"`
	Active      bool      `gorm:"column:activo;not null;default:true"`
	CreatedBy   string    `gorm:"column:created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CodeEntry) TableName() string {
	return "fichajes_codigos"
}
