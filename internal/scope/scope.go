package scope

import "gorm.io/gorm"

// Employee restricts a query to one employee's rows.
func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("empleado_id = ?", employeeID)
	}
}

// OpenRecords keeps attendance records without a check-out.
func OpenRecords(db *gorm.DB) *gorm.DB {
	return db.Where("hora_salida IS NULL")
}
