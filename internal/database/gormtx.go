package database

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a gorm handle whose statements run on tx. With a nil tx the
// handle is returned unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	s := db.Session(&gorm.Session{Context: context.Background()})
	s.Statement.ConnPool = tx
	return s
}
