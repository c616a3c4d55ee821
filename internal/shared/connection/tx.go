package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run inside tx. A nil tx
// yields the plain context-bound handle.
func BindTx(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	bound := db.Session(&gorm.Session{Context: ctx})
	bound.Statement.ConnPool = tx
	return bound
}
