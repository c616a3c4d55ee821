package connection_test

import (
	"context"
	"testing"

	"job-portal/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type widget struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func TestBindTx_RunsInsideTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "widgets"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := sqlDB.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	err = connection.BindTx(context.Background(), db, tx).Create(&widget{ID: uuid.New(), Name: "w"}).Error
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())

	// a single BEGIN/COMMIT pair proves gorm did not open its own transaction
	assert.NoError(t, mock.ExpectationsWereMet())
}
