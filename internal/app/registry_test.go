package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		assert.NoError(t, err)
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		redisMock.ExpectPing().SetVal("PONG")

		r := gin.New()
		r.GET("/health", healthCheck(db, rdb))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, dbMock.ExpectationsWereMet())
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("redis down", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		assert.NoError(t, err)
		defer db.Close()
		rdb, redisMock := redismock.NewClientMock()

		dbMock.ExpectPing()
		redisMock.ExpectPing().SetErr(errors.New("connection refused"))

		r := gin.New()
		r.GET("/health", healthCheck(db, rdb))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestNewMailer(t *testing.T) {
	logger := zap.NewNop()

	logOnly := NewMailer(&config.Config{}, logger)
	assert.NotNil(t, logOnly)

	smtp := NewMailer(&config.Config{Mail: config.MailConfig{Host: "smtp.local", Port: 25, From: "a@b.c"}}, logger)
	assert.NotNil(t, smtp)
	assert.NotEqual(t, logOnly, smtp)
}
