package scope_test

import (
	"testing"

	"job-portal/internal/access"
	"job-portal/internal/scope"
	"job-portal/internal/shared/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type jobRow struct {
	ID uuid.UUID
}

func (jobRow) TableName() string { return "jobs" }

type applicationRow struct {
	ID uuid.UUID
}

func (applicationRow) TableName() string { return "applications" }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DryRun: true})
	assert.NoError(t, err)
	return db
}

func TestJobsScope(t *testing.T) {
	db := dryRunDB(t)
	uid := uuid.New()

	stmt := db.Scopes(scope.Jobs(access.Scope{Kind: access.ScopeOwnJobs, UserID: uid})).Find(&[]jobRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "recruiter_id IN (SELECT id FROM recruiters WHERE user_id = $1)")
	assert.Equal(t, []any{uid}, stmt.Vars)

	stmt = db.Scopes(scope.Jobs(access.Scope{Kind: access.ScopeNone})).Find(&[]jobRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "1 = 0")

	stmt = db.Scopes(scope.Jobs(access.Scope{Kind: access.ScopeAll})).Find(&[]jobRow{}).Statement
	assert.NotContains(t, stmt.SQL.String(), "WHERE")
}

func TestApplicationsScope(t *testing.T) {
	db := dryRunDB(t)
	uid := uuid.New()

	stmt := db.Scopes(scope.Applications(access.Scope{Kind: access.ScopeOwnApplications, UserID: uid})).Find(&[]applicationRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "SELECT id FROM employees WHERE user_id = $1")

	stmt = db.Scopes(scope.Applications(access.Scope{Kind: access.ScopeApplicationsToOwnJobs, UserID: uid})).Find(&[]applicationRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "recruiters.user_id = $1")

	// a job-only scope kind never leaks applications
	stmt = db.Scopes(scope.Applications(access.Scope{Kind: access.ScopeOwnJobs, UserID: uid})).Find(&[]applicationRow{}).Statement
	assert.Contains(t, stmt.SQL.String(), "1 = 0")
}

func TestPaginate(t *testing.T) {
	db := dryRunDB(t)

	stmt := db.Scopes(scope.Paginate(pagination.Params{Page: 3, PageSize: 10})).Find(&[]jobRow{}).Statement

	assert.Contains(t, stmt.SQL.String(), "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 20}, stmt.Vars)
}
