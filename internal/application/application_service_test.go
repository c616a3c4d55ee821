package application_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"job-portal/internal/access"
	"job-portal/internal/application"
	applicationerrors "job-portal/internal/application/errors"
	applicationMock "job-portal/internal/application/mock"
	"job-portal/internal/events"
	"job-portal/internal/messaging/kafka"
	kafkaMock "job-portal/internal/messaging/kafka/mock"
	"job-portal/internal/profile"
	profileerrors "job-portal/internal/profile/errors"
	profileMock "job-portal/internal/profile/mock"
	"job-portal/internal/shared/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  application.Service
	repo     *applicationMock.MockRepository
	resolver *profileMock.MockResolver
	outbox   *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := applicationMock.NewMockRepository(ctrl)
	resolver := profileMock.NewMockResolver(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  application.NewService(db, repo, resolver, outboxRepo),
		repo:     repo,
		resolver: resolver,
		outbox:   outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func employee() access.Actor {
	return access.Actor{UserID: uuid.New(), Role: access.RoleEmployee}
}

func recruiter() access.Actor {
	return access.Actor{UserID: uuid.New(), Role: access.RoleRecruiter}
}

func superuser() access.Actor {
	return access.Actor{UserID: uuid.New(), Role: access.RoleSuperadmin, IsStaff: true, IsSuperuser: true}
}

func activeTarget() *application.JobTarget {
	return &application.JobTarget{
		ID:             uuid.New(),
		Title:          "Backend Engineer",
		IsActive:       true,
		RecruiterEmail: "hr@acme.io",
	}
}

func TestApplicationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("submits for the actor and queues the recruiter notification", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := employee()
		emp := &profile.Employee{ID: uuid.New(), UserID: actor.UserID}
		target := activeTarget()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindJobTarget(ctx, target.ID).Return(target, nil)
		deps.resolver.EXPECT().EmployeeByUser(ctx, actor.UserID).Return(emp, nil)
		deps.repo.EXPECT().FindUserName(ctx, actor.UserID).Return("Jane Doe", nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *application.Application) error {
			assert.Equal(t, emp.ID, a.EmployeeID)
			assert.Equal(t, target.ID, a.JobID)
			assert.Equal(t, application.StatusSubmitted, a.Status)
			assert.True(t, a.IsActive)
			assert.False(t, a.SubmittedAt.IsZero())
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.ApplicationSubmittedType, ev.EventType)
			assert.Equal(t, events.NotificationsTopic, ev.Topic)

			var payload events.ApplicationSubmittedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "hr@acme.io", payload.RecruiterEmail)
			assert.Equal(t, "Backend Engineer", payload.JobTitle)
			assert.Equal(t, "Jane Doe", payload.ApplicantName)
			return nil
		})

		resp, err := deps.service.Create(ctx, actor, application.CreateApplicationRequest{
			JobID:       target.ID.String(),
			CoverLetter: "Hello",
		})

		assert.NoError(t, err)
		assert.Equal(t, emp.ID.String(), resp.EmployeeID)
		assert.Equal(t, target.ID.String(), resp.JobID)
		assert.Equal(t, application.StatusSubmitted, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cover letter over the limit", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Create(ctx, employee(), application.CreateApplicationRequest{
			JobID:       uuid.NewString(),
			CoverLetter: strings.Repeat("a", application.MaxCoverLetterLength+1),
		})
		assert.ErrorIs(t, err, applicationerrors.ErrCoverLetterTooLong)
	})

	t.Run("cover letter at the limit counts runes", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindJobTarget(ctx, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, employee(), application.CreateApplicationRequest{
			JobID:       uuid.NewString(),
			CoverLetter: strings.Repeat("é", application.MaxCoverLetterLength),
		})
		assert.ErrorIs(t, err, applicationerrors.ErrJobDoesNotExist)
	})

	t.Run("inactive job", func(t *testing.T) {
		deps := setupServiceTest(t)
		target := activeTarget()
		target.IsActive = false
		deps.repo.EXPECT().FindJobTarget(ctx, target.ID).Return(target, nil)

		_, err := deps.service.Create(ctx, employee(), application.CreateApplicationRequest{JobID: target.ID.String()})
		assert.ErrorIs(t, err, applicationerrors.ErrJobNotActive)
	})

	t.Run("recruiter has no employee profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := recruiter()
		target := activeTarget()
		deps.repo.EXPECT().FindJobTarget(ctx, target.ID).Return(target, nil)
		deps.resolver.EXPECT().EmployeeByUser(ctx, actor.UserID).Return(nil, profileerrors.ErrEmployeeNotFound)

		_, err := deps.service.Create(ctx, actor, application.CreateApplicationRequest{JobID: target.ID.String()})
		assert.ErrorIs(t, err, applicationerrors.ErrEmployeeProfileRequired)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := employee()
		target := activeTarget()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindJobTarget(ctx, target.ID).Return(target, nil)
		deps.resolver.EXPECT().EmployeeByUser(ctx, actor.UserID).Return(&profile.Employee{ID: uuid.New()}, nil)
		deps.repo.EXPECT().FindUserName(ctx, actor.UserID).Return("Jane Doe", nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

		_, err := deps.service.Create(ctx, actor, application.CreateApplicationRequest{JobID: target.ID.String()})
		assert.EqualError(t, err, "disk full")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestApplicationService_List(t *testing.T) {
	ctx := context.Background()
	page := pagination.Params{Page: 1, PageSize: 10}

	t.Run("superadmin role without flag sees nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := access.Actor{UserID: uuid.New(), Role: access.RoleSuperadmin}

		resp, total, err := deps.service.List(ctx, actor, application.ListApplicationsQuery{}, page)
		assert.NoError(t, err)
		assert.Empty(t, resp)
		assert.Zero(t, total)
	})

	t.Run("recruiter sees applications to own jobs", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := recruiter()
		want := access.Scope{Kind: access.ScopeApplicationsToOwnJobs, UserID: actor.UserID}
		q := application.ListApplicationsQuery{Status: application.StatusSubmitted}

		deps.repo.EXPECT().List(ctx, want, q, page).Return([]application.Application{{ID: uuid.New()}}, int64(1), nil)

		resp, total, err := deps.service.List(ctx, actor, q, page)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(1), total)
	})
}

func TestApplicationService_Instance(t *testing.T) {
	ctx := context.Background()

	owned := func(emp, rec access.Actor) *application.Application {
		return &application.Application{
			ID:                 uuid.New(),
			EmployeeID:         uuid.New(),
			JobID:              uuid.New(),
			Status:             application.StatusSubmitted,
			IsActive:           true,
			EmployeeUserID:     emp.UserID,
			JobRecruiterUserID: rec.UserID,
		}
	}

	t.Run("malformed id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, employee(), "nope")
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})

	t.Run("outside the visible set is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := employee()
		id := uuid.New()
		deps.repo.EXPECT().FindVisible(ctx, access.ApplicationScope(actor), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, actor, id.String())
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})

	t.Run("job recruiter reads", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := recruiter()
		app := owned(employee(), rec)
		deps.repo.EXPECT().FindVisible(ctx, access.ApplicationScope(rec), app.ID).Return(app, nil)

		resp, err := deps.service.GetByID(ctx, rec, app.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, app.ID.String(), resp.ID)
	})

	t.Run("job recruiter cannot update", func(t *testing.T) {
		deps := setupServiceTest(t)
		rec := recruiter()
		app := owned(employee(), rec)
		deps.repo.EXPECT().FindVisible(ctx, gomock.Any(), app.ID).Return(app, nil)

		letter := "rewritten"
		_, err := deps.service.Patch(ctx, rec, app.ID.String(), application.PatchApplicationRequest{CoverLetter: &letter})
		assert.ErrorIs(t, err, applicationerrors.ErrForbidden)
	})

	t.Run("superuser cannot update", func(t *testing.T) {
		deps := setupServiceTest(t)
		admin := superuser()
		app := owned(employee(), recruiter())
		deps.repo.EXPECT().FindVisible(ctx, access.ApplicationScope(admin), app.ID).Return(app, nil)

		letter := "rewritten"
		_, err := deps.service.Patch(ctx, admin, app.ID.String(), application.PatchApplicationRequest{CoverLetter: &letter})
		assert.ErrorIs(t, err, applicationerrors.ErrForbidden)
	})

	t.Run("superuser deletes", func(t *testing.T) {
		deps := setupServiceTest(t)
		admin := superuser()
		app := owned(employee(), recruiter())
		deps.repo.EXPECT().FindVisible(ctx, gomock.Any(), app.ID).Return(app, nil)
		deps.repo.EXPECT().Delete(ctx, app.ID).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, admin, app.ID.String()))
	})

	t.Run("owner patches cover letter only", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := employee()
		app := owned(emp, recruiter())
		jobID := app.JobID
		deps.repo.EXPECT().FindVisible(ctx, gomock.Any(), app.ID).Return(app, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *application.Application) error {
			assert.Equal(t, "updated", a.CoverLetter)
			assert.Equal(t, jobID, a.JobID)
			assert.Equal(t, application.StatusSubmitted, a.Status)
			return nil
		})

		letter := "updated"
		resp, err := deps.service.Patch(ctx, emp, app.ID.String(), application.PatchApplicationRequest{CoverLetter: &letter})
		assert.NoError(t, err)
		assert.Equal(t, "updated", resp.CoverLetter)
	})

	t.Run("owner moves to an inactive job", func(t *testing.T) {
		deps := setupServiceTest(t)
		emp := employee()
		app := owned(emp, recruiter())
		target := activeTarget()
		target.IsActive = false
		deps.repo.EXPECT().FindVisible(ctx, gomock.Any(), app.ID).Return(app, nil)
		deps.repo.EXPECT().FindJobTarget(ctx, target.ID).Return(target, nil)

		_, err := deps.service.Update(ctx, emp, app.ID.String(), application.UpdateApplicationRequest{JobID: target.ID.String()})
		assert.ErrorIs(t, err, applicationerrors.ErrJobNotActive)
	})

	t.Run("other employee is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		other := employee()
		id := uuid.New()
		deps.repo.EXPECT().FindVisible(ctx, access.ApplicationScope(other), id).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, other, id.String())
		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}
