package application

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"unicode/utf8"

	"job-portal/internal/access"
	applicationerrors "job-portal/internal/application/errors"
	"job-portal/internal/events"
	"job-portal/internal/messaging/kafka"
	"job-portal/internal/profile"
	profileerrors "job-portal/internal/profile/errors"
	"job-portal/internal/shared/contextutil"
	"job-portal/internal/shared/pagination"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor access.Actor, req CreateApplicationRequest) (ApplicationResponse, error)
	List(ctx context.Context, actor access.Actor, q ListApplicationsQuery, p pagination.Params) ([]ApplicationResponse, int64, error)
	GetByID(ctx context.Context, actor access.Actor, id string) (ApplicationResponse, error)
	Update(ctx context.Context, actor access.Actor, id string, req UpdateApplicationRequest) (ApplicationResponse, error)
	Patch(ctx context.Context, actor access.Actor, id string, req PatchApplicationRequest) (ApplicationResponse, error)
	Delete(ctx context.Context, actor access.Actor, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	profiles profile.Resolver
	outbox   kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	profiles profile.Resolver,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		profiles: profiles,
		outbox:   outboxRepo,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, actor access.Actor, req CreateApplicationRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create application requested",
		zap.String("request_id", rid),
		zap.String("user_id", actor.UserID.String()),
		zap.String("job_id", req.JobID),
	)

	if d := access.CanAccessCollection(actor, access.ResourceApplication, access.VerbCreate); !d.Allowed {
		return ApplicationResponse{}, applicationerrors.ErrForbidden
	}

	if err := validateCoverLetter(req.CoverLetter); err != nil {
		return ApplicationResponse{}, err
	}

	target, err := s.activeJob(ctx, req.JobID)
	if err != nil {
		return ApplicationResponse{}, err
	}

	// the applicant always comes from the actor, never from the body
	emp, err := s.profiles.EmployeeByUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, profileerrors.ErrEmployeeNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrEmployeeProfileRequired
		}
		return ApplicationResponse{}, err
	}

	applicant, err := s.repo.FindUserName(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("create application applicant lookup failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, err
	}

	now := s.now().UTC()
	app := &Application{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		JobID:       target.ID,
		CoverLetter: req.CoverLetter,
		SubmittedAt: now,
		Status:      StatusSubmitted,
		IsActive:    true,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create application begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, app); err != nil {
		s.logger.Error("create application persist failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "application", app.ID.String(),
			events.ApplicationSubmittedType, events.NotificationsTopic,
			events.ApplicationSubmittedEvent{
				EventType:      events.ApplicationSubmittedType,
				ApplicationID:  app.ID.String(),
				JobID:          target.ID.String(),
				JobTitle:       target.Title,
				RecruiterEmail: target.RecruiterEmail,
				ApplicantName:  applicant,
				OccurredAt:     now,
			},
		)
		if err != nil {
			return ApplicationResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create application outbox persist failed",
				zap.String("request_id", rid),
				zap.String("application_id", app.ID.String()),
				zap.Error(err),
			)
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create application commit failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("create application success",
		zap.String("request_id", rid),
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", target.ID.String()),
	)
	return toResponse(app), nil
}

func (s *service) List(ctx context.Context, actor access.Actor, q ListApplicationsQuery, p pagination.Params) ([]ApplicationResponse, int64, error) {
	if d := access.CanAccessCollection(actor, access.ResourceApplication, access.VerbRead); !d.Allowed {
		return nil, 0, applicationerrors.ErrForbidden
	}

	visible := access.ApplicationScope(actor)
	if visible.Empty() {
		return []ApplicationResponse{}, 0, nil
	}

	apps, total, err := s.repo.List(ctx, visible, q, p)
	if err != nil {
		s.logger.Error("list applications failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, 0, err
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, toResponse(&apps[i]))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, actor access.Actor, id string) (ApplicationResponse, error) {
	app, err := s.authorize(ctx, actor, id, access.VerbRead)
	if err != nil {
		return ApplicationResponse{}, err
	}
	return toResponse(app), nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id string, req UpdateApplicationRequest) (ApplicationResponse, error) {
	return s.patch(ctx, actor, id, PatchApplicationRequest{JobID: &req.JobID, CoverLetter: req.CoverLetter})
}

func (s *service) Patch(ctx context.Context, actor access.Actor, id string, req PatchApplicationRequest) (ApplicationResponse, error) {
	return s.patch(ctx, actor, id, req)
}

func (s *service) patch(ctx context.Context, actor access.Actor, id string, req PatchApplicationRequest) (ApplicationResponse, error) {
	app, err := s.authorize(ctx, actor, id, access.VerbUpdate)
	if err != nil {
		return ApplicationResponse{}, err
	}

	if req.CoverLetter != nil {
		if err := validateCoverLetter(*req.CoverLetter); err != nil {
			return ApplicationResponse{}, err
		}
		app.CoverLetter = *req.CoverLetter
	}
	if req.JobID != nil {
		target, err := s.activeJob(ctx, *req.JobID)
		if err != nil {
			return ApplicationResponse{}, err
		}
		app.JobID = target.ID
	}

	if err := s.repo.Update(ctx, app); err != nil {
		s.logger.Error("update application failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("application_id", app.ID.String()),
			zap.Error(err),
		)
		return ApplicationResponse{}, mapRepositoryError(err)
	}
	return toResponse(app), nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id string) error {
	app, err := s.authorize(ctx, actor, id, access.VerbDelete)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, app.ID); err != nil {
		s.logger.Error("delete application failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("application_id", app.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete application success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("application_id", app.ID.String()),
	)
	return nil
}

// authorize loads the application from the actor's visible set and applies
// the instance check. Applications outside the visible set are reported as
// not found.
func (s *service) authorize(ctx context.Context, actor access.Actor, id string, verb access.Verb) (*Application, error) {
	if d := access.CanAccessCollection(actor, access.ResourceApplication, verb); !d.Allowed {
		return nil, applicationerrors.ErrForbidden
	}

	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, applicationerrors.ErrApplicationNotFound
	}

	visible := access.ApplicationScope(actor)
	if visible.Empty() {
		return nil, applicationerrors.ErrApplicationNotFound
	}

	app, err := s.repo.FindVisible(ctx, visible, appID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	ownership := access.ApplicationOwnership{
		EmployeeUserID:     app.EmployeeUserID,
		JobRecruiterUserID: app.JobRecruiterUserID,
	}
	if d := access.CanAccessApplication(actor, verb, ownership); !d.Allowed {
		s.logger.Warn("application access denied",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("application_id", app.ID.String()),
			zap.String("verb", verb.String()),
			zap.String("reason", d.Reason),
		)
		return nil, applicationerrors.ErrForbidden
	}
	return app, nil
}

func (s *service) activeJob(ctx context.Context, rawID string) (*JobTarget, error) {
	jobID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, applicationerrors.ErrJobDoesNotExist
	}

	target, err := s.repo.FindJobTarget(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, applicationerrors.ErrJobDoesNotExist
		}
		return nil, err
	}
	if !target.IsActive {
		return nil, applicationerrors.ErrJobNotActive
	}
	return target, nil
}

func validateCoverLetter(text string) error {
	if utf8.RuneCountInString(text) > MaxCoverLetterLength {
		return applicationerrors.ErrCoverLetterTooLong
	}
	return nil
}

func toResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.String(),
		EmployeeID:  a.EmployeeID.String(),
		JobID:       a.JobID.String(),
		CoverLetter: a.CoverLetter,
		SubmittedAt: a.SubmittedAt.UTC().Format(time.RFC3339),
		Status:      a.Status,
		IsActive:    a.IsActive,
	}
}
