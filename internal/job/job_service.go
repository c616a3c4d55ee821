package job

import (
	"context"
	"errors"
	"time"

	"job-portal/internal/access"
	joberrors "job-portal/internal/job/errors"
	"job-portal/internal/profile"
	profileerrors "job-portal/internal/profile/errors"
	"job-portal/internal/shared/contextutil"
	"job-portal/internal/shared/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor access.Actor, req CreateJobRequest) (JobResponse, error)
	List(ctx context.Context, actor access.Actor, q ListJobsQuery, p pagination.Params) ([]JobResponse, int64, error)
	GetByID(ctx context.Context, actor access.Actor, id string) (JobResponse, error)
	Update(ctx context.Context, actor access.Actor, id string, req UpdateJobRequest) (JobResponse, error)
	Patch(ctx context.Context, actor access.Actor, id string, req PatchJobRequest) (JobResponse, error)
	Delete(ctx context.Context, actor access.Actor, id string) error
}

type service struct {
	repo     Repository
	profiles profile.Resolver
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, profiles profile.Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{repo: repo, profiles: profiles, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, actor access.Actor, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.String("user_id", actor.UserID.String()),
	)

	if d := access.CanAccessCollection(actor, access.ResourceJob, access.VerbCreate); !d.Allowed {
		return JobResponse{}, joberrors.ErrForbidden
	}

	// the owner always comes from the actor, never from the body
	rec, err := s.profiles.RecruiterByUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, profileerrors.ErrRecruiterNotFound) {
			return JobResponse{}, joberrors.ErrRecruiterProfileRequired
		}
		return JobResponse{}, err
	}

	job := &Job{
		ID:          uuid.New(),
		RecruiterID: rec.ID,
		JobType:     TypeFullTime,
		PostedDate:  s.now().UTC(),
		IsActive:    true,
	}
	if err := applyFull(job, req); err != nil {
		return JobResponse{}, err
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error("create job persist failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.String("job_id", job.ID.String()),
		zap.String("recruiter_id", rec.ID.String()),
	)
	return toResponse(job), nil
}

func (s *service) List(ctx context.Context, actor access.Actor, q ListJobsQuery, p pagination.Params) ([]JobResponse, int64, error) {
	if d := access.CanAccessCollection(actor, access.ResourceJob, access.VerbRead); !d.Allowed {
		return nil, 0, joberrors.ErrForbidden
	}

	visible := access.JobScope(actor)
	if visible.Empty() {
		return []JobResponse{}, 0, nil
	}

	jobs, total, err := s.repo.List(ctx, visible, q, p)
	if err != nil {
		s.logger.Error("list jobs failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, 0, err
	}

	resp := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, toResponse(&jobs[i]))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, actor access.Actor, id string) (JobResponse, error) {
	job, err := s.authorize(ctx, actor, id, access.VerbRead)
	if err != nil {
		return JobResponse{}, err
	}
	return toResponse(job), nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id string, req UpdateJobRequest) (JobResponse, error) {
	job, err := s.authorize(ctx, actor, id, access.VerbUpdate)
	if err != nil {
		return JobResponse{}, err
	}

	if err := applyFull(job, req); err != nil {
		return JobResponse{}, err
	}
	return s.save(ctx, job)
}

func (s *service) Patch(ctx context.Context, actor access.Actor, id string, req PatchJobRequest) (JobResponse, error) {
	job, err := s.authorize(ctx, actor, id, access.VerbUpdate)
	if err != nil {
		return JobResponse{}, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.Salary != nil {
		if err := setSalary(job, *req.Salary); err != nil {
			return JobResponse{}, err
		}
	}
	if req.ApplicationDeadline != nil {
		if err := setDeadline(job, req.ApplicationDeadline); err != nil {
			return JobResponse{}, err
		}
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	return s.save(ctx, job)
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id string) error {
	job, err := s.authorize(ctx, actor, id, access.VerbDelete)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, job.ID); err != nil {
		s.logger.Error("delete job failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}

	s.logger.Info("delete job success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("job_id", job.ID.String()),
	)
	return nil
}

// authorize loads the job from the actor's visible set and applies the
// instance check. Jobs outside the visible set are reported as not found.
func (s *service) authorize(ctx context.Context, actor access.Actor, id string, verb access.Verb) (*Job, error) {
	if d := access.CanAccessCollection(actor, access.ResourceJob, verb); !d.Allowed {
		return nil, joberrors.ErrForbidden
	}

	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, joberrors.ErrJobNotFound
	}

	visible := access.JobScope(actor)
	if visible.Empty() {
		return nil, joberrors.ErrJobNotFound
	}

	job, err := s.repo.FindVisible(ctx, visible, jobID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if d := access.CanAccessJob(actor, verb, access.JobOwnership{RecruiterUserID: job.RecruiterUserID}); !d.Allowed {
		s.logger.Warn("job access denied",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("job_id", job.ID.String()),
			zap.String("verb", verb.String()),
			zap.String("reason", d.Reason),
		)
		return nil, joberrors.ErrForbidden
	}
	return job, nil
}

func (s *service) save(ctx context.Context, job *Job) (JobResponse, error) {
	if err := s.repo.Update(ctx, job); err != nil {
		s.logger.Error("update job failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("job_id", job.ID.String()),
			zap.Error(err),
		)
		return JobResponse{}, mapRepositoryError(err)
	}
	return toResponse(job), nil
}

func applyFull(job *Job, req CreateJobRequest) error {
	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.Salary != nil {
		if err := setSalary(job, *req.Salary); err != nil {
			return err
		}
	}
	if err := setDeadline(job, req.ApplicationDeadline); err != nil {
		return err
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	return nil
}

// maxSalary is the largest value numeric(10,2) can hold.
var maxSalary = decimal.New(9999999999, -2)

func setSalary(job *Job, salary decimal.Decimal) error {
	if salary.IsNegative() {
		return joberrors.ErrNegativeSalary
	}
	if salary.GreaterThan(maxSalary) {
		return joberrors.ErrSalaryTooLarge
	}
	if !salary.Equal(salary.Truncate(2)) {
		return joberrors.ErrSalaryPrecision
	}
	job.Salary = salary.Truncate(2)
	return nil
}

func setDeadline(job *Job, raw *string) error {
	if raw == nil || *raw == "" {
		job.ApplicationDeadline = nil
		return nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return joberrors.ErrInvalidDeadline
	}
	d := datatypes.Date(t)
	job.ApplicationDeadline = &d
	return nil
}

func toResponse(j *Job) JobResponse {
	resp := JobResponse{
		ID:          j.ID.String(),
		RecruiterID: j.RecruiterID.String(),
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		JobType:     j.JobType,
		Salary:      j.Salary.StringFixed(2),
		PostedDate:  j.PostedDate.UTC().Format(time.RFC3339),
		IsActive:    j.IsActive,
	}
	if j.ApplicationDeadline != nil {
		d := time.Time(*j.ApplicationDeadline).Format(dateLayout)
		resp.ApplicationDeadline = &d
	}
	return resp
}
