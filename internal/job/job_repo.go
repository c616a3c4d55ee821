package job

import (
	"context"
	"database/sql"
	"strings"

	"job-portal/internal/access"
	"job-portal/internal/scope"
	"job-portal/internal/shared/connection"
	"job-portal/internal/shared/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, job *Job) error
	List(ctx context.Context, visible access.Scope, q ListJobsQuery, p pagination.Params) ([]Job, int64, error)
	FindVisible(ctx context.Context, visible access.Scope, id uuid.UUID) (*Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, job *Job) error {
	return r.conn(ctx).Omit("Recruiter").Create(job).Error
}

func filterJobs(q ListJobsQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(q.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			db = db.Where("(LOWER(jobs.title) LIKE ? OR LOWER(jobs.location) LIKE ?)", like, like)
		}
		if q.JobType != "" {
			db = db.Where("jobs.job_type = ?", q.JobType)
		}
		if q.IsActive != nil {
			db = db.Where("jobs.is_active = ?", *q.IsActive)
		}
		return db
	}
}

func (r *repository) List(ctx context.Context, visible access.Scope, q ListJobsQuery, p pagination.Params) ([]Job, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&Job{}).
		Scopes(scope.Jobs(visible), filterJobs(q)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	jobs := make([]Job, 0, p.PageSize)
	err := r.conn(ctx).Model(&Job{}).
		Scopes(scope.Jobs(visible), filterJobs(q), scope.Paginate(p)).
		Order("jobs.posted_date DESC, jobs.id").
		Find(&jobs).Error
	return jobs, total, err
}

func (r *repository) FindVisible(ctx context.Context, visible access.Scope, id uuid.UUID) (*Job, error) {
	var job Job
	err := r.conn(ctx).Model(&Job{}).
		Select("jobs.*, recruiters.user_id AS recruiter_user_id").
		Joins("JOIN recruiters ON recruiters.id = jobs.recruiter_id").
		Scopes(scope.Jobs(visible)).
		Where("jobs.id = ?", id).
		Take(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) Update(ctx context.Context, job *Job) error {
	return r.conn(ctx).Omit("Recruiter").Save(job).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
