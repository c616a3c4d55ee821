package application

import (
	"context"
	"database/sql"

	"job-portal/internal/access"
	"job-portal/internal/scope"
	"job-portal/internal/shared/connection"
	"job-portal/internal/shared/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, app *Application) error
	List(ctx context.Context, visible access.Scope, q ListApplicationsQuery, p pagination.Params) ([]Application, int64, error)
	FindVisible(ctx context.Context, visible access.Scope, id uuid.UUID) (*Application, error)
	FindJobTarget(ctx context.Context, jobID uuid.UUID) (*JobTarget, error)
	FindUserName(ctx context.Context, userID uuid.UUID) (string, error)
	Update(ctx context.Context, app *Application) error
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

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.conn(ctx).Omit("Employee", "Job").Create(app).Error
}

func filterApplications(q ListApplicationsQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Status != "" {
			db = db.Where("applications.status = ?", q.Status)
		}
		if q.JobID != "" {
			db = db.Where("applications.job_id = ?", q.JobID)
		}
		return db
	}
}

func (r *repository) List(ctx context.Context, visible access.Scope, q ListApplicationsQuery, p pagination.Params) ([]Application, int64, error) {
	var total int64
	if err := r.conn(ctx).Model(&Application{}).
		Scopes(scope.Applications(visible), filterApplications(q)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]Application, 0, p.PageSize)
	err := r.conn(ctx).Model(&Application{}).
		Scopes(scope.Applications(visible), filterApplications(q), scope.Paginate(p)).
		Order("applications.submitted_at DESC, applications.id").
		Find(&apps).Error
	return apps, total, err
}

func (r *repository) FindVisible(ctx context.Context, visible access.Scope, id uuid.UUID) (*Application, error) {
	var app Application
	err := r.conn(ctx).Model(&Application{}).
		Select("applications.*, employees.user_id AS employee_user_id, recruiters.user_id AS job_recruiter_user_id").
		Joins("JOIN employees ON employees.id = applications.employee_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN recruiters ON recruiters.id = jobs.recruiter_id").
		Scopes(scope.Applications(visible)).
		Where("applications.id = ?", id).
		Take(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) FindJobTarget(ctx context.Context, jobID uuid.UUID) (*JobTarget, error) {
	var target JobTarget
	res := r.conn(ctx).Raw(`
		SELECT jobs.id, jobs.title, jobs.is_active, users.email AS recruiter_email
		FROM jobs
		JOIN recruiters ON recruiters.id = jobs.recruiter_id
		JOIN users ON users.id = recruiters.user_id
		WHERE jobs.id = ?`, jobID).Scan(&target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &target, nil
}

func (r *repository) FindUserName(ctx context.Context, userID uuid.UUID) (string, error) {
	var name string
	res := r.conn(ctx).Raw("SELECT name FROM users WHERE id = ?", userID).Scan(&name)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}
	return name, nil
}

func (r *repository) Update(ctx context.Context, app *Application) error {
	return r.conn(ctx).Omit("Employee", "Job").Save(app).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.conn(ctx).Delete(&Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
