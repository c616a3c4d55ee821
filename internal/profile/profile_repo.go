package profile

import (
	"context"
	"database/sql"

	"job-portal/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRecruiter(ctx context.Context, r *Recruiter) error
	CreateEmployee(ctx context.Context, e *Employee) error
	FindRecruiterByUserID(ctx context.Context, userID uuid.UUID) (*Recruiter, error)
	FindEmployeeByUserID(ctx context.Context, userID uuid.UUID) (*Employee, error)
	UpdateRecruiter(ctx context.Context, r *Recruiter) error
	UpdateEmployee(ctx context.Context, e *Employee) error
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

func (r *repository) CreateRecruiter(ctx context.Context, rec *Recruiter) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) CreateEmployee(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindRecruiterByUserID(ctx context.Context, userID uuid.UUID) (*Recruiter, error) {
	var rec Recruiter
	err := r.conn(ctx).Where("user_id = ?", userID).First(&rec).Error
	return &rec, err
}

func (r *repository) FindEmployeeByUserID(ctx context.Context, userID uuid.UUID) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).Where("user_id = ?", userID).First(&e).Error
	return &e, err
}

func (r *repository) UpdateRecruiter(ctx context.Context, rec *Recruiter) error {
	return r.conn(ctx).Save(rec).Error
}

func (r *repository) UpdateEmployee(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Save(e).Error
}
