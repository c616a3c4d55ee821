package user

import (
	"context"
	"strings"

	"job-portal/internal/auth"
	"job-portal/internal/scope"
	"job-portal/internal/shared/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, q ListUsersQuery, p pagination.Params) ([]auth.User, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func filterUsers(q ListUsersQuery) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(q.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			db = db.Where("(LOWER(users.email) LIKE ? OR LOWER(users.name) LIKE ?)", like, like)
		}
		if q.Role != "" {
			db = db.Where("users.role = ?", q.Role)
		}
		if q.IsActive != nil {
			db = db.Where("users.is_active = ?", *q.IsActive)
		}
		return db
	}
}

func (r *repository) List(ctx context.Context, q ListUsersQuery, p pagination.Params) ([]auth.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&auth.User{}).
		Scopes(filterUsers(q)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]auth.User, 0, p.PageSize)
	err := r.db.WithContext(ctx).Model(&auth.User{}).
		Scopes(filterUsers(q), scope.Paginate(p)).
		Order("users.email").
		Find(&users).Error
	return users, total, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	var u auth.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	return r.update(ctx, id, "is_active", isActive)
}

func (r *repository) UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error {
	return r.update(ctx, id, "password", hashed)
}

func (r *repository) update(ctx context.Context, id uuid.UUID, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&auth.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
