package profile

import (
	"context"
	"encoding/json"
	"time"

	profileerrors "job-portal/internal/profile/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RecruiterKeyPrefix = "profiles:recruiter:"
	EmployeeKeyPrefix  = "profiles:employee:"

	profileCacheTTL = 10 * time.Minute
)

func RecruiterKey(userID uuid.UUID) string { return RecruiterKeyPrefix + userID.String() }

func EmployeeKey(userID uuid.UUID) string { return EmployeeKeyPrefix + userID.String() }

// Resolver maps an authenticated user to their role profile.
//
//go:generate mockgen -source=profile_resolver.go -destination=mock/profile_resolver_mock.go -package=mock
type Resolver interface {
	RecruiterByUser(ctx context.Context, userID uuid.UUID) (*Recruiter, error)
	EmployeeByUser(ctx context.Context, userID uuid.UUID) (*Employee, error)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type resolver struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewResolver returns a DB-backed resolver; a non-nil rdb adds a read-through cache.
func NewResolver(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("profile.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.resolver")
	}
	return &resolver{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (r *resolver) RecruiterByUser(ctx context.Context, userID uuid.UUID) (*Recruiter, error) {
	return resolve(ctx, r, RecruiterKey(userID), func() (*Recruiter, error) {
		rec, err := r.repo.FindRecruiterByUserID(ctx, userID)
		if err != nil {
			return nil, mapRepositoryError(err, profileerrors.ErrRecruiterNotFound)
		}
		return rec, nil
	})
}

func (r *resolver) EmployeeByUser(ctx context.Context, userID uuid.UUID) (*Employee, error) {
	return resolve(ctx, r, EmployeeKey(userID), func() (*Employee, error) {
		emp, err := r.repo.FindEmployeeByUserID(ctx, userID)
		if err != nil {
			return nil, mapRepositoryError(err, profileerrors.ErrEmployeeNotFound)
		}
		return emp, nil
	})
}

func (r *resolver) Invalidate(ctx context.Context, userID uuid.UUID) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, RecruiterKey(userID), EmployeeKey(userID)).Err(); err != nil {
		r.logger.Error("failed to invalidate profile cache",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

func resolve[T any](ctx context.Context, r *resolver, key string, load func() (*T, error)) (*T, error) {
	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, key).Result(); err == nil {
			var v T
			if json.Unmarshal([]byte(cached), &v) == nil {
				return &v, nil
			}
		}
	}

	v, err, _ := r.sf.Do(key, func() (any, error) {
		found, err := load()
		if err != nil {
			return nil, err
		}

		if r.rdb != nil {
			if data, err := json.Marshal(found); err == nil {
				if err := r.rdb.Set(ctx, key, data, profileCacheTTL).Err(); err != nil {
					r.logger.Warn("failed to cache profile", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}
