package user

import (
	"context"
	"fmt"

	"job-portal/internal/access"
	"job-portal/internal/auth"
	"job-portal/internal/bootstrap"
	"job-portal/internal/shared/contextutil"
	"job-portal/internal/shared/pagination"
	usererrors "job-portal/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, actor access.Actor, q ListUsersQuery, p pagination.Params) ([]auth.UserResponse, int64, error)
	GetByID(ctx context.Context, actor access.Actor, id string) (auth.UserResponse, error)
	SetStatus(ctx context.Context, actor access.Actor, id string, isActive bool) (auth.UserResponse, error)
	ForceResetPassword(ctx context.Context, actor access.Actor, id, newPassword string) error
}

type service struct {
	repo   Repository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewService(repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, audit: audit, logger: l}
}

func (s *service) gate(actor access.Actor, verb access.Verb) error {
	if d := access.CanAccessCollection(actor, access.ResourceUser, verb); !d.Allowed {
		return usererrors.ErrForbidden
	}
	return nil
}

func (s *service) List(ctx context.Context, actor access.Actor, q ListUsersQuery, p pagination.Params) ([]auth.UserResponse, int64, error) {
	if err := s.gate(actor, access.VerbRead); err != nil {
		return nil, 0, err
	}

	users, total, err := s.repo.List(ctx, q, p)
	if err != nil {
		s.logger.Error("list users failed", zap.String("request_id", contextutil.GetRequestID(ctx)), zap.Error(err))
		return nil, 0, err
	}

	resp := make([]auth.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, auth.ToUserResponse(&users[i]))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, actor access.Actor, id string) (auth.UserResponse, error) {
	if err := s.gate(actor, access.VerbRead); err != nil {
		return auth.UserResponse{}, err
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return auth.ToUserResponse(u), nil
}

// SetStatus activates or deactivates an account. Accounts are never deleted.
func (s *service) SetStatus(ctx context.Context, actor access.Actor, id string, isActive bool) (auth.UserResponse, error) {
	if err := s.gate(actor, access.VerbUpdate); err != nil {
		return auth.UserResponse{}, err
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return auth.UserResponse{}, err
	}
	if !isActive && u.ID == actor.UserID {
		return auth.UserResponse{}, usererrors.ErrCannotDeactivateSelf
	}

	if u.IsActive != isActive {
		if err := s.repo.UpdateStatus(ctx, u.ID, isActive); err != nil {
			s.logger.Error("update user status failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("user_id", u.ID.String()),
				zap.Error(err),
			)
			return auth.UserResponse{}, mapRepositoryError(err)
		}
		u.IsActive = isActive

		action := "USER_ACTIVATED"
		if !isActive {
			action = "USER_DEACTIVATED"
		}
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  action,
			ActorID: actor.UserID.String(),
			Message: fmt.Sprintf("user %s is_active set to %t", u.Email, isActive),
			Meta:    map[string]any{"user_id": u.ID.String()},
		})
	}

	return auth.ToUserResponse(u), nil
}

func (s *service) ForceResetPassword(ctx context.Context, actor access.Actor, id, newPassword string) error {
	if err := s.gate(actor, access.VerbUpdate); err != nil {
		return err
	}
	if !auth.ValidPassword(newPassword) {
		return usererrors.ErrWeakPassword
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, u.ID, string(hashed)); err != nil {
		return mapRepositoryError(err)
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "USER_PASSWORD_RESET",
		ActorID: actor.UserID.String(),
		Message: "password reset by administrator",
		Meta:    map[string]any{"user_id": u.ID.String()},
	})
	return nil
}

func (s *service) find(ctx context.Context, id string) (*auth.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, usererrors.ErrUserNotFound
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return u, nil
}
