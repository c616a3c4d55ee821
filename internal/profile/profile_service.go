package profile

import (
	"context"
	"time"

	"job-portal/internal/access"
	profileerrors "job-portal/internal/profile/errors"
	"job-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, actor access.Actor) (ProfileResponse, error)
	UpdateMe(ctx context.Context, actor access.Actor, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	repo     Repository
	resolver Resolver
	logger   *zap.Logger
}

func NewService(repo Repository, resolver Resolver, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, resolver: resolver, logger: l}
}

func (s *service) GetMe(ctx context.Context, actor access.Actor) (ProfileResponse, error) {
	switch actor.Role {
	case access.RoleRecruiter:
		rec, err := s.resolver.RecruiterByUser(ctx, actor.UserID)
		if err != nil {
			return ProfileResponse{}, err
		}
		return recruiterResponse(*rec), nil
	case access.RoleEmployee:
		emp, err := s.resolver.EmployeeByUser(ctx, actor.UserID)
		if err != nil {
			return ProfileResponse{}, err
		}
		return employeeResponse(*emp), nil
	default:
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}
}

func (s *service) UpdateMe(ctx context.Context, actor access.Actor, req UpdateProfileRequest) (ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update profile requested",
		zap.String("request_id", rid),
		zap.String("user_id", actor.UserID.String()),
		zap.String("role", actor.Role.String()),
	)

	var resp ProfileResponse
	switch actor.Role {
	case access.RoleRecruiter:
		rec, err := s.repo.FindRecruiterByUserID(ctx, actor.UserID)
		if err != nil {
			return ProfileResponse{}, mapRepositoryError(err, profileerrors.ErrRecruiterNotFound)
		}
		if req.CompanyName != nil {
			rec.CompanyName = *req.CompanyName
		}
		if req.Website != nil {
			rec.Website = *req.Website
		}
		rec.UpdatedAt = time.Now().UTC()
		if err := s.repo.UpdateRecruiter(ctx, rec); err != nil {
			s.logger.Error("update recruiter profile failed", zap.String("request_id", rid), zap.Error(err))
			return ProfileResponse{}, mapRepositoryError(err, profileerrors.ErrRecruiterNotFound)
		}
		resp = recruiterResponse(*rec)
	case access.RoleEmployee:
		emp, err := s.repo.FindEmployeeByUserID(ctx, actor.UserID)
		if err != nil {
			return ProfileResponse{}, mapRepositoryError(err, profileerrors.ErrEmployeeNotFound)
		}
		if req.PhoneNumber != nil {
			emp.PhoneNumber = *req.PhoneNumber
		}
		if req.Location != nil {
			emp.Location = *req.Location
		}
		emp.UpdatedAt = time.Now().UTC()
		if err := s.repo.UpdateEmployee(ctx, emp); err != nil {
			s.logger.Error("update employee profile failed", zap.String("request_id", rid), zap.Error(err))
			return ProfileResponse{}, mapRepositoryError(err, profileerrors.ErrEmployeeNotFound)
		}
		resp = employeeResponse(*emp)
	default:
		return ProfileResponse{}, profileerrors.ErrProfileNotFound
	}

	s.resolver.Invalidate(ctx, actor.UserID)
	s.logger.Info("update profile success", zap.String("request_id", rid), zap.String("profile_id", resp.ID))
	return resp, nil
}

func recruiterResponse(r Recruiter) ProfileResponse {
	return ProfileResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Role:        access.RoleRecruiter.String(),
		CompanyName: r.CompanyName,
		Website:     r.Website,
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

func employeeResponse(e Employee) ProfileResponse {
	return ProfileResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Role:        access.RoleEmployee.String(),
		PhoneNumber: e.PhoneNumber,
		Location:    e.Location,
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}
