package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"job-portal/internal/access"
	autherrors "job-portal/internal/auth/errors"
	"job-portal/internal/auth/token"
	"job-portal/internal/events"
	"job-portal/internal/messaging/kafka"
	"job-portal/internal/profile"
	"job-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (UserResponse, error)
	CreateSuperuser(ctx context.Context, req CreateSuperuserRequest) (UserResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	profiles profile.Repository
	outbox   kafka.OutboxRepository
	tokens   *token.Manager
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	profiles profile.Repository,
	outboxRepo kafka.OutboxRepository,
	tokens *token.Manager,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		profiles: profiles,
		outbox:   outboxRepo,
		tokens:   tokens,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := NormalizeEmail(req.Email)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", email),
		zap.String("role", req.Role),
	)

	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}
	if !ValidPassword(req.Password) {
		return AuthResponse{}, autherrors.ErrWeakPassword
	}

	role, err := access.ParseRole(req.Role)
	if err != nil || role == access.RoleSuperadmin {
		return AuthResponse{}, autherrors.ErrRoleNotAllowed
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("register email lookup failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}
	if exists {
		return AuthResponse{}, autherrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	now := s.now().UTC()
	user := &User{
		ID:         uuid.New(),
		Email:      email,
		Name:       req.Name,
		Role:       role.String(),
		Password:   string(hashed),
		IsActive:   true,
		DateJoined: now,
		LastLogin:  &now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
		s.logger.Error("register persist user failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	profiles := s.profiles.WithTx(tx)
	switch role {
	case access.RoleRecruiter:
		err = profiles.CreateRecruiter(ctx, &profile.Recruiter{ID: uuid.New(), UserID: user.ID})
	case access.RoleEmployee:
		err = profiles.CreateEmployee(ctx, &profile.Employee{ID: uuid.New(), UserID: user.ID})
	}
	if err != nil {
		s.logger.Error("register persist profile failed",
			zap.String("request_id", rid),
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return AuthResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, "user", user.ID.String(),
			events.UserRegisteredType, events.NotificationsTopic,
			events.UserRegisteredEvent{
				EventType:  events.UserRegisteredType,
				UserID:     user.ID.String(),
				Email:      user.Email,
				Name:       user.Name,
				Role:       user.Role,
				OccurredAt: now,
			},
		)
		if err != nil {
			return AuthResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("register outbox persist failed",
				zap.String("request_id", rid),
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return s.issue(user)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login user lookup failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Info("login rejected for inactive user",
			zap.String("request_id", rid),
			zap.String("user_id", user.ID.String()),
		)
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Error("login update last_login failed", zap.String("request_id", rid), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}
	user.LastLogin = &now

	return s.issue(user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.TypeRefresh)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return AuthResponse{}, err
	}
	if !user.IsActive {
		return AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	return s.issue(user)
}

func (s *service) GetMe(ctx context.Context, userID uuid.UUID) (UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return ToUserResponse(user), nil
}

// CreateSuperuser provisions a superadmin account. It has no profile.
func (s *service) CreateSuperuser(ctx context.Context, req CreateSuperuserRequest) (UserResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" {
		return UserResponse{}, autherrors.ErrEmailRequired
	}
	if !ValidPassword(req.Password) {
		return UserResponse{}, autherrors.ErrWeakPassword
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, autherrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	user := &User{
		ID:          uuid.New(),
		Email:       email,
		Name:        req.Name,
		Role:        access.RoleSuperadmin.String(),
		Password:    string(hashed),
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
		DateJoined:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("superuser created", zap.String("user_id", user.ID.String()))
	return ToUserResponse(user), nil
}

func (s *service) issue(user *User) (AuthResponse, error) {
	pair, err := s.tokens.Issue(token.Subject{
		UserID:      user.ID,
		Role:        user.Role,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
	})
	if err != nil {
		s.logger.Error("issue token pair failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		return AuthResponse{}, err
	}
	return AuthResponse{Token: pair, UserData: ToUserResponse(user)}, nil
}

func ToUserResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined.UTC().Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		ll := u.LastLogin.UTC().Format(time.RFC3339)
		resp.LastLogin = &ll
	}
	return resp
}
