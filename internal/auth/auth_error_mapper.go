package auth

import (
	"errors"

	autherrors "job-portal/internal/auth/errors"
	profileerrors "job-portal/internal/profile/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return autherrors.ErrEmailAlreadyExists
		case "uq_recruiters_user", "uq_employees_user":
			return profileerrors.ErrProfileAlreadyExists
		}
	}

	return err
}
