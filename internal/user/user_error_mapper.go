package user

import (
	"errors"
	"strings"

	usererrors "go-orgadmin/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usererrors.ErrEmailExists
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_users_email" {
			return usererrors.ErrEmailExists
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_users_email") {
		return usererrors.ErrEmailExists
	}

	return err
}
