package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"orderprocessing/internal/apperrors"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// NewPersistenceError переводит ошибку драйвера в PersistenceError с понятным сообщением.
func NewPersistenceError(op, query string, err error) error {
	switch {
	case IsPgErrorWithCode(err, pgerrcode.CheckViolation):
		return apperrors.NewPersistenceError(op+": value violates constraint", query, err)
	case IsPgErrorWithCode(err, pgerrcode.ForeignKeyViolation):
		return apperrors.NewPersistenceError(op+": referenced row not found", query, err)
	case IsPgErrorWithCode(err, pgerrcode.SerializationFailure), IsPgErrorWithCode(err, pgerrcode.DeadlockDetected):
		return apperrors.NewPersistenceError(op+": concurrent update", query, err)
	default:
		return apperrors.NewPersistenceError(op, query, err)
	}
}
