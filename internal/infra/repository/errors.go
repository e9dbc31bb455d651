package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
)

const pgUniqueViolation = "23505"

// translate maps driver errors onto business errors. notFound and duplicate
// may be nil when the call cannot produce that case.
func translate(err error, notFound, duplicate func() error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound()
	}
	if duplicate != nil && isUniqueViolation(err) {
		return duplicate()
	}
	return httperr.Store(err)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
