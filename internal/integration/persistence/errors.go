// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes raised by constraints.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// isUniqueViolation reports whether err was raised by a unique constraint.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return hasSQLState(err, pgUniqueViolation)
}

// isExclusionViolation reports whether err was raised by an exclusion constraint.
func isExclusionViolation(err error) bool {
	return hasSQLState(err, pgExclusionViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
