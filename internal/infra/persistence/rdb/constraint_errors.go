package rdb

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isCheckConstraintViolation reports whether the database rejected a row on a CHECK constraint.
// SQLite runs with TranslateError; PostgreSQL sessions from go-lib do not, so the SQLSTATE is matched too.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "sqlstate 23514") // PostgreSQL check_violation
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "sqlstate 23502") // PostgreSQL not_null_violation
}
