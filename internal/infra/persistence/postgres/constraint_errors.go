package postgres

import (
	"strings"

	domainerrors "market/internal/domain/errors"
	"market/internal/errors"

	"gorm.io/gorm"
)

// Constraint checks accept both GORM's translated errors and the raw driver
// messages, since error translation depends on the dialector.

func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "sqlstate 23503")
}

func isCheckConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// translateWriteError maps a failed INSERT or UPDATE onto the error the
// repository contract promises. conflict is returned for unique violations.
func translateWriteError(err error, conflict error, details string) error {
	switch {
	case isUniqueConstraintViolation(err) && conflict != nil:
		return conflict
	case isForeignKeyConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidation.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
