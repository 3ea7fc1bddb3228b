package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"bootcamp/internal/domain"
)

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

// translate maps a driver error to the domain. notFound is returned for
// sql.ErrNoRows and may be nil for statements that never produce it.
func translate(op string, err error, notFound *domain.Error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, sql.ErrNoRows):
		return notFound
	case isForeignKeyViolation(err):
		return &domain.Error{
			Kind:    domain.KindValidation,
			Code:    domain.ErrInvalidInput.Code,
			Message: domain.ErrInvalidInput.Message,
			Detail:  "unknown participant or event",
			Err:     err,
		}
	default:
		return domain.Storage(op, err)
	}
}
