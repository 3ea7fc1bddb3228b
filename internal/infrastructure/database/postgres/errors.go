package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bootcamp/internal/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == uniqueViolation
}

// translate maps a driver error to the domain. notFound is returned for
// pgx.ErrNoRows and may be nil for statements that never produce it.
func translate(op string, err error, notFound *domain.Error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, pgx.ErrNoRows):
		return notFound
	case pgCode(err) == foreignKeyViolation:
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
