package postgres

import (
	"strings"

	"signup/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE not_null_violation.
const pgCodeNotNullViolation = "23502"

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgCodeNotNullViolation
	}

	// Drivers that do not surface *pgconn.PgError still put the code or the
	// server message into the error text.
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, pgCodeNotNullViolation) || strings.Contains(msg, "violates not-null constraint")
}
