package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aldenhart/biztime/internal/platform/httpx"
)

// PostgreSQL SQLSTATE codes surfaced by constraint failures.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// Translate converts pgx/pgconn failures into the httpx error taxonomy.
// Errors outside the taxonomy are returned unchanged and surface as 500.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return httpx.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return httpx.ErrDuplicate
		case codeForeignKeyViolation:
			return httpx.ErrInvalidReference
		case codeCheckViolation, codeNotNullViolation:
			return httpx.ErrValidation
		}
	}
	return err
}
