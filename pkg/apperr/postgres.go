package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes we map into the closed taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPostgres funnels a storage-layer error into the closed taxonomy.
// Errors already classified pass through unchanged. Classification uses the
// structured SQLSTATE code, never the error text. Anything unrecognized
// becomes Internal with the caller-supplied fallback message.
func FromPostgres(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound("record not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if fields := conflictFields(pgErr); fields != "" {
				return Conflict(fmt.Sprintf("a record with this %s already exists", fields))
			}
			return Conflict("duplicate record")
		case pgForeignKeyViolation:
			return BadRequest("referential integrity violation")
		}
	}

	return Internal(fallback, err)
}

// conflictFields extracts the violating column set from a unique-violation
// error. Postgres formats the detail as `Key (col_a, col_b)=(...) already
// exists.`; the constraint name is the fallback when the detail is absent.
func conflictFields(pgErr *pgconn.PgError) string {
	detail := pgErr.Detail
	if open := strings.Index(detail, "Key ("); open >= 0 {
		rest := detail[open+len("Key ("):]
		if close := strings.Index(rest, ")"); close > 0 {
			return rest[:close]
		}
	}
	return pgErr.ConstraintName
}
