package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by this package.
var (
	// ErrMissingDSN means DATABASE_URL was empty. Connecting without a DSN is
	// a deployment mistake, so Open fails immediately instead of retrying.
	ErrMissingDSN = errors.New("postgres: DATABASE_URL is not set")

	// ErrClosed is returned by operations on a client after Close.
	ErrClosed = errors.New("postgres: client is closed")
)

// PostgreSQL error codes this package cares about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// e.g. a duplicate email, username, slug, or (user_id, post_id) reaction.
func IsUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign-key violation,
// e.g. inserting a comment for a post that no longer exists.
func IsForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
