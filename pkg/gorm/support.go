package gorm

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return err != nil
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure, e.g. inserting a comment whose parent post no longer exists.
// Postgres reports SQLSTATE 23503; the sqlite driver used in tests only
// surfaces a message.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// e.g. subscribing an email address twice. Postgres reports SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
