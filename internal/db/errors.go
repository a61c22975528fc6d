package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

// Store operations classify storage-engine errors into this small set at
// the point they occur. Callers match with errors.Is and never see raw
// driver error text.
var (
	// ErrNotFound reports that no record matched. It is a normal outcome,
	// not a fault, and is never logged as a failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSleepLog reports a second log for a (user, entry date)
	// pair that already has one. The message is part of the API contract.
	ErrDuplicateSleepLog = errors.New("a sleep log for this user and date already exists")

	// ErrDuplicateUser reports a username collision.
	ErrDuplicateUser = errors.New("a user with this username already exists")

	// ErrStorage is the opaque classification for any other persistence
	// fault. The underlying cause is logged with input context, not
	// carried in the error.
	ErrStorage = errors.New("storage failure")
)

// isUniqueViolation checks whether err is a uniqueness-constraint
// violation, either as translated by GORM or as a raw PostgreSQL error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
