package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Onebeld/linkstore/internal/models"
)

var (
	// ErrConfigMissing is returned when no database DSN was supplied.
	ErrConfigMissing = errors.New("database DSN is not configured")
	// ErrBackendUnavailable is returned when the backend cannot be reached.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrStatement is returned when the backend rejected a statement.
	ErrStatement = errors.New("statement rejected")
)

// PartialDeleteError reports a DeleteLinks batch that stopped partway.
// Items deleted before the failure stay deleted; Unconfirmed holds the
// items that were not confirmed deleted, in input order.
type PartialDeleteError struct {
	UserID      int64
	Unconfirmed []string
	Err         error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("delete links for user %d: %d item(s) not confirmed deleted: %v",
		e.UserID, len(e.Unconfirmed), e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}

// LinkRepository provides create/read/delete access to link records,
// scoped by user. Implementations do no logging and no retries; every
// failure is surfaced to the caller.
type LinkRepository interface {
	// AddLink appends one record for the user. Duplicates are allowed
	// and create distinct records.
	AddLink(ctx context.Context, userID int64, link string) error

	// UserLinks returns all records for the user. A non-nil link narrows
	// the result to records whose link text equals it exactly. An empty
	// result is not an error.
	UserLinks(ctx context.Context, userID int64, link *string) ([]models.Link, error)

	// AllLinks returns every record across all users.
	AllLinks(ctx context.Context) ([]models.Link, error)

	// LinkExists reports whether at least one record matches (userID, link).
	LinkExists(ctx context.Context, userID int64, link string) (bool, error)

	// ClearLinks deletes every record for the user. Clearing a user with
	// no records is a no-op.
	ClearLinks(ctx context.Context, userID int64) error

	// DeleteLinks deletes the records matching each (userID, link) pair,
	// one statement per item with no wrapping transaction. On failure it
	// returns a *PartialDeleteError; earlier deletions stay committed.
	DeleteLinks(ctx context.Context, userID int64, links []string) error

	Ping(ctx context.Context) error
	Close() error
}

// New selects a backend from the DSN: postgres:// and postgresql:// URLs
// open a PostgreSQL repository, anything else is treated as a SQLite
// database location.
func New(dsn string) (LinkRepository, error) {
	if dsn == "" {
		return nil, ErrConfigMissing
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresRepository(dsn)
	}
	return NewSQLiteRepository(dsn)
}
