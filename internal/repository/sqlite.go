package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteRepository stores link records in an embedded SQLite database,
// file-based or in-memory depending on the DSN.
type SQLiteRepository struct {
	sqlStore
}

// NewSQLiteRepository opens the SQLite database at dsn. A location that
// cannot be opened is reported as ErrBackendUnavailable.
func NewSQLiteRepository(dsn string) (*SQLiteRepository, error) {
	if dsn == "" {
		return nil, ErrConfigMissing
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w: %w", ErrBackendUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w: %w", ErrBackendUnavailable, err)
	}

	return &SQLiteRepository{sqlStore{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		classify: classifySQLite,
	}}, nil
}

func classifySQLite(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStatement, err)
}
