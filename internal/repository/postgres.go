package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresRepository stores link records in a PostgreSQL database
// reached over the network.
type PostgresRepository struct {
	sqlStore
}

// NewPostgresRepository connects to the PostgreSQL database at dsn.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	if dsn == "" {
		return nil, ErrConfigMissing
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w: %w", ErrBackendUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres database: %w: %w", ErrBackendUnavailable, err)
	}

	return &PostgresRepository{sqlStore{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		classify: classifyPostgres,
	}}, nil
}

func classifyPostgres(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStatement, err)
}
