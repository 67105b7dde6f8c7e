package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/Onebeld/linkstore/internal/models"
)

const linksTable = "links"

// sqlStore implements LinkRepository over a database/sql backend. The
// placeholder format and the error classifier are the only parts that
// differ between drivers. The links table is assumed to pre-exist; the
// store performs no schema creation.
type sqlStore struct {
	db       *sqlx.DB
	sb       squirrel.StatementBuilderType
	classify func(error) error
}

func (s *sqlStore) AddLink(ctx context.Context, userID int64, link string) error {
	query, args, err := s.sb.
		Insert(linksTable).
		Columns("user_id", "link").
		Values(userID, link).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert link for user %d: %w", userID, s.classify(err))
	}
	return nil
}

func (s *sqlStore) UserLinks(ctx context.Context, userID int64, link *string) ([]models.Link, error) {
	builder := s.sb.
		Select("user_id", "link").
		From(linksTable).
		Where(squirrel.Eq{"user_id": userID})
	if link != nil {
		builder = builder.Where(squirrel.Eq{"link": *link})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	links, err := s.selectLinks(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("select links for user %d: %w", userID, err)
	}
	return links, nil
}

func (s *sqlStore) AllLinks(ctx context.Context) ([]models.Link, error) {
	query, args, err := s.sb.
		Select("user_id", "link").
		From(linksTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	links, err := s.selectLinks(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("select all links: %w", err)
	}
	return links, nil
}

func (s *sqlStore) LinkExists(ctx context.Context, userID int64, link string) (bool, error) {
	links, err := s.UserLinks(ctx, userID, &link)
	if err != nil {
		return false, err
	}
	return len(links) > 0, nil
}

func (s *sqlStore) ClearLinks(ctx context.Context, userID int64) error {
	query, args, err := s.sb.
		Delete(linksTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear links for user %d: %w", userID, s.classify(err))
	}
	return nil
}

func (s *sqlStore) DeleteLinks(ctx context.Context, userID int64, links []string) error {
	// One statement per item, no wrapping transaction: a failure leaves
	// earlier deletions committed and the rest of the batch untouched.
	for i, link := range links {
		query, args, err := s.sb.
			Delete(linksTable).
			Where(squirrel.Eq{"user_id": userID, "link": link}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return &PartialDeleteError{
				UserID:      userID,
				Unconfirmed: links[i:],
				Err:         s.classify(err),
			}
		}
	}
	return nil
}

func (s *sqlStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping backend: %w: %w", ErrBackendUnavailable, err)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) selectLinks(ctx context.Context, query string, args []interface{}) ([]models.Link, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify(err)
	}
	defer rows.Close()

	links := make([]models.Link, 0)
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, s.classify(err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify(err)
	}
	return links, nil
}

// linkRow is the single-row source scanLink reads from. *sqlx.Rows
// satisfies it.
type linkRow interface {
	StructScan(dest interface{}) error
}

// scanLink maps one backend row to a link record.
func scanLink(row linkRow) (models.Link, error) {
	var link models.Link
	if err := row.StructScan(&link); err != nil {
		return models.Link{}, fmt.Errorf("scan link row: %w", err)
	}
	return link, nil
}
