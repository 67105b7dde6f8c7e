package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Onebeld/linkstore/internal/repository"
)

func setupTestService(t *testing.T) *LinkService {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "links.db")

	// The store performs no schema creation, so the test owns the DDL.
	bootstrap, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err, "failed to open test database")
	_, err = bootstrap.Exec(`CREATE TABLE links (user_id INTEGER NOT NULL, link TEXT NOT NULL)`)
	require.NoError(t, err, "failed to create links table")
	require.NoError(t, bootstrap.Close())

	repo, err := repository.NewSQLiteRepository(dsn)
	require.NoError(t, err, "failed to open repository")
	t.Cleanup(func() { repo.Close() })

	return NewLinkService(repo, zap.NewNop())
}

func TestSaveLinkRejectsNegativeUserID(t *testing.T) {
	svc := setupTestService(t)

	err := svc.SaveLink(context.Background(), -1, "http://x.com")
	assert.ErrorIs(t, err, ErrNegativeUserID)
}

func TestServiceRoundTrip(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveLink(ctx, 42, "http://x.com"))
	require.NoError(t, svc.SaveLink(ctx, 42, "http://y.com"))
	require.NoError(t, svc.SaveLink(ctx, 7, "http://x.com"))

	links, err := svc.UserLinks(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	all, err := svc.AllLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	has, err := svc.HasLink(ctx, 42, "http://y.com")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, svc.DeleteLinks(ctx, 42, []string{"http://y.com"}))

	has, err = svc.HasLink(ctx, 42, "http://y.com")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, svc.ClearLinks(ctx, 42))

	links, err = svc.UserLinks(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, links)

	links, err = svc.UserLinks(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestGuardsRejectNegativeUserID(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.UserLinks(ctx, -5)
	assert.ErrorIs(t, err, ErrNegativeUserID)

	_, err = svc.HasLink(ctx, -5, "http://x.com")
	assert.ErrorIs(t, err, ErrNegativeUserID)

	assert.ErrorIs(t, svc.ClearLinks(ctx, -5), ErrNegativeUserID)
	assert.ErrorIs(t, svc.DeleteLinks(ctx, -5, []string{"http://x.com"}), ErrNegativeUserID)
}
