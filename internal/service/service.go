package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Onebeld/linkstore/internal/models"
	"github.com/Onebeld/linkstore/internal/repository"
)

var ErrNegativeUserID = errors.New("user id must be non-negative")

// LinkService wraps the link repository with logging and the single
// invariant the data model states: every record belongs to a
// non-negative user id. The repository itself stays silent.
type LinkService struct {
	repo   repository.LinkRepository
	logger *zap.Logger
}

func NewLinkService(repo repository.LinkRepository, logger *zap.Logger) *LinkService {
	return &LinkService{repo: repo, logger: logger}
}

func (s *LinkService) SaveLink(ctx context.Context, userID int64, link string) error {
	if userID < 0 {
		s.logger.Warn("Rejected link save for negative user id", zap.Int64("user_id", userID))
		return ErrNegativeUserID
	}

	if err := s.repo.AddLink(ctx, userID, link); err != nil {
		s.logger.Error("Failed to save link",
			zap.Int64("user_id", userID),
			zap.String("link", link),
			zap.Error(err))
		return err
	}
	return nil
}

// UserLinks returns every link stored for the user.
func (s *LinkService) UserLinks(ctx context.Context, userID int64) ([]models.Link, error) {
	if userID < 0 {
		return nil, ErrNegativeUserID
	}

	links, err := s.repo.UserLinks(ctx, userID, nil)
	if err != nil {
		s.logger.Error("Failed to load user links", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return links, nil
}

// AllLinks returns every link across all users.
func (s *LinkService) AllLinks(ctx context.Context) ([]models.Link, error) {
	links, err := s.repo.AllLinks(ctx)
	if err != nil {
		s.logger.Error("Failed to load all links", zap.Error(err))
		return nil, err
	}
	return links, nil
}

// HasLink reports whether the user has stored the exact link text.
func (s *LinkService) HasLink(ctx context.Context, userID int64, link string) (bool, error) {
	if userID < 0 {
		return false, ErrNegativeUserID
	}

	exists, err := s.repo.LinkExists(ctx, userID, link)
	if err != nil {
		s.logger.Error("Failed to check link existence",
			zap.Int64("user_id", userID),
			zap.String("link", link),
			zap.Error(err))
		return false, err
	}
	return exists, nil
}

// ClearLinks removes every link the user has stored.
func (s *LinkService) ClearLinks(ctx context.Context, userID int64) error {
	if userID < 0 {
		return ErrNegativeUserID
	}

	if err := s.repo.ClearLinks(ctx, userID); err != nil {
		s.logger.Error("Failed to clear user links", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteLinks removes the user's records matching each given link text.
// The batch is best-effort: on failure, links deleted before the failing
// item stay deleted, and the error reports what was left unconfirmed.
func (s *LinkService) DeleteLinks(ctx context.Context, userID int64, links []string) error {
	if userID < 0 {
		return ErrNegativeUserID
	}

	if err := s.repo.DeleteLinks(ctx, userID, links); err != nil {
		var partial *repository.PartialDeleteError
		if errors.As(err, &partial) {
			s.logger.Error("Link deletion batch stopped partway",
				zap.Int64("user_id", userID),
				zap.Int("batch_size", len(links)),
				zap.Int("unconfirmed", len(partial.Unconfirmed)),
				zap.Error(err))
		} else {
			s.logger.Error("Failed to delete links", zap.Int64("user_id", userID), zap.Error(err))
		}
		return err
	}
	return nil
}
