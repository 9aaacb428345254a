package service

import (
	"context"
	"errors"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
)

// ErrNotFound reports a resource that does not exist or is not visible to
// the caller. Ownership violations deliberately collapse into this error.
var ErrNotFound = errors.New("not_found")

// LinkService manages a user's links. Every operation is scoped to the
// owning user; a link id belonging to someone else behaves as missing.
type LinkService struct {
	Store store.Store
}

func (s *LinkService) List(ctx context.Context, userID int64) ([]domain.Link, error) {
	return s.Store.Links().ListLinksByUser(ctx, userID)
}

func (s *LinkService) Create(ctx context.Context, userID int64, title, url string) (domain.Link, error) {
	id, err := s.Store.Links().CreateLink(ctx, domain.Link{
		UserID: userID,
		Title:  title,
		URL:    url,
	})
	if err != nil {
		return domain.Link{}, err
	}
	return s.Store.Links().GetLinkByID(ctx, id, userID)
}

func (s *LinkService) Update(ctx context.Context, userID, linkID int64, title, url string) (domain.Link, error) {
	err := s.Store.Links().UpdateLink(ctx, domain.Link{
		ID:     linkID,
		UserID: userID,
		Title:  title,
		URL:    url,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Link{}, ErrNotFound
		}
		return domain.Link{}, err
	}
	return s.Store.Links().GetLinkByID(ctx, linkID, userID)
}

func (s *LinkService) Delete(ctx context.Context, userID, linkID int64) error {
	if err := s.Store.Links().DeleteLink(ctx, linkID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
