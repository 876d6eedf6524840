package service

import (
	"bookmarks_api/internal/models"
	"bookmarks_api/internal/storage"
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
)

func (s *service) CreateBookmark(ctx context.Context, userID uuid.UUID, title, link string, description *string) (models.Bookmark, error) {
	const op = "service.CreateBookmark"

	bookmark, err := s.storage.CreateBookmark(ctx, models.Bookmark{
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
	})
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

func (s *service) GetBookmarks(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error) {
	const op = "service.GetBookmarks"

	bookmarks, err := s.storage.ListBookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookmarks, nil
}

// GetBookmarkByID answers ErrAccessDenied both for a missing bookmark and for
// one owned by somebody else.
func (s *service) GetBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID) (models.Bookmark, error) {
	const op = "service.GetBookmarkByID"

	bookmark, err := s.ownedBookmark(ctx, userID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

func (s *service) EditBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID, upd models.BookmarkUpdate) (models.Bookmark, error) {
	const op = "service.EditBookmarkByID"

	if _, err := s.ownedBookmark(ctx, userID, bookmarkID); err != nil {
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}

	bookmark, err := s.storage.UpdateBookmark(ctx, bookmarkID, userID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrBookmarkNotFound) {
			return models.Bookmark{}, fmt.Errorf("%s: %w", op, ErrAccessDenied)
		}
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

func (s *service) DeleteBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID) error {
	const op = "service.DeleteBookmarkByID"

	if _, err := s.ownedBookmark(ctx, userID, bookmarkID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteBookmark(ctx, bookmarkID, userID); err != nil {
		if errors.Is(err, storage.ErrBookmarkNotFound) {
			return fmt.Errorf("%s: %w", op, ErrAccessDenied)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) ownedBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) (models.Bookmark, error) {
	bookmark, err := s.storage.GetBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, storage.ErrBookmarkNotFound) {
			return models.Bookmark{}, ErrAccessDenied
		}
		return models.Bookmark{}, err
	}

	if bookmark.UserID != userID {
		return models.Bookmark{}, ErrAccessDenied
	}

	return bookmark, nil
}
