package storage

import (
	"bookmarks_api/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// CreateBookmark inserts bookmark under a fresh id. UserID must be set.
func (g *GormStorage) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	const op = "storage.CreateBookmark"

	bookmarkID, err := uuid.NewV4()
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}
	bookmark.ID = bookmarkID

	if err := g.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return models.Bookmark{}, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

// ListBookmarks never returns a nil slice.
func (g *GormStorage) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error) {
	const op = "storage.ListBookmarks"

	bookmarks := make([]models.Bookmark, 0)

	if err := g.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookmarks, nil
}

func (g *GormStorage) GetBookmarkByID(ctx context.Context, bookmarkID uuid.UUID) (models.Bookmark, error) {
	const op = "storage.GetBookmarkByID"

	var bookmark models.Bookmark

	err := g.db.WithContext(ctx).Where("id = ?", bookmarkID).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bookmark, fmt.Errorf("%s: %w", op, ErrBookmarkNotFound)
		}
		return bookmark, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

// UpdateBookmark applies upd to the bookmark matching both bookmarkID and its
// owner userID.
func (g *GormStorage) UpdateBookmark(ctx context.Context, bookmarkID, userID uuid.UUID, upd models.BookmarkUpdate) (models.Bookmark, error) {
	const op = "storage.UpdateBookmark"

	if !upd.Empty() {
		values := map[string]interface{}{}
		if upd.Title != nil {
			values["title"] = *upd.Title
		}
		if upd.Link != nil {
			values["link"] = *upd.Link
		}
		if upd.Description != nil {
			values["description"] = *upd.Description
		}

		res := g.db.WithContext(ctx).
			Model(&models.Bookmark{}).
			Where("id = ? AND user_id = ?", bookmarkID, userID).
			Updates(values)
		if res.Error != nil {
			return models.Bookmark{}, fmt.Errorf("%s: %w", op, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.Bookmark{}, fmt.Errorf("%s: %w", op, ErrBookmarkNotFound)
		}
	}

	var bookmark models.Bookmark

	err := g.db.WithContext(ctx).Where("id = ? AND user_id = ?", bookmarkID, userID).First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bookmark, fmt.Errorf("%s: %w", op, ErrBookmarkNotFound)
		}
		return bookmark, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark, nil
}

func (g *GormStorage) DeleteBookmark(ctx context.Context, bookmarkID, userID uuid.UUID) error {
	const op = "storage.DeleteBookmark"

	res := g.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookmarkID, userID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrBookmarkNotFound)
	}

	return nil
}
