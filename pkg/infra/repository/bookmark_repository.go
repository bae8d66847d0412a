package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/bookmark"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) bookmark.Repository {
	return &BookmarkRepository{
		db: db,
	}
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, workID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&bookmark.Bookmark{}).
		Where("user_id = ? AND work_id = ?", userID, workID).
		Count(&count).Error
	return count > 0, err
}

func (r *BookmarkRepository) Save(ctx context.Context, entity *bookmark.Bookmark) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BookmarkRepository) Delete(ctx context.Context, userID, workID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&bookmark.Bookmark{}, "user_id = ? AND work_id = ?", userID, workID).Error
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error) {
	var bookmarks []bookmark.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}
