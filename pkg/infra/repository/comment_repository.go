package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/comment"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Save(ctx context.Context, entity *comment.Comment) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *CommentRepository) ListByWork(ctx context.Context, workID uuid.UUID) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("work_id = ?", workID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) CountByWork(ctx context.Context, workID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&comment.Comment{}).
		Where("work_id = ?", workID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) DeleteByWork(ctx context.Context, workID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&comment.Comment{}, "work_id = ?", workID).Error
}
