package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/thread"
)

type ThreadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) thread.Repository {
	return &ThreadRepository{
		db: db,
	}
}

func (r *ThreadRepository) List(ctx context.Context) ([]thread.Thread, error) {
	var threads []thread.Thread
	if err := r.db.WithContext(ctx).Order("name").Find(&threads).Error; err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *ThreadRepository) Get(ctx context.Context, id uuid.UUID) (*thread.Thread, error) {
	var entity thread.Thread
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *ThreadRepository) Save(ctx context.Context, entity *thread.Thread) error {
	return r.db.WithContext(ctx).Create(entity).Error
}
