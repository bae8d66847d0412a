package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/user"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var entity user.User
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var entity user.User
	if err := r.db.WithContext(ctx).First(&entity, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *UserRepository) Save(ctx context.Context, entity *user.User) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	return r.db.WithContext(ctx).Save(entity).Error
}
