package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/follow"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) Save(ctx context.Context, edge *follow.Follow) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *Repository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *Repository) ListFollowees(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, followerID)
	followees, _ := args.Get(0).([]uuid.UUID)
	return followees, args.Error(1)
}

func (m *Repository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) CountFollowees(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
