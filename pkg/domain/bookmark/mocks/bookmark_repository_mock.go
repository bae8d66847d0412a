package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/bookmark"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Exists(ctx context.Context, userID, workID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, workID)
	return args.Bool(0), args.Error(1)
}

func (m *Repository) Save(ctx context.Context, entity *bookmark.Bookmark) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *Repository) Delete(ctx context.Context, userID, workID uuid.UUID) error {
	args := m.Called(ctx, userID, workID)
	return args.Error(0)
}

func (m *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error) {
	args := m.Called(ctx, userID)
	bookmarks, _ := args.Get(0).([]bookmark.Bookmark)
	return bookmarks, args.Error(1)
}
