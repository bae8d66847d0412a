package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/comment"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, entity *comment.Comment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *Repository) ListByWork(ctx context.Context, workID uuid.UUID) ([]comment.Comment, error) {
	args := m.Called(ctx, workID)
	comments, _ := args.Get(0).([]comment.Comment)
	return comments, args.Error(1)
}

func (m *Repository) CountByWork(ctx context.Context, workID uuid.UUID) (int64, error) {
	args := m.Called(ctx, workID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) DeleteByWork(ctx context.Context, workID uuid.UUID) error {
	args := m.Called(ctx, workID)
	return args.Error(0)
}
