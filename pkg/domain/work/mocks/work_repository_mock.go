package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/work"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Get(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(*work.Work)
	return entity, args.Error(1)
}

func (m *Repository) SaveWithThreads(ctx context.Context, entity *work.Work, threadIDs []uuid.UUID) error {
	args := m.Called(ctx, entity, threadIDs)
	return args.Error(0)
}

func (m *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Repository) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	args := m.Called(ctx, authorID, cursor, limit)
	page, _ := args.Get(0).(*work.Page)
	return page, args.Error(1)
}

func (m *Repository) ListByAuthors(
	ctx context.Context,
	authorIDs []uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	args := m.Called(ctx, authorIDs, cursor, limit)
	page, _ := args.Get(0).(*work.Page)
	return page, args.Error(1)
}

func (m *Repository) ListRecent(ctx context.Context, cursor *time.Time, limit int) (*work.Page, error) {
	args := m.Called(ctx, cursor, limit)
	page, _ := args.Get(0).(*work.Page)
	return page, args.Error(1)
}
