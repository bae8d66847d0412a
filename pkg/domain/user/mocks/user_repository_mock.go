package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/user"
)

type Repository struct {
	mock.Mock
}

func (m *Repository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(*user.User)
	return entity, args.Error(1)
}

func (m *Repository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	entity, _ := args.Get(0).(*user.User)
	return entity, args.Error(1)
}

func (m *Repository) Save(ctx context.Context, entity *user.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *Repository) Update(ctx context.Context, entity *user.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}
