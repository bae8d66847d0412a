package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain/user"
)

type UpdateInput struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}

//go:generate mockery --name=Updater --dir=. --output=./mocks --filename=user_updater_mock.go --case=underscore --with-expecter
type Updater interface {
	Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*user.User, error)
}

type updater struct {
	logger *logrus.Logger
	repo   user.Repository
}

func NewUpdater(logger *logrus.Logger, repo user.Repository) Updater {
	return &updater{
		logger: logger,
		repo:   repo,
	}
}

func (u *updater) Update(ctx context.Context, userID uuid.UUID, input UpdateInput) (*user.User, error) {
	entity, err := u.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if input.DisplayName != nil {
		entity.DisplayName = input.DisplayName
	}
	if input.AvatarURL != nil {
		entity.AvatarURL = input.AvatarURL
	}
	if input.Bio != nil {
		entity.Bio = input.Bio
	}

	if err := u.repo.Update(ctx, entity); err != nil {
		u.logger.WithError(err).Error("failed to update user")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return entity, nil
}
