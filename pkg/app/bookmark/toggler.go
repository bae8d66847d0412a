package bookmark

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain/bookmark"
)

//go:generate mockery --name=Toggler --dir=. --output=./mocks --filename=bookmark_toggler_mock.go --case=underscore --with-expecter
type Toggler interface {
	// Toggle saves the bookmark if absent, removes it otherwise, and reports
	// whether the work is now bookmarked.
	Toggle(ctx context.Context, userID, workID uuid.UUID) (bool, error)
}

type toggler struct {
	logger *logrus.Logger
	repo   bookmark.Repository
}

func NewToggler(logger *logrus.Logger, repo bookmark.Repository) Toggler {
	return &toggler{
		logger: logger,
		repo:   repo,
	}
}

func (t *toggler) Toggle(ctx context.Context, userID, workID uuid.UUID) (bool, error) {
	exists, err := t.repo.Exists(ctx, userID, workID)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	if exists {
		if err := t.repo.Delete(ctx, userID, workID); err != nil {
			return true, fmt.Errorf("failed to remove bookmark: %w", err)
		}
		return false, nil
	}

	entity := &bookmark.Bookmark{UserID: userID, WorkID: workID}
	if err := t.repo.Save(ctx, entity); err != nil {
		return false, fmt.Errorf("failed to save bookmark: %w", err)
	}
	return true, nil
}
