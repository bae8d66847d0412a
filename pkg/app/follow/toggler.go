package follow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/follow"
	"github.com/artfolio/artfolio/pkg/infra/cache"
)

//go:generate mockery --name=Toggler --dir=. --output=./mocks --filename=follow_toggler_mock.go --case=underscore --with-expecter
type Toggler interface {
	// Toggle follows the followee if no edge exists, unfollows otherwise, and
	// reports whether the requester now follows them.
	Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

type toggler struct {
	logger *logrus.Logger
	repo   follow.Repository
	cache  *cache.Cache
}

func NewToggler(logger *logrus.Logger, repo follow.Repository, cacheInstance *cache.Cache) Toggler {
	return &toggler{
		logger: logger,
		repo:   repo,
		cache:  cacheInstance,
	}
}

func (t *toggler) Toggle(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		return false, domain.ErrSelfFollow
	}

	exists, err := t.repo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	if exists {
		if err := t.repo.Delete(ctx, followerID, followeeID); err != nil {
			return true, fmt.Errorf("failed to unfollow: %w", err)
		}
	} else {
		edge := &follow.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := t.repo.Save(ctx, edge); err != nil {
			return false, fmt.Errorf("failed to follow: %w", err)
		}
	}

	// The follow graph changed, so the cached first feed page is stale.
	if t.cache != nil {
		if err := t.cache.Delete(ctx, fmt.Sprintf(cache.FeedKeyPattern, followerID)); err != nil {
			t.logger.WithError(err).Warn("failed to invalidate feed cache")
		}
	}

	return !exists, nil
}
