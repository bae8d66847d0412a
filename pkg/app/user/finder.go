package user

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/artfolio/artfolio/pkg/domain/follow"
	"github.com/artfolio/artfolio/pkg/domain/user"
)

// Profile is a user plus their follow-graph counts.
type Profile struct {
	User           *user.User `json:"user"`
	FollowerCount  int64      `json:"follower_count"`
	FollowingCount int64      `json:"following_count"`
}

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=user_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	FindByUsername(ctx context.Context, username string) (*Profile, error)
}

type finder struct {
	logger  *logrus.Logger
	repo    user.Repository
	follows follow.Repository
}

func NewFinder(logger *logrus.Logger, repo user.Repository, follows follow.Repository) Finder {
	return &finder{
		logger:  logger,
		repo:    repo,
		follows: follows,
	}
}

func (f *finder) FindByUsername(ctx context.Context, username string) (*Profile, error) {
	entity, err := f.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}

	profile := &Profile{User: entity}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := f.follows.CountFollowers(ctx, entity.ID)
		profile.FollowerCount = count
		return err
	})
	g.Go(func() error {
		count, err := f.follows.CountFollowees(ctx, entity.ID)
		profile.FollowingCount = count
		return err
	})
	if err := g.Wait(); err != nil {
		f.logger.WithError(err).Warn("failed to load follow counts")
	}

	return profile, nil
}
