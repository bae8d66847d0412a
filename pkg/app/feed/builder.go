package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/artfolio/artfolio/pkg/domain/comment"
	"github.com/artfolio/artfolio/pkg/domain/follow"
	"github.com/artfolio/artfolio/pkg/domain/work"
	"github.com/artfolio/artfolio/pkg/infra/cache"
)

//go:generate mockery --name=Builder --dir=. --output=./mocks --filename=feed_builder_mock.go --case=underscore --with-expecter
type Builder interface {
	FollowingFeed(ctx context.Context, userID uuid.UUID, cursor *time.Time, limit int) (*work.Page, error)
	ExploreFeed(ctx context.Context, cursor *time.Time, limit int) (*work.Page, error)
}

type builder struct {
	logger   *logrus.Logger
	works    work.Repository
	follows  follow.Repository
	comments comment.Repository
	cache    *cache.Cache
}

func NewBuilder(
	logger *logrus.Logger,
	works work.Repository,
	follows follow.Repository,
	comments comment.Repository,
	cacheInstance *cache.Cache,
) Builder {
	return &builder{
		logger:   logger,
		works:    works,
		follows:  follows,
		comments: comments,
		cache:    cacheInstance,
	}
}

// FollowingFeed returns recent works from followed authors, newest first.
// Only the first page is cached; cursor pages are cheap enough to hit the
// database directly.
func (b *builder) FollowingFeed(
	ctx context.Context,
	userID uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	cacheKey := fmt.Sprintf(cache.FeedKeyPattern, userID)
	if cursor == nil && b.cache != nil {
		var cached work.Page
		if err := b.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		} else if !cache.IsMiss(err) {
			b.logger.WithError(err).Warn("feed cache read failed")
		}
	}

	followees, err := b.follows.ListFollowees(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followees: %w", err)
	}

	page, err := b.works.ListByAuthors(ctx, followees, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed: %w", err)
	}

	if err := b.attachCommentCounts(ctx, page); err != nil {
		b.logger.WithError(err).Warn("failed to attach comment counts")
	}

	if cursor == nil && b.cache != nil {
		if err := b.cache.Set(ctx, cacheKey, page, cache.FeedTTL); err != nil {
			b.logger.WithError(err).Warn("feed cache write failed")
		}
	}

	return page, nil
}

func (b *builder) ExploreFeed(ctx context.Context, cursor *time.Time, limit int) (*work.Page, error) {
	page, err := b.works.ListRecent(ctx, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build explore feed: %w", err)
	}
	if err := b.attachCommentCounts(ctx, page); err != nil {
		b.logger.WithError(err).Warn("failed to attach comment counts")
	}
	return page, nil
}

// attachCommentCounts fans out one count query per work, bounded so a large
// page cannot exhaust the connection pool.
func (b *builder) attachCommentCounts(ctx context.Context, page *work.Page) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i := range page.Works {
		i := i
		g.Go(func() error {
			count, err := b.comments.CountByWork(ctx, page.Works[i].ID)
			if err != nil {
				return err
			}
			page.Works[i].CommentsCount = count
			return nil
		})
	}

	return g.Wait()
}
