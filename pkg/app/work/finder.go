package work

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain/comment"
	"github.com/artfolio/artfolio/pkg/domain/work"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=work_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, id uuid.UUID) (*work.Work, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, cursor *time.Time, limit int) (*work.Page, error)
}

type finder struct {
	logger   *logrus.Logger
	repo     work.Repository
	comments comment.Repository
}

func NewFinder(logger *logrus.Logger, repo work.Repository, comments comment.Repository) Finder {
	return &finder{
		logger:   logger,
		repo:     repo,
		comments: comments,
	}
}

func (f *finder) Find(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	entity, err := f.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := f.comments.CountByWork(ctx, id)
	if err != nil {
		f.logger.WithError(err).Warn("failed to count comments")
	} else {
		entity.CommentsCount = count
	}

	return entity, nil
}

func (f *finder) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	return f.repo.ListByAuthor(ctx, authorID, cursor, limit)
}
