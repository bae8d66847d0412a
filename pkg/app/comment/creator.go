package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/comment"
	"github.com/artfolio/artfolio/pkg/domain/work"
)

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=comment_creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, workID, authorID uuid.UUID, body string) (*comment.Comment, error)
}

type creator struct {
	logger *logrus.Logger
	repo   comment.Repository
	works  work.Repository
}

func NewCreator(logger *logrus.Logger, repo comment.Repository, works work.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
		works:  works,
	}
}

func (c *creator) Create(ctx context.Context, workID, authorID uuid.UUID, body string) (*comment.Comment, error) {
	if _, err := c.works.Get(ctx, workID); err != nil {
		return nil, domain.NewNotFoundError("work", workID)
	}

	entity := &comment.Comment{
		WorkID:   workID,
		AuthorID: authorID,
		Body:     body,
	}

	if err := c.repo.Save(ctx, entity); err != nil {
		c.logger.WithError(err).Error("failed to save comment")
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return entity, nil
}
