package work

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/artfolio/artfolio/pkg/domain"
	"github.com/artfolio/artfolio/pkg/domain/comment"
	"github.com/artfolio/artfolio/pkg/domain/work"
	"github.com/artfolio/artfolio/pkg/infra/storage"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=work_deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, workID, requesterID uuid.UUID) error
}

type deleter struct {
	logger   *logrus.Logger
	repo     work.Repository
	comments comment.Repository
	media    storage.MediaStore
}

func NewDeleter(
	logger *logrus.Logger,
	repo work.Repository,
	comments comment.Repository,
	media storage.MediaStore,
) Deleter {
	return &deleter{
		logger:   logger,
		repo:     repo,
		comments: comments,
		media:    media,
	}
}

// Delete removes a work owned by the requester, its comments, and its stored
// media. Media cleanup happens after the row is gone; a failed object delete
// is logged, not surfaced, since the work is already unreachable.
func (d *deleter) Delete(ctx context.Context, workID, requesterID uuid.UUID) error {
	entity, err := d.repo.Get(ctx, workID)
	if err != nil {
		return domain.NewNotFoundError("work", workID)
	}

	if entity.AuthorID != requesterID {
		return domain.ErrNotWorkOwner
	}

	if err := d.comments.DeleteByWork(ctx, workID); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	if err := d.repo.Delete(ctx, workID); err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	if entity.ImagePath != nil {
		if err := d.media.Delete(ctx, *entity.ImagePath); err != nil {
			d.logger.WithError(err).WithField("path", *entity.ImagePath).
				Error("failed to delete media object")
		}
	}

	return nil
}
