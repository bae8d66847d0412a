package comment

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=comment_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByWork(ctx context.Context, workID uuid.UUID) ([]Comment, error)
	CountByWork(ctx context.Context, workID uuid.UUID) (int64, error)
	DeleteByWork(ctx context.Context, workID uuid.UUID) error
}
