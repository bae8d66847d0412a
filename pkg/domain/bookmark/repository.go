package bookmark

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=bookmark_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Exists(ctx context.Context, userID, workID uuid.UUID) (bool, error)
	Save(ctx context.Context, bookmark *Bookmark) error
	Delete(ctx context.Context, userID, workID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error)
}
