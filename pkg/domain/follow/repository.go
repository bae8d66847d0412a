package follow

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=follow_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Save(ctx context.Context, follow *Follow) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowees(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowees(ctx context.Context, userID uuid.UUID) (int64, error)
}
