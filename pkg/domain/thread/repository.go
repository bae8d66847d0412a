package thread

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=thread_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	List(ctx context.Context) ([]Thread, error)
	Get(ctx context.Context, id uuid.UUID) (*Thread, error)
	Save(ctx context.Context, thread *Thread) error
}
