package work

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Page is a cursor-paginated slice of works, newest first. The cursor is the
// created_at of the last row.
type Page struct {
	Works      []Work
	NextCursor *time.Time
	HasMore    bool
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=work_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Work, error)
	// SaveWithThreads persists the work and its thread links in one
	// transaction. Nothing is written if any part fails.
	SaveWithThreads(ctx context.Context, work *Work, threadIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAuthor(ctx context.Context, authorID uuid.UUID, cursor *time.Time, limit int) (*Page, error)
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, cursor *time.Time, limit int) (*Page, error)
	ListRecent(ctx context.Context, cursor *time.Time, limit int) (*Page, error)
}
