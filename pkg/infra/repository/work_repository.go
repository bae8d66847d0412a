package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/work"
)

const defaultPageSize = 20

type WorkRepository struct {
	db *gorm.DB
}

func NewWorkRepository(db *gorm.DB) work.Repository {
	return &WorkRepository{
		db: db,
	}
}

func (r *WorkRepository) Get(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	var entity work.Work
	if err := r.db.WithContext(ctx).Preload("Author").First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *WorkRepository) SaveWithThreads(ctx context.Context, entity *work.Work, threadIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entity).Error; err != nil {
			return err
		}
		for _, threadID := range threadIDs {
			link := work.WorkThread{WorkID: entity.ID, ThreadID: threadID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *WorkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&work.WorkThread{}, "work_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&work.Work{}, "id = ?", id).Error
	})
}

func (r *WorkRepository) ListByAuthor(
	ctx context.Context,
	authorID uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("author_id = ?", authorID), cursor, limit)
}

func (r *WorkRepository) ListByAuthors(
	ctx context.Context,
	authorIDs []uuid.UUID,
	cursor *time.Time,
	limit int,
) (*work.Page, error) {
	if len(authorIDs) == 0 {
		return &work.Page{}, nil
	}
	return r.list(ctx, r.db.WithContext(ctx).Where("author_id IN ?", authorIDs), cursor, limit)
}

func (r *WorkRepository) ListRecent(ctx context.Context, cursor *time.Time, limit int) (*work.Page, error) {
	return r.list(ctx, r.db.WithContext(ctx), cursor, limit)
}

// list fetches limit+1 rows to decide has_more without a second count query.
func (r *WorkRepository) list(ctx context.Context, query *gorm.DB, cursor *time.Time, limit int) (*work.Page, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	query = query.Where("is_published = ?", true)
	if cursor != nil {
		query = query.Where("created_at < ?", *cursor)
	}

	var works []work.Work
	err := query.
		Preload("Author").
		Order("created_at DESC").
		Limit(limit + 1).
		Find(&works).Error
	if err != nil {
		return nil, err
	}

	page := &work.Page{Works: works}
	if len(works) > limit {
		page.Works = works[:limit]
		page.HasMore = true
		last := page.Works[limit-1].CreatedAt
		page.NextCursor = &last
	}
	return page, nil
}
