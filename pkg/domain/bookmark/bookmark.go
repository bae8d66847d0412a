package bookmark

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	WorkID    uuid.UUID `json:"work_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "public.bookmarks"
}
