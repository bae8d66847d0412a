package work

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/user"
)

type Type string

const (
	TypeImage    Type = "image"
	TypeEssay    Type = "essay"
	TypeTextPost Type = "text_post"
)

func (t Type) IsValid() bool {
	return t == TypeImage || t == TypeEssay || t == TypeTextPost
}

type Work struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID        uuid.UUID  `json:"author_id" gorm:"type:uuid;index"`
	Author          *user.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Title           string     `json:"title"`
	WorkType        Type       `json:"work_type"`
	Description     *string    `json:"description"`
	Content         *string    `json:"content"`
	ImageURL        *string    `json:"image_url"`
	ImagePath       *string    `json:"image_path"`
	Width           *int       `json:"width"`
	Height          *int       `json:"height"`
	PrimaryThreadID *uuid.UUID `json:"primary_thread_id" gorm:"type:uuid"`
	IsPublished     bool       `json:"is_published"`
	CommentsCount   int64      `json:"comments_count" gorm:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (w *Work) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		w.ID = id
	}

	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	return w.Validate()
}

func (w *Work) BeforeUpdate(tx *gorm.DB) error {
	w.UpdatedAt = time.Now()
	return w.Validate()
}

func (w *Work) Validate() error {
	if w.AuthorID == uuid.Nil {
		return fmt.Errorf("author_id is required")
	}
	if !w.WorkType.IsValid() {
		return fmt.Errorf("work_type must be 'image', 'essay' or 'text_post'")
	}
	if w.WorkType == TypeImage && w.ImageURL == nil {
		return fmt.Errorf("image works require an image_url")
	}
	if w.WorkType != TypeImage && (w.Content == nil || *w.Content == "") {
		return fmt.Errorf("written works require content")
	}
	return nil
}

func (w *Work) TableName() string {
	return "public.works"
}

// WorkThread links a work to a topic thread. The primary thread is stored on
// the work itself.
type WorkThread struct {
	WorkID   uuid.UUID `json:"work_id" gorm:"type:uuid;primaryKey"`
	ThreadID uuid.UUID `json:"thread_id" gorm:"type:uuid;primaryKey"`
}

func (WorkThread) TableName() string {
	return "public.work_threads"
}
