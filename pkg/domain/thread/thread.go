package thread

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Thread is a topic tag works can be posted to.
type Thread struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		t.ID = id
	}
	t.CreatedAt = time.Now()
	return t.Validate()
}

func (t *Thread) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if t.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	return nil
}

func (t *Thread) TableName() string {
	return "public.threads"
}
