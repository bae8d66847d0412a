package comment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artfolio/artfolio/pkg/domain/user"
)

type Comment struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	WorkID    uuid.UUID  `json:"work_id" gorm:"type:uuid;index"`
	AuthorID  uuid.UUID  `json:"author_id" gorm:"type:uuid"`
	Author    *user.User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		id, err := uuid.NewV6()
		if err != nil {
			return err
		}
		c.ID = id
	}
	c.CreatedAt = time.Now()
	return c.Validate()
}

func (c *Comment) Validate() error {
	if c.WorkID == uuid.Nil {
		return fmt.Errorf("work_id is required")
	}
	if c.AuthorID == uuid.Nil {
		return fmt.Errorf("author_id is required")
	}
	if c.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

func (c *Comment) TableName() string {
	return "public.comments"
}
