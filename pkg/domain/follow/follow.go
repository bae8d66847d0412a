package follow

import (
	"time"

	"github.com/google/uuid"
)

// Follow is an edge in the follow graph: follower -> followee.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id" gorm:"type:uuid;primaryKey"`
	FolloweeID uuid.UUID `json:"followee_id" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "public.follows"
}
