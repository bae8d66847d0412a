package request

import (
	"fmt"

	"github.com/artfolio/artfolio/pkg/domain/work"
)

// PublishWorkRequest is the JSON body for written works. Image works arrive
// as multipart forms instead, carrying the same fields plus the media file.
type PublishWorkRequest struct {
	WorkType        string   `json:"work_type"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Description     *string  `json:"description"`
	Width           *int     `json:"width"`
	Height          *int     `json:"height"`
	CoverImageURL   *string  `json:"cover_image_url"`
	CoverImagePath  *string  `json:"cover_image_path"`
	ThreadIDs       []string `json:"thread_ids"`
	PrimaryThreadID *string  `json:"primary_thread_id"`
}

func (r *PublishWorkRequest) Validate() error {
	if !work.Type(r.WorkType).IsValid() {
		return fmt.Errorf("work_type must be 'image', 'essay' or 'text_post'")
	}
	if work.Type(r.WorkType) != work.TypeImage && r.Content == "" {
		return fmt.Errorf("content is required for written works")
	}
	return nil
}
