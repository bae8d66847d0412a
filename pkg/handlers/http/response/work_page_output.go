package response

import (
	"time"

	"github.com/artfolio/artfolio/pkg/domain/work"
)

type WorkPageOutput struct {
	Works      []work.Work `json:"works"`
	NextCursor *time.Time  `json:"next_cursor"`
	HasMore    bool        `json:"has_more"`
}

func NewWorkPageOutput(page *work.Page) WorkPageOutput {
	works := page.Works
	if works == nil {
		works = []work.Work{}
	}
	return WorkPageOutput{
		Works:      works,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}
}
