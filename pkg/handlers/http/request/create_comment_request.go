package request

import "fmt"

type CreateCommentRequest struct {
	Body string `json:"body"`
}

func (r *CreateCommentRequest) Validate() error {
	if r.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
