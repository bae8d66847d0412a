package request

import "fmt"

type DetectTextRequest struct {
	Text string `json:"text"`
}

func (r *DetectTextRequest) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}
