package detection

import "context"

// ContentType selects the detector modality and the expected payload shape.
type ContentType string

const (
	ContentTypeImage ContentType = "image"
	ContentTypeText  ContentType = "text"
)

func (c ContentType) IsValid() bool {
	return c == ContentTypeImage || c == ContentTypeText
}

// Result is the outcome of a single detection call. It is created once per
// call and never persisted. Confidence is 1 minus the provider's
// AI-probability; RawScore keeps the provider-specific score, whose scale is
// not comparable across providers.
type Result struct {
	Passed     bool                   `json:"passed"`
	Confidence float64                `json:"confidence"`
	RawScore   float64                `json:"raw_score"`
	Provider   string                 `json:"provider"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Detector is the capability contract for an AI-content provider. A provider
// that lacks a modality returns a CapabilityError for that method instead of
// degrading silently.
type Detector interface {
	CheckImage(ctx context.Context, imageBytes []byte, filename string) (*Result, error)
	CheckText(ctx context.Context, text string) (*Result, error)
}
