package response

import "github.com/artfolio/artfolio/pkg/domain/detection"

// DetectionOutput is the wire shape of a gate verdict. Score is the raw
// AI-generated probability reported by the vendor.
type DetectionOutput struct {
	Passed     bool    `json:"passed"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Provider   string  `json:"provider"`
}

func NewDetectionOutput(result *detection.Result) DetectionOutput {
	return DetectionOutput{
		Passed:     result.Passed,
		Score:      result.RawScore,
		Confidence: result.Confidence,
		Provider:   result.Provider,
	}
}
