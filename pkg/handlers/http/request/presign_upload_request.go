package request

import (
	"fmt"
	"strings"
)

type PresignUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

func (r *PresignUploadRequest) Validate() error {
	if r.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	if strings.Contains(r.Filename, "..") || strings.Contains(r.Filename, "/") {
		return fmt.Errorf("filename must not contain path separators")
	}
	if r.ContentType == "" {
		return fmt.Errorf("content_type is required")
	}
	return nil
}
