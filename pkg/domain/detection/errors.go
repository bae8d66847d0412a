package detection

import (
	"errors"
	"fmt"
)

// The gate distinguishes four outcomes: a credential problem, a provider that
// does not implement the requested modality, a vendor transport failure, and
// the normal business outcome of content being judged AI-generated. Callers
// branch on these with errors.As to decide between "rewrite and resubmit" and
// "retry later".

type ConfigurationError struct {
	Provider string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("detector %s is not configured: %s", e.Provider, e.Reason)
}

type CapabilityError struct {
	Provider  string
	Operation string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("detector %s does not support %s", e.Provider, e.Operation)
}

type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("detector %s call failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ContentRejectedError carries the result of a successful detection run whose
// verdict was "likely AI-generated". It is an expected outcome, not a fault.
type ContentRejectedError struct {
	Result *Result
}

func (e *ContentRejectedError) Error() string {
	return fmt.Sprintf("content rejected by %s: %.0f%% likely AI-generated",
		e.Result.Provider, e.Result.RawScore*100)
}

var ErrContentTypeMismatch = errors.New("content representation does not match the declared content type")

func IsContentRejected(err error) bool {
	var rejected *ContentRejectedError
	return errors.As(err, &rejected)
}
