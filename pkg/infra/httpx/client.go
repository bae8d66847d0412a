package httpx

import (
	"net/http"
	"time"
)

const DefaultTimeout = 15 * time.Second

// Client abstracts the outbound HTTP client so vendor adapters can be tested
// without network access.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

type clientOptions struct {
	timeout time.Duration
}

type ClientOption func(*clientOptions)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// NewClient returns a net/http-backed client with a hard per-request timeout.
// Context cancellation from the inbound request still applies through
// http.NewRequestWithContext.
func NewClient(opts ...ClientOption) Client {
	options := clientOptions{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &http.Client{
		Timeout: options.timeout,
		Transport: &http.Transport{
			MaxIdleConns:        64,
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
