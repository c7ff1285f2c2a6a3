package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the shared outbound HTTP client (key service calls and
// signed URL fetches).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests time out after timeout.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
