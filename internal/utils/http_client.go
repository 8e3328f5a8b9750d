package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewServiceHTTPClient returns an HTTPClient preconfigured for a
// service-to-service collaborator: base URL, per-request timeout,
// JSON accept header and, when serviceToken is set, a bearer token.
// Retries are disabled; callers decide retry policy.
func NewServiceHTTPClient(baseURL string, timeout time.Duration, serviceToken string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if serviceToken != "" {
		client.SetAuthToken(serviceToken)
	}

	return &HTTPClient{Client: client}
}
