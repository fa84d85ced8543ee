package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used for calls
// to third-party JSON APIs.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults (no base URL, no timeout, no retries).
type HTTPClientOptions struct {
	BaseURL string
	Timeout time.Duration

	// RetryCount is the number of retries after the first attempt. Only
	// transport errors and 5xx responses are retried.
	RetryCount    int
	RetryWaitTime time.Duration
}

// NewHTTPClient returns a JSON client configured by opts. Each call returns
// an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{
//	    BaseURL:    "https://maps.googleapis.com",
//	    Timeout:    10 * time.Second,
//	    RetryCount: 2,
//	})
//	resp, err := client.R().SetContext(ctx).Get("/maps/api/place/nearbysearch/json")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.RetryCount > 0 {
		client.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(opts.RetryWaitTime).
			AddRetryCondition(retryOnServerError)
	}

	return &HTTPClient{Client: client}
}

func retryOnServerError(resp *resty.Response, err error) bool {
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}
