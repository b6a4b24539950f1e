// Package fetcher downloads optimized images by URL
package fetcher

import (
	"context"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/go-resty/resty/v2"
)

type HTTPFetcher struct {
	client *resty.Client
}

func New(timeout time.Duration) *HTTPFetcher {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPFetcher{client: c}
}

// Get returns status and body for any HTTP status; err is set only on transport failure.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (*model.FetchResponse, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}

	return &model.FetchResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
