// Package optidash provides a client for the Optidash image optimization API
package optidash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UnendingLoop/OptidashOptimizer/internal/model"
	"github.com/go-resty/resty/v2"
)

var ErrEmptyEndpoint = errors.New("optidash endpoint is empty")

type Options struct {
	Endpoint string
	Timeout  time.Duration
}

type Client struct {
	endpoint string
	http     *resty.Client
}

// uploadData - JSON-поле "data" в multipart-запросе
type uploadData struct {
	Wait  bool `json:"wait"`
	Lossy bool `json:"lossy"`
}

func New(opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	httpClient := resty.New().
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{endpoint: opts.Endpoint, http: httpClient}, nil
}

// Upload sends the file with wait=true, so the call blocks until Optidash finishes.
// The result is decoded for any HTTP status: Optidash reports failures in the body.
func (c *Client) Upload(ctx context.Context, req *model.OptimizationRequest) (*model.OptimizationResult, error) {
	if req == nil {
		return nil, errors.New("nil optimization request")
	}

	data, err := json.Marshal(uploadData{Wait: true, Lossy: req.Lossy})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upload params: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(req.APIKey, req.APISecret).
		SetFile("file", req.FilePath).
		SetFormData(map[string]string{"data": string(data)}).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("optidash upload request failed: %w", err)
	}

	var res model.OptimizationResult
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("failed to decode optidash response (status %d): %w", resp.StatusCode(), err)
	}

	return &res, nil
}
