// Package downstream probes the health endpoint of the companion service.
package downstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	healthPath         = "/health"
	responseTimeHeader = "Response-Time"
	maxBodyBytes       = 1 << 20
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Result struct {
	URL          string
	ResponseTime string
	Data         any
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// NewClient builds a client whose every probe is bounded by timeout. A nil
// httpClient gets a dedicated one.
func NewClient(httpClient *http.Client, baseURL string, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
	}
}

func (c *Client) URL() string {
	return c.baseURL
}

func (c *Client) CheckHealth(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var data any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	responseTime := resp.Header.Get(responseTimeHeader)
	if responseTime == "" {
		responseTime = "unknown"
	}

	return &Result{
		URL:          c.baseURL,
		ResponseTime: responseTime,
		Data:         data,
	}, nil
}
