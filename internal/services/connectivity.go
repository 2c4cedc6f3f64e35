package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ConnectivityChecker probes whether the provider's web host is reachable.
type ConnectivityChecker struct {
	httpClient *http.Client
	url        string
}

func NewConnectivityChecker(url string, timeout time.Duration) *ConnectivityChecker {
	return &ConnectivityChecker{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// Check issues a GET against the configured URL and returns the status code.
// Any HTTP response counts as reachable at this layer.
func (c *ConnectivityChecker) Check(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
