// Package preflight checks that every probe endpoint answers before an
// attack starts.
package preflight

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var probePaths = []string{"/health", "/ready", "/api/status"}

// Run polls each probe path until it returns 200 or timeout elapses.
func Run(ctx context.Context, baseURL, bypassSecret string, insecureSkipVerify bool, timeout time.Duration) error {
	fmt.Printf("Preflight: waiting for %s (timeout %s)...\n", baseURL, timeout)

	client := &http.Client{
		Timeout: 2 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: insecureSkipVerify},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range probePaths {
		g.Go(func() error {
			return waitOK(ctx, client, baseURL+path, bypassSecret)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("Preflight complete")
	return nil
}

func waitOK(ctx context.Context, client *http.Client, url, bypassSecret string) error {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		if lastErr = probe(ctx, client, url, bypassSecret); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s not ready: %w", url, lastErr)
		case <-ticker.C:
		}
	}
}

func probe(ctx context.Context, client *http.Client, url, bypassSecret string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
