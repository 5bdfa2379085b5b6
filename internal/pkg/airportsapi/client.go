// Package airportsapi fetches the full airport directory from the
// external sync API.
package airportsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/exception"
)

const userAgent = "roundtrip-flight-service/airport-sync"

var ErrDirectoryUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "airport directory service unavailable",
}

type Config struct {
	BaseURL    string
	Login      string
	Password   string
	Timeout    time.Duration
	MaxRetries int
}

type Client struct {
	baseURL    string
	login      string
	password   string
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		baseURL:    config.BaseURL,
		login:      config.Login,
		password:   config.Password,
		timeout:    config.Timeout,
		maxRetries: config.MaxRetries,
		httpClient: &http.Client{},
	}
}

// FetchAirports downloads the IATA-to-record mapping. Transient
// failures are retried with exponential backoff; records are decoded
// but not validated here, the importer decides what to keep.
func (c *Client) FetchAirports(ctx context.Context) (map[string]airport.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// exponential backoff: 200ms * 2^(attempt-1)
			backoff := time.Duration(200*(1<<(attempt-1))) * time.Millisecond
			slog.InfoContext(ctx, "retrying airport directory fetch",
				slog.Duration("backoff", backoff), slog.Int("attempt", attempt+1))

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}

		records, err := c.fetch(ctx)
		if err != nil {
			lastErr = err
			slog.WarnContext(ctx, "airport directory fetch failed",
				slog.Int("attempt", attempt+1), slog.String("error", err.Error()))
			continue
		}

		return records, nil
	}

	slog.ErrorContext(ctx, "airport directory fetch exhausted retries",
		slog.Int("attempts", c.maxRetries+1), slog.String("error", lastErr.Error()))

	return nil, ErrDirectoryUnavailable
}

func (c *Client) fetch(ctx context.Context) (map[string]airport.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}

	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory API returned status %d", resp.StatusCode)
	}

	var records map[string]airport.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}

	return records, nil
}
