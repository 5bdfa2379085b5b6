// Package pricing is the adapter for the external per-leg
// pricing/schedule provider.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/go-redis/redis_rate/v10"
)

type Config struct {
	BaseURL      string
	APIKey       string
	Login        string
	Password     string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      *redis_rate.Limiter
}

type Client struct {
	baseURL      string
	apiKey       string
	login        string
	password     string
	timeout      time.Duration
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		baseURL:      strings.TrimRight(config.BaseURL, "/"),
		apiKey:       config.APIKey,
		login:        config.Login,
		password:     config.Password,
		timeout:      config.Timeout,
		rateLimitRPS: config.RateLimitRPS,
		limiter:      config.Limiter,
		httpClient:   &http.Client{},
	}
}

// wire format of the provider response. Required fields are pointers
// so a missing key is distinguishable from a zero value and can be
// rejected as a malformed payload.
type quoteResponse struct {
	Summary struct {
		Currency string `json:"currency"`
	} `json:"summary"`
	Options []quoteOption `json:"options"`
}

type quoteOption struct {
	DepartureTime *isoTime    `json:"departure_time"`
	ArrivalTime   *isoTime    `json:"arrival_time"`
	Price         *quotePrice `json:"price"`
}

type quotePrice struct {
	Fare *float64 `json:"fare"`
}

func (o quoteOption) complete() bool {
	return o.DepartureTime != nil && o.ArrivalTime != nil &&
		o.Price != nil && o.Price.Fare != nil
}

// isoTime accepts ISO-8601 timestamps with or without a zone offset;
// the provider omits the offset on some routes.
type isoTime struct {
	time.Time
}

func (t *isoTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", raw)
}

// Quote fetches the flight options for one direction on one date.
// Every failure mode surfaces as ErrPricingUnavailable; the cause is
// logged here and nowhere else.
func (c *Client) Quote(ctx context.Context, fromIATA, toIATA, date string) (dto.FareQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil && c.rateLimitRPS > 0 {
		res, err := c.limiter.Allow(ctx, "limit:pricing", redis_rate.PerSecond(c.rateLimitRPS))
		if err != nil {
			slog.ErrorContext(ctx, "pricing rate limiter failed", slog.String("error", err.Error()))
			return dto.FareQuote{}, ErrPricingUnavailable
		}

		if res.Allowed == 0 {
			return dto.FareQuote{}, ErrRateLimitExceeded
		}
	}

	endpoint := fmt.Sprintf("%s/%s/%s/%s/%s", c.baseURL, c.apiKey, fromIATA, toIATA, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build pricing request", slog.String("error", err.Error()))
		return dto.FareQuote{}, ErrPricingUnavailable
	}

	req.SetBasicAuth(c.login, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "pricing request failed",
			slog.String("from", fromIATA), slog.String("to", toIATA), slog.String("error", err.Error()))
		return dto.FareQuote{}, ErrPricingUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "pricing provider returned non-200",
			slog.String("from", fromIATA), slog.String("to", toIATA), slog.Int("status", resp.StatusCode))
		return dto.FareQuote{}, ErrPricingUnavailable
	}

	var payload quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		slog.ErrorContext(ctx, "failed to decode pricing response", slog.String("error", err.Error()))
		return dto.FareQuote{}, ErrPricingUnavailable
	}

	// a payload without an options key is malformed; an empty options
	// list is a valid no-flights answer
	if payload.Options == nil {
		slog.ErrorContext(ctx, "pricing response missing options",
			slog.String("from", fromIATA), slog.String("to", toIATA))
		return dto.FareQuote{}, ErrPricingUnavailable
	}

	legs := make([]dto.RawLeg, len(payload.Options))
	for i, opt := range payload.Options {
		if !opt.complete() {
			slog.ErrorContext(ctx, "pricing option missing required fields",
				slog.String("from", fromIATA), slog.String("to", toIATA), slog.Int("option", i))
			return dto.FareQuote{}, ErrPricingUnavailable
		}

		legs[i] = dto.RawLeg{
			DepartureTime: opt.DepartureTime.Time,
			ArrivalTime:   opt.ArrivalTime.Time,
			Fare:          *opt.Price.Fare,
		}
	}

	return dto.FareQuote{
		Currency: payload.Summary.Currency,
		Legs:     legs,
	}, nil
}
