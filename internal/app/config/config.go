package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel    LogLeveler  `mapstructure:"LOG_LEVEL"`
	HTTP        HTTP        `mapstructure:",squash"`
	Redis       Redis       `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	PricingAPI  PricingAPI  `mapstructure:",squash"`
	AirportsAPI AirportsAPI `mapstructure:",squash"`
	Importer    Importer    `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type Cache struct {
	AirportTTL time.Duration `mapstructure:"AIRPORT_CACHE_TTL"`
}

// PricingAPI points at the external per-leg pricing provider. The API
// key is part of the URL path, basic auth covers the transport.
type PricingAPI struct {
	BaseURL      string        `mapstructure:"PRICING_API_BASE_URL"`
	APIKey       string        `mapstructure:"PRICING_API_KEY"`
	Login        string        `mapstructure:"PRICING_API_LOGIN"`
	Password     string        `mapstructure:"PRICING_API_PASSWORD"`
	Timeout      time.Duration `mapstructure:"PRICING_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"PRICING_API_RATE_LIMIT"`
}

type AirportsAPI struct {
	BaseURL    string        `mapstructure:"AIRPORTS_API_BASE_URL"`
	Login      string        `mapstructure:"AIRPORTS_API_LOGIN"`
	Password   string        `mapstructure:"AIRPORTS_API_PASSWORD"`
	Timeout    time.Duration `mapstructure:"AIRPORTS_API_TIMEOUT"`
	MaxRetries int           `mapstructure:"AIRPORTS_API_MAX_RETRIES"`
}

// Importer schedules the periodic airport directory refresh. Schedule
// is a standard cron expression.
type Importer struct {
	Schedule string        `mapstructure:"IMPORTER_SCHEDULE"`
	Timeout  time.Duration `mapstructure:"IMPORTER_TIMEOUT"`
}
