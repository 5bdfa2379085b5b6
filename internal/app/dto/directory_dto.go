package dto

import (
	"net/http"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/go-chi/chi/v5"
)

// SyncRequest controls one run of the airport directory import.
// DryRun fetches and validates without touching the cache; Force
// refreshes even when a live snapshot exists.
type SyncRequest struct {
	Force  bool `json:"force"`
	DryRun bool `json:"dry_run"`
}

func (s *SyncRequest) Bind(_ *http.Request) error {
	return nil
}

// SyncResult reports what one import run did.
type SyncResult struct {
	Fetched  int    `json:"fetched"`
	Cached   int    `json:"cached"`
	Skipped  int    `json:"skipped"`
	DryRun   bool   `json:"dry_run"`
	LastSync string `json:"last_sync,omitempty"`
}

// AirportLookupRequest is the path parameter of the directory lookup
// endpoint.
type AirportLookupRequest struct {
	IATA string
}

func (a *AirportLookupRequest) FromQuery(r *http.Request) error {
	a.IATA = airport.NormalizeIATA(chi.URLParam(r, "iata"))

	return nil
}
