package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
)

// AirportsFetcher pulls the full directory from the external sync API.
type AirportsFetcher interface {
	FetchAirports(ctx context.Context) (map[string]airport.Record, error)
}

// DirectoryService owns the airport directory lifecycle: periodic and
// on-demand imports, cache clearing, and single-airport lookups for
// the admin surface.
type DirectoryService struct {
	Source   AirportsFetcher
	Airports AirportDirectory
	CacheTTL time.Duration
}

func NewDirectoryService(source AirportsFetcher, airports AirportDirectory, cacheTTL time.Duration) *DirectoryService {
	return &DirectoryService{
		Source:   source,
		Airports: airports,
		CacheTTL: cacheTTL,
	}
}

// Import refreshes the directory cache from the external API. Without
// Force the call is a no-op while a live snapshot exists. Records that
// fail validation are skipped with a warning; DryRun reports what a
// real run would do without writing anything.
func (s *DirectoryService) Import(ctx context.Context, req dto.SyncRequest) (dto.SyncResult, error) {
	if !req.Force && !req.DryRun {
		if current, ok := s.Airports.GetAll(ctx); ok {
			slog.InfoContext(ctx, "airport directory already cached, skipping import",
				slog.Int("airports", len(current)))

			result := dto.SyncResult{Fetched: len(current), Cached: len(current)}
			if ts, ok := s.Airports.LastSync(ctx); ok {
				result.LastSync = ts.Format(time.RFC3339)
			}

			return result, nil
		}
	}

	fetched, err := s.Source.FetchAirports(ctx)
	if err != nil {
		return dto.SyncResult{}, fmt.Errorf("fetch airport directory: %w", err)
	}

	valid := make(map[string]airport.Record, len(fetched))
	skipped := 0

	for _, record := range fetched {
		record.IATA = airport.NormalizeIATA(record.IATA)

		if err := record.Validate(); err != nil {
			slog.WarnContext(ctx, "skipping invalid airport record", slog.String("error", err.Error()))
			skipped++
			continue
		}

		valid[record.IATA] = record
	}

	result := dto.SyncResult{
		Fetched: len(fetched),
		Skipped: skipped,
		DryRun:  req.DryRun,
	}

	if req.DryRun {
		slog.InfoContext(ctx, "dry run: directory not written",
			slog.Int("fetched", result.Fetched), slog.Int("skipped", skipped))
		return result, nil
	}

	if !s.Airports.PutAll(ctx, valid, s.CacheTTL) {
		return dto.SyncResult{}, ErrImportFailed
	}

	result.Cached = len(valid)
	if ts, ok := s.Airports.LastSync(ctx); ok {
		result.LastSync = ts.Format(time.RFC3339)
	}

	slog.InfoContext(ctx, "airport import completed",
		slog.Int("fetched", result.Fetched),
		slog.Int("cached", result.Cached),
		slog.Int("skipped", result.Skipped))

	return result, nil
}

// ClearCache drops both cache tiers and the last-sync marker.
func (s *DirectoryService) ClearCache(ctx context.Context) error {
	if err := s.Airports.Clear(ctx); err != nil {
		return fmt.Errorf("clear airport cache: %w", err)
	}

	slog.InfoContext(ctx, "airport cache cleared")

	return nil
}

// GetAirport resolves one airport for the admin lookup endpoint.
func (s *DirectoryService) GetAirport(ctx context.Context, iata string) (dto.AirportInfo, error) {
	record, ok := s.Airports.GetByIATA(ctx, iata)
	if !ok {
		return dto.AirportInfo{}, ErrAirportNotFound(airport.NormalizeIATA(iata))
	}

	return airportInfo(record), nil
}

// RunScheduledImport is the cron job body: a forced refresh with its
// own timeout, never letting a failure propagate into the scheduler.
func (s *DirectoryService) RunScheduledImport(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	slog.InfoContext(ctx, "scheduled airport import started")

	result, err := s.Import(ctx, dto.SyncRequest{Force: true})
	if err != nil {
		slog.ErrorContext(ctx, "scheduled airport import failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return
	}

	slog.InfoContext(ctx, "scheduled airport import finished",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("cached", result.Cached),
		slog.Int("skipped", result.Skipped))
}
