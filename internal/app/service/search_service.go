package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/geo"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/itinerary"
)

// DefaultCurrency is used when the pricing provider omits one.
const DefaultCurrency = "BRL"

// AirportDirectory is the cache-backed airport lookup. Misses and
// store failures are indistinguishable: both report absent.
type AirportDirectory interface {
	GetByIATA(ctx context.Context, code string) (airport.Record, bool)
	GetAll(ctx context.Context) (map[string]airport.Record, bool)
	PutAll(ctx context.Context, records map[string]airport.Record, ttl time.Duration) bool
	Clear(ctx context.Context) error
	LastSync(ctx context.Context) (time.Time, bool)
}

// PricingProvider quotes the flight options for one direction.
type PricingProvider interface {
	Quote(ctx context.Context, fromIATA, toIATA, date string) (dto.FareQuote, error)
}

type SearchService struct {
	Airports AirportDirectory
	Pricing  PricingProvider
}

func NewSearchService(airports AirportDirectory, pricing PricingProvider) *SearchService {
	return &SearchService{
		Airports: airports,
		Pricing:  pricing,
	}
}

// Search runs the round-trip pipeline in strict order, each step a
// terminal exit on failure: validate, resolve both airports, quote
// both directions sequentially, normalize every leg with the shared
// great-circle distance, combine and rank, assemble the envelope.
// There is no retry between steps.
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return dto.SearchResponse{}, fmt.Errorf("validate search request: %w", err)
	}

	origin, ok := s.Airports.GetByIATA(ctx, req.Origin)
	if !ok {
		slog.WarnContext(ctx, "airport not resolvable", slog.String("iata", req.Origin))
		return dto.SearchResponse{}, ErrUnknownAirport(req.Origin)
	}

	destination, ok := s.Airports.GetByIATA(ctx, req.Destination)
	if !ok {
		slog.WarnContext(ctx, "airport not resolvable", slog.String("iata", req.Destination))
		return dto.SearchResponse{}, ErrUnknownAirport(req.Destination)
	}

	outboundQuote, err := s.Pricing.Quote(ctx, req.Origin, req.Destination, req.DepartureDate)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("quote outbound legs: %w", err)
	}

	returnQuote, err := s.Pricing.Quote(ctx, req.Destination, req.Origin, req.ReturnDate)
	if err != nil {
		return dto.SearchResponse{}, fmt.Errorf("quote return legs: %w", err)
	}

	// one distance for the pair; both directions share it
	distance := geo.Haversine(origin.Lat, origin.Lon, destination.Lat, destination.Lon)

	outboundLegs := itinerary.NormalizeLegs(outboundQuote.Legs, distance)
	returnLegs := itinerary.NormalizeLegs(returnQuote.Legs, distance)

	combinations := itinerary.Combine(outboundLegs, returnLegs)

	slog.InfoContext(ctx, "search completed",
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
		slog.Int("outbound_legs", len(outboundLegs)),
		slog.Int("return_legs", len(returnLegs)),
		slog.Int("combinations", len(combinations)))

	return dto.SearchResponse{
		Summary: dto.Summary{
			Outbound: dto.DirectionSummary{
				DepartureDate: req.DepartureDate,
				From:          airportInfo(origin),
				To:            airportInfo(destination),
				Currency:      currencyOrDefault(outboundQuote.Currency),
			},
			Return: dto.DirectionSummary{
				DepartureDate: req.ReturnDate,
				From:          airportInfo(destination),
				To:            airportInfo(origin),
				Currency:      currencyOrDefault(returnQuote.Currency),
			},
		},
		Combinations: combinations,
	}, nil
}

func airportInfo(record airport.Record) dto.AirportInfo {
	return dto.AirportInfo{
		IATA:  record.IATA,
		City:  record.City,
		State: record.State,
		Lat:   record.Lat,
		Lon:   record.Lon,
	}
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}

	return currency
}
