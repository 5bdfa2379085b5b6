package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/exception"
)

// DateLayout is the calendar-date format accepted by the search
// endpoint.
const DateLayout = "2006-01-02"

// SearchRequest carries the four query parameters of a round-trip
// search. IATA codes are canonicalized to uppercase during decoding.
type SearchRequest struct {
	Origin        string `json:"origin" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required"`
	ReturnDate    string `json:"return_date" validate:"required"`
}

// FromQuery populates the request from URL query parameters.
func (s *SearchRequest) FromQuery(r *http.Request) error {
	q := r.URL.Query()
	s.Origin = airport.NormalizeIATA(q.Get("origin"))
	s.Destination = airport.NormalizeIATA(q.Get("destination"))
	s.DepartureDate = q.Get("departure_date")
	s.ReturnDate = q.Get("return_date")

	return nil
}

// Validate runs the request through the search precondition chain:
// required fields, distinct airports, date format, date range. The
// first failing check wins.
func (s *SearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Origin == s.Destination {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "origin and destination cannot be the same",
		}
	}

	depDate, err := time.Parse(DateLayout, s.DepartureDate)
	if err != nil {
		return errInvalidDateFormat
	}

	retDate, err := time.Parse(DateLayout, s.ReturnDate)
	if err != nil {
		return errInvalidDateFormat
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if depDate.Before(today) || retDate.Before(depDate) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "invalid dates",
		}
	}

	return nil
}

var errInvalidDateFormat = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    fmt.Sprintf("invalid date format (use %s)", "YYYY-MM-DD"),
}

// RawLeg is one flight option exactly as the pricing provider returns
// it, before pricing enrichment.
type RawLeg struct {
	DepartureTime time.Time
	ArrivalTime   time.Time
	Fare          float64
}

// FareQuote is the pricing provider's answer for one direction.
type FareQuote struct {
	Currency string
	Legs     []RawLeg
}

// Price is the fare/fee/total breakdown of a leg or a combination.
type Price struct {
	Fare  float64 `json:"fare"`
	Fee   float64 `json:"fee"`
	Total float64 `json:"total"`
}

// LegMeta carries the flight-performance metadata derived from the
// great-circle distance of the airport pair.
type LegMeta struct {
	Range          int     `json:"range"`
	CruiseSpeedKMH int     `json:"cruise_speed_kmh"`
	CostPerKM      float64 `json:"cost_per_km"`
}

// Leg is a priced, metadata-annotated flight option.
type Leg struct {
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         Price   `json:"price"`
	Meta          LegMeta `json:"meta"`
}

// Combination pairs one outbound with one return leg.
type Combination struct {
	Outbound      Leg   `json:"outbound"`
	Return        Leg   `json:"return"`
	CombinedPrice Price `json:"combined_price"`
}

type AirportInfo struct {
	IATA  string  `json:"iata"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type DirectionSummary struct {
	DepartureDate string      `json:"departure_date"`
	From          AirportInfo `json:"from"`
	To            AirportInfo `json:"to"`
	Currency      string      `json:"currency"`
}

type Summary struct {
	Outbound DirectionSummary `json:"outbound"`
	Return   DirectionSummary `json:"return"`
}

// SearchResponse is the full search envelope: per-direction summaries
// plus every outbound/return combination ranked cheapest first.
type SearchResponse struct {
	Summary      Summary       `json:"summary"`
	Combinations []Combination `json:"combinations"`
}
