// Package itinerary prices raw provider legs and builds the ranked
// outbound/return combination set.
package itinerary

import (
	"math"
	"time"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
)

// Pricing constants. The fee is a percentage of the fare with a hard
// floor, in the currency unit of the fare.
const (
	FeeRate  = 0.10
	FeeFloor = 40.0
)

// NormalizeLeg turns one raw provider leg into a priced leg using the
// shared great-circle distance of the airport pair. Degenerate inputs
// (non-positive duration, zero distance) zero out the affected metric
// instead of failing.
func NormalizeLeg(raw dto.RawLeg, distanceKM float64) dto.Leg {
	fee := math.Max(FeeRate*raw.Fare, FeeFloor)
	total := raw.Fare + fee

	durationHours := raw.ArrivalTime.Sub(raw.DepartureTime).Hours()

	cruiseSpeed := 0
	if durationHours > 0 {
		cruiseSpeed = int(math.Round(distanceKM / durationHours))
	}

	costPerKM := 0.0
	if distanceKM > 0 {
		costPerKM = math.Round(raw.Fare/distanceKM*100) / 100
	}

	return dto.Leg{
		DepartureTime: raw.DepartureTime.Format(time.RFC3339),
		ArrivalTime:   raw.ArrivalTime.Format(time.RFC3339),
		Price: dto.Price{
			Fare:  raw.Fare,
			Fee:   fee,
			Total: total,
		},
		Meta: dto.LegMeta{
			Range:          int(math.Round(distanceKM)),
			CruiseSpeedKMH: cruiseSpeed,
			CostPerKM:      costPerKM,
		},
	}
}

// NormalizeLegs applies NormalizeLeg to every leg of one direction.
func NormalizeLegs(raws []dto.RawLeg, distanceKM float64) []dto.Leg {
	legs := make([]dto.Leg, len(raws))
	for i, raw := range raws {
		legs[i] = NormalizeLeg(raw, distanceKM)
	}

	return legs
}
