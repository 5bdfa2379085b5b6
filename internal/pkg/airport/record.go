package airport

import (
	"fmt"
	"strings"
	"unicode"
)

// Record is one entry of the airport directory as delivered by the
// external sync API, e.g.
// "GRU": {"iata": "GRU", "city": "Sao Paulo", "lat": -23.432075, "lon": -46.469511, "state": "SP"}
type Record struct {
	IATA  string  `json:"iata"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// NormalizeIATA returns the canonical form of an IATA code: trimmed
// and uppercased.
func NormalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks the record once at the import boundary so the rest
// of the service can rely on code format and coordinate ranges.
func (r Record) Validate() error {
	if len(r.IATA) != 3 {
		return fmt.Errorf("iata code must be 3 letters, got %q", r.IATA)
	}

	for _, c := range r.IATA {
		if !unicode.IsUpper(c) || !unicode.IsLetter(c) {
			return fmt.Errorf("iata code must be uppercase letters, got %q", r.IATA)
		}
	}

	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("airport %s has empty city", r.IATA)
	}

	if r.Lat < -90 || r.Lat > 90 {
		return fmt.Errorf("airport %s latitude out of range: %f", r.IATA, r.Lat)
	}

	if r.Lon < -180 || r.Lon > 180 {
		return fmt.Errorf("airport %s longitude out of range: %f", r.IATA, r.Lon)
	}

	return nil
}
