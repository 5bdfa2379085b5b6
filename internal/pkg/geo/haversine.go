// Package geo provides great-circle distance math for airport pairs.
package geo

import "math"

// EarthRadiusKM is the mean Earth radius used by the haversine formula.
const EarthRadiusKM = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// coordinate pairs. It is symmetric and returns zero for identical
// points. NaN coordinates propagate to a NaN result; callers validate
// coordinates before getting here.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
