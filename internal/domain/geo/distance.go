// Package geo computes great-circle distances between coordinates.
package geo

import (
	"math"

	"github.com/okian/volunteer-match/internal/domain/model"
)

// EarthRadiusMiles is the mean Earth radius used by Distance.
const EarthRadiusMiles = 3959.0

// Distance returns the Haversine distance in miles between two points given
// in decimal degrees. Inputs are not range-checked.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a just past 1 for near antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// Between returns the distance between a and b, and false if either is nil.
func Between(a, b *model.Coordinates) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return Distance(a.Lat, a.Lng, b.Lat, b.Lng), true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
