// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import (
	"math"

	"vibescore/internal/domain"
)

// EarthRadiusM is the mean Earth radius in meters.
const EarthRadiusM = 6371000.0

// Distance returns the haversine distance in meters between a and b.
// NaN inputs propagate to the result.
func Distance(a, b domain.Coordinate) float64 {
	phi1 := deg2rad(a.Latitude)
	phi2 := deg2rad(b.Latitude)
	dPhi := phi2 - phi1
	dLambda := deg2rad(b.Longitude - a.Longitude)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusM * c
}

// Within reports whether distance falls inside radius; the boundary counts as inside.
func Within(distanceM, radiusM float64) bool {
	return distanceM <= radiusM
}

func ValidCoordinate(c domain.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Offset moves c by northM meters north and eastM meters east.
// Good enough for the short distances used around event grounds.
func Offset(c domain.Coordinate, northM, eastM float64) domain.Coordinate {
	dLat := northM / EarthRadiusM
	dLng := eastM / (EarthRadiusM * math.Cos(deg2rad(c.Latitude)))
	return domain.Coordinate{
		Latitude:  c.Latitude + rad2deg(dLat),
		Longitude: c.Longitude + rad2deg(dLng),
	}
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func rad2deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
