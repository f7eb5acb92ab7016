package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// Mean earth radius.
const earthRadiusKm = 6371.0088

// DistanceKm is the great-circle distance rounded to metres.
func DistanceKm(a, b Coordinate) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lon).Distance(s2.LatLngFromDegrees(b.Lat, b.Lon))
	return math.Round(angle.Radians()*earthRadiusKm*1000) / 1000
}
