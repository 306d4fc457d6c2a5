package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/openride/tripgate/internal/pkg/models"
)

// PositionHashPrecision is the geohash precision used to treat two
// samples as the same point (~5m cells at precision 9).
const PositionHashPrecision = 9

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the distance between two points in
// kilometers using the Haversine formula.
func CalculateDistance(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// Interpolate returns the point a fraction f of the way from a to b.
// Linear interpolation is accurate enough at city scale.
func Interpolate(a, b models.Location, f float64) models.Location {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return models.Location{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*f,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*f,
	}
}
