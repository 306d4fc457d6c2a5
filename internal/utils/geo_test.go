package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openride/tripgate/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	monas := models.Location{Latitude: -6.1754, Longitude: 106.8272}
	sudirman := models.Location{Latitude: -6.2088, Longitude: 106.8456}

	distance := CalculateDistance(monas, sudirman)

	// Roughly 4.2 km between the two landmarks
	assert.InDelta(t, 4.2, distance, 0.3)
}

func TestCalculateDistance_SamePoint(t *testing.T) {
	p := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	assert.Zero(t, CalculateDistance(p, p))
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.Location{Latitude: -6.1754, Longitude: 106.8272}
	b := models.Location{Latitude: -6.9147, Longitude: 107.6098}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 0.000001)
}

func TestEncodeLocation(t *testing.T) {
	p := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	hash := EncodeLocation(p, PositionHashPrecision)

	assert.Len(t, hash, PositionHashPrecision)

	// A nearby point inside the same ~5m cell encodes identically
	nearby := models.Location{Latitude: p.Latitude + 0.000001, Longitude: p.Longitude}
	assert.Equal(t, hash, EncodeLocation(nearby, PositionHashPrecision))

	// A point a few hundred meters away does not
	far := models.Location{Latitude: p.Latitude + 0.005, Longitude: p.Longitude}
	assert.NotEqual(t, hash, EncodeLocation(far, PositionHashPrecision))
}

func TestInterpolate(t *testing.T) {
	a := models.Location{Latitude: 0, Longitude: 0}
	b := models.Location{Latitude: 10, Longitude: 20}

	mid := Interpolate(a, b, 0.5)
	assert.InDelta(t, 5.0, mid.Latitude, 0.000001)
	assert.InDelta(t, 10.0, mid.Longitude, 0.000001)

	assert.Equal(t, a, Interpolate(a, b, 0))
	assert.Equal(t, b, Interpolate(a, b, 1))
}

func TestInterpolate_ClampsFraction(t *testing.T) {
	a := models.Location{Latitude: -6.1754, Longitude: 106.8272}
	b := models.Location{Latitude: -6.2088, Longitude: 106.8456}

	assert.Equal(t, a, Interpolate(a, b, -0.5))
	assert.Equal(t, b, Interpolate(a, b, 1.5))
}
