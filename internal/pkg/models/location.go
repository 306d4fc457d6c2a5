package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// DriverPosition is the most recent position sample for a trip.
// Superseded samples are discarded, never queued.
type DriverPosition struct {
	TripID     uuid.UUID `json:"trip_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    *float64  `json:"heading,omitempty"`
	Sequence   int64     `json:"sequence"`
	Simulated  bool      `json:"-"`
	ReceivedAt time.Time `json:"received_at"`
}
