package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// WSMessage represents a WebSocket message envelope
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClaims are the JWT claims carried by a connecting party
type WebSocketClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// SubscribeRequest opens a trip channel for the authenticated party
type SubscribeRequest struct {
	TripID uuid.UUID `json:"trip_id"`
}

// TransitionRequest asks the state machine to advance a trip
type TransitionRequest struct {
	TripID uuid.UUID  `json:"trip_id"`
	Status TripStatus `json:"status"`
}

// PositionReport is a driver-side location sample
type PositionReport struct {
	TripID    uuid.UUID `json:"trip_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   *float64  `json:"heading,omitempty"`
}

// ResumeRequest asks for the authoritative snapshot after a reconnect
type ResumeRequest struct {
	TripID uuid.UUID `json:"trip_id"`
}

// DriverAssignedEvent is pushed to both channels when matching succeeds
type DriverAssignedEvent struct {
	TripID   uuid.UUID     `json:"trip_id"`
	Driver   DriverSummary `json:"driver"`
	Sequence int64         `json:"sequence"`
}

// MatchFailedEvent is the single terminal event on irrecoverable match failure
type MatchFailedEvent struct {
	TripID uuid.UUID `json:"trip_id"`
	Reason string    `json:"reason"`
}
