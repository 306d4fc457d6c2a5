package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested      TripStatus = "REQUESTED"
	TripStatusDriverAssigned TripStatus = "DRIVER_ASSIGNED"
	TripStatusDriverEnRoute  TripStatus = "DRIVER_EN_ROUTE"
	TripStatusDriverArrived  TripStatus = "DRIVER_ARRIVED"
	TripStatusInProgress     TripStatus = "IN_PROGRESS"
	TripStatusCompleted      TripStatus = "COMPLETED"
	TripStatusCancelled      TripStatus = "CANCELLED"
)

// Terminal reports whether the status ends the trip lifecycle.
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// Role identifies which party is acting on a trip channel
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleSystem   Role = "system"
)

// Fare is the immutable fare snapshot taken when the trip was quoted
type Fare struct {
	Base     float64 `json:"base" db:"fare_base"`
	Distance float64 `json:"distance" db:"fare_distance"`
	Time     float64 `json:"time" db:"fare_time"`
	Tax      float64 `json:"tax" db:"fare_tax"`
	Total    float64 `json:"total" db:"fare_total"`
}

// Trip represents one customer journey from request to completion or cancellation
type Trip struct {
	ID          uuid.UUID  `json:"trip_id" db:"id"`
	CustomerID  uuid.UUID  `json:"customer_id" db:"customer_id"`
	Pickup      Location   `json:"pickup"`
	Destination Location   `json:"destination"`
	CabType     string     `json:"cab_type" db:"cab_type"`
	Fare        Fare       `json:"fare"`
	Status      TripStatus `json:"status" db:"status"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Sequence    int64      `json:"sequence" db:"sequence"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// TripDTO flattens nested structs for database operations
type TripDTO struct {
	ID             uuid.UUID  `db:"id"`
	CustomerID     uuid.UUID  `db:"customer_id"`
	PickupLat      float64    `db:"pickup_lat"`
	PickupLng      float64    `db:"pickup_lng"`
	DestinationLat float64    `db:"destination_lat"`
	DestinationLng float64    `db:"destination_lng"`
	CabType        string     `db:"cab_type"`
	FareBase       float64    `db:"fare_base"`
	FareDistance   float64    `db:"fare_distance"`
	FareTime       float64    `db:"fare_time"`
	FareTax        float64    `db:"fare_tax"`
	FareTotal      float64    `db:"fare_total"`
	Status         TripStatus `db:"status"`
	DriverID       *uuid.UUID `db:"driver_id"`
	Sequence       int64      `db:"sequence"`
	CreatedAt      time.Time  `db:"created_at"`
}

// ToDTO converts a Trip to its flat database representation
func (t *Trip) ToDTO() *TripDTO {
	return &TripDTO{
		ID:             t.ID,
		CustomerID:     t.CustomerID,
		PickupLat:      t.Pickup.Latitude,
		PickupLng:      t.Pickup.Longitude,
		DestinationLat: t.Destination.Latitude,
		DestinationLng: t.Destination.Longitude,
		CabType:        t.CabType,
		FareBase:       t.Fare.Base,
		FareDistance:   t.Fare.Distance,
		FareTime:       t.Fare.Time,
		FareTax:        t.Fare.Tax,
		FareTotal:      t.Fare.Total,
		Status:         t.Status,
		DriverID:       t.DriverID,
		Sequence:       t.Sequence,
		CreatedAt:      t.CreatedAt,
	}
}

// ToTrip converts a TripDTO back to the domain model
func (dto *TripDTO) ToTrip() *Trip {
	return &Trip{
		ID:         dto.ID,
		CustomerID: dto.CustomerID,
		Pickup: Location{
			Latitude:  dto.PickupLat,
			Longitude: dto.PickupLng,
		},
		Destination: Location{
			Latitude:  dto.DestinationLat,
			Longitude: dto.DestinationLng,
		},
		CabType: dto.CabType,
		Fare: Fare{
			Base:     dto.FareBase,
			Distance: dto.FareDistance,
			Time:     dto.FareTime,
			Tax:      dto.FareTax,
			Total:    dto.FareTotal,
		},
		Status:    dto.Status,
		DriverID:  dto.DriverID,
		Sequence:  dto.Sequence,
		CreatedAt: dto.CreatedAt,
	}
}

// DriverSummary is what the directory knows about a candidate driver
type DriverSummary struct {
	ID          uuid.UUID `json:"driver_id"`
	Name        string    `json:"name"`
	CabType     string    `json:"cab_type"`
	PlateNumber string    `json:"plate_number"`
	Location    Location  `json:"location"`
	DistanceKm  float64   `json:"distance_km"`
	ActiveTrips int       `json:"active_trips"`
}

// Assignment binds exactly one driver to exactly one active trip
type Assignment struct {
	TripID    uuid.UUID `json:"trip_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusChange is emitted on every applied transition
type StatusChange struct {
	TripID   uuid.UUID  `json:"trip_id"`
	Status   TripStatus `json:"status"`
	Sequence int64      `json:"sequence"`
	Actor    Role       `json:"actor"`
	At       time.Time  `json:"at"`
}

// TripSnapshot is returned to a reconnecting client so it can discard
// any buffered messages with a sequence at or below Sequence.
type TripSnapshot struct {
	TripID   uuid.UUID       `json:"trip_id"`
	Status   TripStatus      `json:"status"`
	Sequence int64           `json:"sequence"`
	Driver   *DriverSummary  `json:"driver,omitempty"`
	Position *DriverPosition `json:"position,omitempty"`
}
