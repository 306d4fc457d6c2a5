package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/openride/tripgate/services/trip TripUC

// TripUC is the realtime trip lifecycle use case reached by the
// WebSocket handlers.
type TripUC interface {
	// CreateTrip books a new trip in REQUESTED
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// RegisterDriver places the driver in the matching directory
	RegisterDriver(ctx context.Context, driver *models.DriverSummary) error

	// DeregisterDriver removes the driver from the matching directory
	DeregisterDriver(ctx context.Context, driverID uuid.UUID, cabType string) error

	// Subscribe validates the trip and party; a customer subscribing to
	// a trip still in REQUESTED kicks off matching.
	Subscribe(ctx context.Context, tripID uuid.UUID, role models.Role, userID string) (*models.Trip, error)

	// RequestTransition advances the trip state machine on behalf of the
	// acting role. Returns the sequence number stamped on the change.
	RequestTransition(ctx context.Context, tripID uuid.UUID, target models.TripStatus, actor models.Role) (int64, error)

	// ReportPosition accepts a driver-side location sample
	ReportPosition(ctx context.Context, report *models.PositionReport) error

	// SubscribePositions returns a coalescing last-value-wins stream of
	// position samples for the trip.
	SubscribePositions(tripID uuid.UUID) <-chan models.DriverPosition

	// UnsubscribePositions releases a stream obtained from SubscribePositions
	UnsubscribePositions(tripID uuid.UUID, ch <-chan models.DriverPosition)

	// Resume returns the authoritative snapshot for a reconnecting party
	Resume(ctx context.Context, tripID uuid.UUID, role models.Role) (*models.TripSnapshot, error)

	// DriverConnected is invoked when a driver channel registers for a trip
	DriverConnected(tripID uuid.UUID)

	// DriverDisconnected starts the reconnect grace timer for the trip's driver
	DriverDisconnected(tripID uuid.UUID)
}
