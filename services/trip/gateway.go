package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/openride/tripgate/services/trip TripGW,Notifier

// TripGW publishes trip lifecycle events for external collaborators
type TripGW interface {
	PublishStatusChanged(ctx context.Context, change *models.StatusChange) error
	PublishDriverAssigned(ctx context.Context, event *models.DriverAssignedEvent) error
	PublishPositionUpdate(ctx context.Context, pos *models.DriverPosition) error
	PublishMatchFailed(ctx context.Context, event *models.MatchFailedEvent) error
}

// Notifier pushes events to the channels registered for a trip.
// Implemented by the WebSocket connection registry; a missing channel
// is not an error.
type Notifier interface {
	NotifyTrip(tripID uuid.UUID, role models.Role, event string, data interface{})
	NotifyBoth(tripID uuid.UUID, event string, data interface{})
	HasChannel(tripID uuid.UUID, role models.Role) bool
}
