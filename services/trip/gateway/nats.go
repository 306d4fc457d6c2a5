package gateway

import (
	"context"
	"fmt"

	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/models"
	natspkg "github.com/openride/tripgate/internal/pkg/nats"
)

// TripGW publishes trip lifecycle events over NATS so external
// collaborators (persistence, billing, analytics) observe the same
// lifecycle the connected clients do.
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway
func NewTripGW(natsClient *natspkg.Client) *TripGW {
	return &TripGW{natsClient: natsClient}
}

// PublishStatusChanged publishes an applied lifecycle transition
func (g *TripGW) PublishStatusChanged(ctx context.Context, change *models.StatusChange) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripStatus, change); err != nil {
		return fmt.Errorf("failed to publish status change: %w", err)
	}
	return nil
}

// PublishDriverAssigned publishes a successful assignment
func (g *TripGW) PublishDriverAssigned(ctx context.Context, event *models.DriverAssignedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripAssigned, event); err != nil {
		return fmt.Errorf("failed to publish driver assignment: %w", err)
	}
	return nil
}

// PublishPositionUpdate publishes an accepted position sample
func (g *TripGW) PublishPositionUpdate(ctx context.Context, pos *models.DriverPosition) error {
	if err := g.natsClient.PublishJSON(constants.SubjectTripPosition, pos); err != nil {
		return fmt.Errorf("failed to publish position update: %w", err)
	}
	return nil
}

// PublishMatchFailed publishes a terminal matching failure
func (g *TripGW) PublishMatchFailed(ctx context.Context, event *models.MatchFailedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectMatchFailed, event); err != nil {
		return fmt.Errorf("failed to publish match failure: %w", err)
	}
	return nil
}
