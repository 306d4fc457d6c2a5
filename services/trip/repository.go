package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/openride/tripgate/services/trip TripRepo,DriverDirectory,PositionCache

// TripRepo is the persistence collaborator owning trip records
type TripRepo interface {
	Load(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	Persist(ctx context.Context, trip *models.Trip) error
	Create(ctx context.Context, trip *models.Trip) error

	// ActiveTripCounts returns the number of non-terminal trips per
	// driver for the given drivers. Drivers with no active trips are
	// absent from the result.
	ActiveTripCounts(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// DriverDirectory locates candidate drivers and arbitrates exclusive
// driver holds across gateway instances.
type DriverDirectory interface {
	// FindCandidates returns online, available drivers of the cab type
	// within radiusKm of the point, nearest first.
	FindCandidates(ctx context.Context, point models.Location, radiusKm float64, cabType string) ([]models.DriverSummary, error)

	// TryHold atomically claims the driver for the trip; false when the
	// driver is already held.
	TryHold(ctx context.Context, driverID, tripID uuid.UUID) (bool, error)

	// Release frees a held driver
	Release(ctx context.Context, driverID uuid.UUID) error

	// GetDriver returns the directory profile for one driver
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverSummary, error)

	// UpsertDriver places or refreshes a driver in the geo index
	UpsertDriver(ctx context.Context, driver *models.DriverSummary) error

	// RemoveDriver takes a driver out of the geo index
	RemoveDriver(ctx context.Context, driverID uuid.UUID, cabType string) error
}

// PositionCache stores the most recent position sample per trip so a
// reconnecting customer sees the last known point immediately.
type PositionCache interface {
	Store(ctx context.Context, pos *models.DriverPosition) error
	Last(ctx context.Context, tripID uuid.UUID) (*models.DriverPosition, error)
	Evict(ctx context.Context, tripID uuid.UUID) error
}
