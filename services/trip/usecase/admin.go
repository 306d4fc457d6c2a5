package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
)

// CreateTrip books a new trip. The booking starts in REQUESTED with
// sequence zero; matching begins once the customer channel subscribes.
func (uc *TripUC) CreateTrip(ctx context.Context, t *models.Trip) error {
	if t.CustomerID == uuid.Nil {
		return fmt.Errorf("customer id is required")
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	t.Status = models.TripStatusRequested
	t.DriverID = nil
	t.Sequence = 0
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return err
	}

	logger.Info("trip created",
		logger.String("trip_id", t.ID.String()),
		logger.String("customer_id", t.CustomerID.String()),
		logger.String("cab_type", t.CabType))

	return nil
}

// RegisterDriver places or refreshes the driver in the matching directory
func (uc *TripUC) RegisterDriver(ctx context.Context, driver *models.DriverSummary) error {
	if driver.ID == uuid.Nil {
		return fmt.Errorf("driver id is required")
	}
	if driver.CabType == "" {
		return fmt.Errorf("cab type is required")
	}
	return uc.directory.UpsertDriver(ctx, driver)
}

// DeregisterDriver takes the driver out of the matching directory
func (uc *TripUC) DeregisterDriver(ctx context.Context, driverID uuid.UUID, cabType string) error {
	return uc.directory.RemoveDriver(ctx, driverID, cabType)
}
