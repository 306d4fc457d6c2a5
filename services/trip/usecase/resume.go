package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
)

// Resume reconciles a (re)connecting client with authoritative state.
// The returned snapshot carries the current sequence number so the
// client can discard any buffered messages at or below it.
func (uc *TripUC) Resume(ctx context.Context, tripID uuid.UUID, role models.Role) (*models.TripSnapshot, error) {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	snapshot := &models.TripSnapshot{
		TripID:   st.trip.ID,
		Status:   st.trip.Status,
		Sequence: st.trip.Sequence,
	}
	driverID := st.trip.DriverID
	st.mu.Unlock()

	if driverID != nil {
		driver, err := uc.directory.GetDriver(ctx, *driverID)
		if err != nil {
			logger.Warn("failed to load driver summary for snapshot",
				logger.String("trip_id", tripID.String()),
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		} else {
			snapshot.Driver = driver
		}
	}

	if !snapshot.Status.Terminal() {
		snapshot.Position = uc.relay.Last(ctx, tripID)
	}

	logger.Debug("snapshot served",
		logger.String("trip_id", tripID.String()),
		logger.String("role", string(role)),
		logger.Int64("sequence", snapshot.Sequence))

	return snapshot, nil
}
