package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// transitionTable lists every legal edge and the roles allowed to
// trigger it. The lifecycle is forward-only; CANCELLED is reachable
// from any non-terminal state by either party.
var transitionTable = map[models.TripStatus]map[models.TripStatus][]models.Role{
	models.TripStatusRequested: {
		models.TripStatusDriverAssigned: {models.RoleSystem},
		models.TripStatusCancelled:      {models.RoleCustomer, models.RoleDriver, models.RoleSystem},
	},
	models.TripStatusDriverAssigned: {
		models.TripStatusDriverEnRoute: {models.RoleDriver},
		models.TripStatusCancelled:     {models.RoleCustomer, models.RoleDriver, models.RoleSystem},
	},
	models.TripStatusDriverEnRoute: {
		models.TripStatusDriverArrived: {models.RoleDriver},
		models.TripStatusCancelled:     {models.RoleCustomer, models.RoleDriver, models.RoleSystem},
	},
	models.TripStatusDriverArrived: {
		models.TripStatusInProgress: {models.RoleDriver},
		models.TripStatusCancelled:  {models.RoleCustomer, models.RoleDriver, models.RoleSystem},
	},
	models.TripStatusInProgress: {
		models.TripStatusCompleted: {models.RoleDriver, models.RoleSystem},
		models.TripStatusCancelled: {models.RoleCustomer, models.RoleDriver, models.RoleSystem},
	},
}

// statusRank orders the forward lifecycle for comparisons
var statusRank = map[models.TripStatus]int{
	models.TripStatusRequested:      0,
	models.TripStatusDriverAssigned: 1,
	models.TripStatusDriverEnRoute:  2,
	models.TripStatusDriverArrived:  3,
	models.TripStatusInProgress:     4,
	models.TripStatusCompleted:      5,
	models.TripStatusCancelled:      5,
}

// RequestTransition validates and applies one lifecycle transition.
// Invalid transitions mutate nothing and are reported to the caller;
// they are never fatal to the channel.
func (uc *TripUC) RequestTransition(ctx context.Context, tripID uuid.UUID, target models.TripStatus, actor models.Role) (int64, error) {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return 0, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	current := st.trip.Status
	allowedActors, legal := transitionTable[current][target]
	if !legal {
		return 0, fmt.Errorf("%w: %s -> %s", trip.ErrInvalidTransition, current, target)
	}
	if !roleAllowed(allowedActors, actor) {
		return 0, fmt.Errorf("%w: %s may not trigger %s -> %s", trip.ErrInvalidTransition, actor, current, target)
	}

	return uc.applyTransition(ctx, st, target, actor)
}

// applyTransition updates the trip, persists it, and broadcasts the
// change. Callers hold st.mu and have already validated the edge.
func (uc *TripUC) applyTransition(ctx context.Context, st *tripState, target models.TripStatus, actor models.Role) (int64, error) {
	prevStatus := st.trip.Status
	st.trip.Status = target
	st.trip.Sequence++

	if err := uc.repo.Persist(ctx, st.trip); err != nil {
		st.trip.Status = prevStatus
		st.trip.Sequence--
		return 0, fmt.Errorf("persisting trip %s: %w", st.trip.ID, err)
	}

	change := &models.StatusChange{
		TripID:   st.trip.ID,
		Status:   target,
		Sequence: st.trip.Sequence,
		Actor:    actor,
		At:       time.Now(),
	}

	uc.notifier.NotifyBoth(st.trip.ID, constants.EventStatusChanged, change)
	if err := uc.gw.PublishStatusChanged(ctx, change); err != nil {
		logger.Warn("failed to publish status change",
			logger.String("trip_id", st.trip.ID.String()),
			logger.Err(err))
	}

	logger.Info("trip transition applied",
		logger.String("trip_id", st.trip.ID.String()),
		logger.String("from", string(prevStatus)),
		logger.String("to", string(target)),
		logger.Int64("sequence", st.trip.Sequence),
		logger.String("actor", string(actor)))

	switch {
	case target == models.TripStatusInProgress:
		uc.fallback.Stop(st.trip.ID)
	case target.Terminal():
		uc.finishTrip(ctx, st.trip)
	}

	return st.trip.Sequence, nil
}

// finishTrip releases the assignment and evicts all per-trip state
// once a terminal status is entered. Callers hold st.mu.
func (uc *TripUC) finishTrip(ctx context.Context, t *models.Trip) {
	uc.fallback.Stop(t.ID)
	uc.cancelGraceTimer(t.ID)

	if driverID, held := uc.assignments.ReleaseTrip(t.ID); held {
		if err := uc.directory.Release(ctx, driverID); err != nil {
			logger.Warn("failed to release driver hold",
				logger.String("driver_id", driverID.String()),
				logger.Err(err))
		}
	}

	uc.relay.Evict(t.ID)

	// the state holder and exclusion set die with the trip; a tombstone
	// keeps late samples dropped until stragglers go quiet
	uc.mu.Lock()
	delete(uc.states, t.ID)
	delete(uc.excluded, t.ID)
	uc.finished[t.ID] = time.Now()
	for id, at := range uc.finished {
		if time.Since(at) > finishedTTL {
			delete(uc.finished, id)
		}
	}
	uc.mu.Unlock()
}

// revertToRequested puts a trip back into matching after a released
// assignment (driver never reconnected). Internal system operation:
// the public table is forward-only, so this bypasses it, but still
// bumps the sequence and broadcasts so clients converge.
func (uc *TripUC) revertToRequested(ctx context.Context, tripID uuid.UUID) error {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.trip.Status != models.TripStatusDriverAssigned && st.trip.Status != models.TripStatusDriverEnRoute {
		return fmt.Errorf("%w: %s -> %s", trip.ErrInvalidTransition, st.trip.Status, models.TripStatusRequested)
	}

	prevStatus := st.trip.Status
	prevDriver := st.trip.DriverID
	st.trip.Status = models.TripStatusRequested
	st.trip.DriverID = nil
	st.trip.Sequence++

	if err := uc.repo.Persist(ctx, st.trip); err != nil {
		st.trip.Status = prevStatus
		st.trip.DriverID = prevDriver
		st.trip.Sequence--
		return fmt.Errorf("persisting trip %s: %w", tripID, err)
	}

	change := &models.StatusChange{
		TripID:   tripID,
		Status:   models.TripStatusRequested,
		Sequence: st.trip.Sequence,
		Actor:    models.RoleSystem,
		At:       time.Now(),
	}
	uc.notifier.NotifyBoth(tripID, constants.EventStatusChanged, change)
	if err := uc.gw.PublishStatusChanged(ctx, change); err != nil {
		logger.Warn("failed to publish status change",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	uc.fallback.Stop(tripID)
	return nil
}

func roleAllowed(allowed []models.Role, actor models.Role) bool {
	for _, r := range allowed {
		if r == actor {
			return true
		}
	}
	return false
}
