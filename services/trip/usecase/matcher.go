package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// ensureMatch starts matching for the trip unless a coordinator run is
// already in flight.
func (uc *TripUC) ensureMatch(tripID uuid.UUID) {
	uc.mu.Lock()
	if uc.matching[tripID] {
		uc.mu.Unlock()
		return
	}
	uc.matching[tripID] = true
	uc.mu.Unlock()

	go func() {
		defer logger.RecoverPanic("matcher")
		defer func() {
			uc.mu.Lock()
			delete(uc.matching, tripID)
			uc.mu.Unlock()
		}()

		if _, err := uc.RequestMatch(context.Background(), tripID); err != nil {
			logger.Warn("matching finished without assignment",
				logger.String("trip_id", tripID.String()),
				logger.Err(err))
		}
	}()
}

// RequestMatch selects one driver for the trip and performs an
// exclusive assignment. Returns ErrNoDriverAvailable when no candidate
// could be held within the matching window; the trip then stays in
// REQUESTED and the customer receives a single match_failed event.
func (uc *TripUC) RequestMatch(ctx context.Context, tripID uuid.UUID) (*models.Assignment, error) {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	if st.trip.Status != models.TripStatusRequested {
		st.mu.Unlock()
		return nil, fmt.Errorf("%w: trip %s is %s", trip.ErrInvalidTransition, tripID, st.trip.Status)
	}
	pickup := st.trip.Pickup
	cabType := st.trip.CabType
	st.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.Match.TimeoutSec)*time.Second)
	defer cancel()

	retry := time.Duration(uc.cfg.Match.RetryIntervalSec) * time.Second

	for {
		assignment, err := uc.trySweep(ctx, tripID, pickup, cabType)
		if err == nil {
			return assignment, nil
		}
		if !errors.Is(err, trip.ErrNoDriverAvailable) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			uc.reportMatchFailed(tripID, "no_driver_available")
			return nil, trip.ErrNoDriverAvailable
		case <-time.After(retry):
		}
	}
}

// trySweep runs one pass over the current candidate set
func (uc *TripUC) trySweep(ctx context.Context, tripID uuid.UUID, pickup models.Location, cabType string) (*models.Assignment, error) {
	candidates, err := uc.directory.FindCandidates(ctx, pickup, uc.cfg.Match.SearchRadiusKm, cabType)
	if err != nil {
		if ctx.Err() != nil {
			return nil, trip.ErrNoDriverAvailable
		}
		// directory hiccups are retried until the window closes
		logger.Warn("candidate lookup failed",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		return nil, trip.ErrNoDriverAvailable
	}

	uc.refreshActiveCounts(ctx, candidates)
	sortCandidates(candidates)

	for i := range candidates {
		cand := candidates[i]
		if uc.isExcluded(tripID, cand.ID) {
			continue
		}

		held, err := uc.directory.TryHold(ctx, cand.ID, tripID)
		if err != nil {
			logger.Warn("driver hold attempt failed",
				logger.String("driver_id", cand.ID.String()),
				logger.Err(err))
			continue
		}
		if !held {
			continue
		}

		assignment, err := uc.assignments.Acquire(cand.ID, tripID)
		if errors.Is(err, trip.ErrAssignmentConflict) {
			// lost the slot race; absorbed, next candidate
			uc.releaseDriver(ctx, cand.ID)
			continue
		}

		if err := uc.assignDriver(ctx, tripID, &cand); err != nil {
			uc.assignments.Release(cand.ID)
			uc.releaseDriver(ctx, cand.ID)
			if ctx.Err() != nil {
				return nil, trip.ErrNoDriverAvailable
			}
			logger.Warn("assignment transition failed, driver released",
				logger.String("trip_id", tripID.String()),
				logger.String("driver_id", cand.ID.String()),
				logger.Err(err))
			continue
		}

		return assignment, nil
	}

	return nil, trip.ErrNoDriverAvailable
}

// assignDriver records the driver on the trip and drives the
// REQUESTED -> DRIVER_ASSIGNED transition. The assignment already
// exists, so a failed transition releases the driver immediately.
func (uc *TripUC) assignDriver(ctx context.Context, tripID uuid.UUID, cand *models.DriverSummary) error {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return err
	}

	st.mu.Lock()
	if st.trip.Status != models.TripStatusRequested {
		st.mu.Unlock()
		return fmt.Errorf("%w: trip %s is %s", trip.ErrInvalidTransition, tripID, st.trip.Status)
	}
	driverID := cand.ID
	st.trip.DriverID = &driverID
	seq, err := uc.applyTransition(ctx, st, models.TripStatusDriverAssigned, models.RoleSystem)
	if err != nil {
		st.trip.DriverID = nil
		st.mu.Unlock()
		return err
	}
	tripCopy := *st.trip
	st.mu.Unlock()

	event := &models.DriverAssignedEvent{
		TripID:   tripID,
		Driver:   *cand,
		Sequence: seq,
	}
	uc.notifier.NotifyBoth(tripID, constants.EventDriverAssigned, event)
	if err := uc.gw.PublishDriverAssigned(ctx, event); err != nil {
		logger.Warn("failed to publish driver assignment",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	uc.fallback.Arm(&tripCopy)

	logger.Info("driver assigned",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", cand.ID.String()),
		logger.Float64("distance_km", cand.DistanceKm))

	return nil
}

// DriverConnected cancels any pending reconnect grace timer
func (uc *TripUC) DriverConnected(tripID uuid.UUID) {
	uc.cancelGraceTimer(tripID)
}

// DriverDisconnected starts the reconnect grace timer. If the driver
// does not return before it fires, the assignment is released and the
// trip is re-matched with the dropped driver excluded.
func (uc *TripUC) DriverDisconnected(tripID uuid.UUID) {
	status, ok := uc.currentStatus(tripID)
	if !ok {
		return
	}
	if status != models.TripStatusDriverAssigned && status != models.TripStatusDriverEnRoute {
		return
	}

	grace := time.Duration(uc.cfg.Match.ReconnectGrace) * time.Second

	uc.mu.Lock()
	if timer, ok := uc.graceTimers[tripID]; ok {
		timer.Stop()
	}
	uc.graceTimers[tripID] = time.AfterFunc(grace, func() {
		defer logger.RecoverPanic("grace_timer")
		uc.expireDriver(tripID)
	})
	uc.mu.Unlock()

	logger.Info("driver channel dropped, grace timer started",
		logger.String("trip_id", tripID.String()),
		logger.Duration("grace", grace))
}

// expireDriver runs when the grace timer fires without a reconnect
func (uc *TripUC) expireDriver(tripID uuid.UUID) {
	uc.cancelGraceTimer(tripID)

	if uc.notifier.HasChannel(tripID, models.RoleDriver) {
		return
	}

	status, ok := uc.currentStatus(tripID)
	if !ok || (status != models.TripStatusDriverAssigned && status != models.TripStatusDriverEnRoute) {
		return
	}

	ctx := context.Background()

	driverID, held := uc.assignments.ReleaseTrip(tripID)
	if held {
		uc.releaseDriver(ctx, driverID)
		uc.excludeDriver(tripID, driverID)
	}

	if err := uc.revertToRequested(ctx, tripID); err != nil {
		logger.Error("failed to revert trip for re-match",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		return
	}

	logger.Info("assignment released after driver timeout, re-matching",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()))

	uc.ensureMatch(tripID)
}

func (uc *TripUC) cancelGraceTimer(tripID uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if timer, ok := uc.graceTimers[tripID]; ok {
		timer.Stop()
		delete(uc.graceTimers, tripID)
	}
}

func (uc *TripUC) excludeDriver(tripID, driverID uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.excluded[tripID] == nil {
		uc.excluded[tripID] = make(map[uuid.UUID]bool)
	}
	uc.excluded[tripID][driverID] = true
}

func (uc *TripUC) isExcluded(tripID, driverID uuid.UUID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.excluded[tripID][driverID]
}

func (uc *TripUC) releaseDriver(ctx context.Context, driverID uuid.UUID) {
	if err := uc.directory.Release(ctx, driverID); err != nil {
		logger.Warn("failed to release driver hold",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
}

func (uc *TripUC) reportMatchFailed(tripID uuid.UUID, reason string) {
	event := &models.MatchFailedEvent{TripID: tripID, Reason: reason}
	uc.notifier.NotifyTrip(tripID, models.RoleCustomer, constants.EventMatchFailed, event)
	if err := uc.gw.PublishMatchFailed(context.Background(), event); err != nil {
		logger.Warn("failed to publish match failure",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}

// refreshActiveCounts replaces the directory's cached active-trip
// counts with the repository's. A failed lookup keeps the cached
// counts; the tie-break degrades, matching does not.
func (uc *TripUC) refreshActiveCounts(ctx context.Context, candidates []models.DriverSummary) {
	if len(candidates) == 0 {
		return
	}

	ids := make([]uuid.UUID, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
	}

	counts, err := uc.repo.ActiveTripCounts(ctx, ids)
	if err != nil {
		logger.Warn("active trip count lookup failed", logger.Err(err))
		return
	}

	for i := range candidates {
		candidates[i].ActiveTrips = counts[candidates[i].ID]
	}
}

// sortCandidates orders by distance, then fewest active trips, then
// driver id so selection is deterministic.
func sortCandidates(candidates []models.DriverSummary) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		if candidates[i].ActiveTrips != candidates[j].ActiveTrips {
			return candidates[i].ActiveTrips < candidates[j].ActiveTrips
		}
		return strings.Compare(candidates[i].ID.String(), candidates[j].ID.String()) < 0
	})
}
