package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// AssignmentTable is the sole source of the "at most one active trip
// per driver" invariant inside a gateway instance. Acquire is a
// compare-and-set on the driver's slot so unrelated drivers and trips
// never contend.
type AssignmentTable struct {
	mu       sync.Mutex
	byDriver map[uuid.UUID]*models.Assignment
	byTrip   map[uuid.UUID]*models.Assignment
}

// NewAssignmentTable creates an empty assignment table
func NewAssignmentTable() *AssignmentTable {
	return &AssignmentTable{
		byDriver: make(map[uuid.UUID]*models.Assignment),
		byTrip:   make(map[uuid.UUID]*models.Assignment),
	}
}

// Acquire binds the driver to the trip. Returns ErrAssignmentConflict
// when either side already holds an assignment.
func (t *AssignmentTable) Acquire(driverID, tripID uuid.UUID) (*models.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, held := t.byDriver[driverID]; held {
		return nil, trip.ErrAssignmentConflict
	}
	if _, held := t.byTrip[tripID]; held {
		return nil, trip.ErrAssignmentConflict
	}

	a := &models.Assignment{
		TripID:    tripID,
		DriverID:  driverID,
		CreatedAt: time.Now(),
	}
	t.byDriver[driverID] = a
	t.byTrip[tripID] = a
	return a, nil
}

// Release frees the driver's slot, if held
func (t *AssignmentTable) Release(driverID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if a, held := t.byDriver[driverID]; held {
		delete(t.byDriver, driverID)
		delete(t.byTrip, a.TripID)
	}
}

// ReleaseTrip frees the trip's assignment and returns the driver that
// held it.
func (t *AssignmentTable) ReleaseTrip(tripID uuid.UUID) (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, held := t.byTrip[tripID]
	if !held {
		return uuid.Nil, false
	}
	delete(t.byTrip, tripID)
	delete(t.byDriver, a.DriverID)
	return a.DriverID, true
}

// DriverOf returns the driver currently bound to the trip
func (t *AssignmentTable) DriverOf(tripID uuid.UUID) (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if a, held := t.byTrip[tripID]; held {
		return a.DriverID, true
	}
	return uuid.Nil, false
}

// TripOf returns the trip currently holding the driver
func (t *AssignmentTable) TripOf(driverID uuid.UUID) (uuid.UUID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if a, held := t.byDriver[driverID]; held {
		return a.TripID, true
	}
	return uuid.Nil, false
}
