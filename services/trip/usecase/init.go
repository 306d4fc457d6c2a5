package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// TripUC implements the realtime trip lifecycle use case. It owns the
// trip state machine, the matching coordinator, the location relay and
// the reconnection/fallback manager.
type TripUC struct {
	cfg       *models.Config
	repo      trip.TripRepo
	directory trip.DriverDirectory
	gw        trip.TripGW
	notifier  trip.Notifier

	relay       *Relay
	fallback    *Fallback
	assignments *AssignmentTable

	mu          sync.Mutex
	states      map[uuid.UUID]*tripState
	matching    map[uuid.UUID]bool
	excluded    map[uuid.UUID]map[uuid.UUID]bool
	graceTimers map[uuid.UUID]*time.Timer
	finished    map[uuid.UUID]time.Time
}

// finishedTTL bounds how long a finished trip keeps a tombstone that
// drops stray position samples after its state has been evicted
const finishedTTL = 5 * time.Minute

// tripState serializes all transitions of one trip relative to each
// other; different trips stay fully concurrent.
type tripState struct {
	mu   sync.Mutex
	trip *models.Trip
}

// NewTripUC creates the trip use case
func NewTripUC(
	cfg *models.Config,
	repo trip.TripRepo,
	directory trip.DriverDirectory,
	gw trip.TripGW,
	cache trip.PositionCache,
) *TripUC {
	uc := &TripUC{
		cfg:         cfg,
		repo:        repo,
		directory:   directory,
		gw:          gw,
		notifier:    noopNotifier{},
		assignments: NewAssignmentTable(),
		states:      make(map[uuid.UUID]*tripState),
		matching:    make(map[uuid.UUID]bool),
		excluded:    make(map[uuid.UUID]map[uuid.UUID]bool),
		graceTimers: make(map[uuid.UUID]*time.Timer),
		finished:    make(map[uuid.UUID]time.Time),
	}

	uc.relay = NewRelay(cfg.Tracking, cache, gw)
	uc.fallback = NewFallback(cfg.Fallback, uc.relay, uc.currentStatus)

	return uc
}

// SetNotifier wires the channel registry in after construction; the
// registry itself depends on this use case.
func (uc *TripUC) SetNotifier(n trip.Notifier) {
	uc.notifier = n
	uc.fallback.hasDriverChannel = func(tripID uuid.UUID) bool {
		return n.HasChannel(tripID, models.RoleDriver)
	}
}

// Subscribe validates the trip for the connecting party and, for a
// customer joining a trip still in REQUESTED, starts matching.
func (uc *TripUC) Subscribe(ctx context.Context, tripID uuid.UUID, role models.Role, userID string) (*models.Trip, error) {
	st, err := uc.state(ctx, tripID)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	snapshot := *st.trip
	st.mu.Unlock()

	if role == models.RoleCustomer && snapshot.Status == models.TripStatusRequested {
		uc.ensureMatch(tripID)
	}

	return &snapshot, nil
}

// state returns the serialized state holder for a trip, loading the
// trip record on first touch.
func (uc *TripUC) state(ctx context.Context, tripID uuid.UUID) (*tripState, error) {
	uc.mu.Lock()
	st, ok := uc.states[tripID]
	if !ok {
		st = &tripState{}
		uc.states[tripID] = st
	}
	uc.mu.Unlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.trip == nil {
		t, err := uc.repo.Load(ctx, tripID)
		if err != nil {
			uc.dropState(tripID, st)
			return nil, fmt.Errorf("loading trip %s: %w", tripID, err)
		}
		st.trip = t
		// terminal trips are served for this call but never retained
		if t.Status.Terminal() {
			uc.dropState(tripID, st)
		}
	}
	return st, nil
}

func (uc *TripUC) dropState(tripID uuid.UUID, st *tripState) {
	uc.mu.Lock()
	if uc.states[tripID] == st {
		delete(uc.states, tripID)
	}
	uc.mu.Unlock()
}

// currentStatus reports the in-memory status of a trip, if tracked
func (uc *TripUC) currentStatus(tripID uuid.UUID) (models.TripStatus, bool) {
	uc.mu.Lock()
	st, ok := uc.states[tripID]
	uc.mu.Unlock()
	if !ok {
		return "", false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.trip == nil {
		return "", false
	}
	return st.trip.Status, true
}

// SubscribePositions returns a coalescing stream of position samples
func (uc *TripUC) SubscribePositions(tripID uuid.UUID) <-chan models.DriverPosition {
	return uc.relay.Subscribe(tripID)
}

// UnsubscribePositions releases a position stream
func (uc *TripUC) UnsubscribePositions(tripID uuid.UUID, ch <-chan models.DriverPosition) {
	uc.relay.Unsubscribe(tripID, ch)
}

// ReportPosition accepts a genuine driver-side location sample.
// Samples for finished trips are dropped.
func (uc *TripUC) ReportPosition(ctx context.Context, report *models.PositionReport) error {
	if status, ok := uc.currentStatus(report.TripID); ok && status.Terminal() {
		return nil
	}
	if uc.recentlyFinished(report.TripID) {
		return nil
	}
	return uc.relay.Report(ctx, report.TripID, report.Latitude, report.Longitude, report.Heading, false)
}

// recentlyFinished reports whether the trip went terminal on this
// gateway within the tombstone window. Expired tombstones are dropped
// on read.
func (uc *TripUC) recentlyFinished(tripID uuid.UUID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	at, ok := uc.finished[tripID]
	if !ok {
		return false
	}
	if time.Since(at) > finishedTTL {
		delete(uc.finished, tripID)
		return false
	}
	return true
}

// noopNotifier stands in until the registry is wired
type noopNotifier struct{}

func (noopNotifier) NotifyTrip(uuid.UUID, models.Role, string, interface{}) {}
func (noopNotifier) NotifyBoth(uuid.UUID, string, interface{})              {}
func (noopNotifier) HasChannel(uuid.UUID, models.Role) bool                 { return false }
