package usecase

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/internal/utils"
)

// Fallback synthesizes driver motion for trips that reach
// DRIVER_ASSIGNED without a live driver feed, so demo and offline
// sessions look exactly like real ones downstream. Samples enter the
// relay through the same path as genuine reports; the relay stops
// accepting them the moment a real sample arrives.
type Fallback struct {
	cfg    models.FallbackConfig
	relay  *Relay
	status func(uuid.UUID) (models.TripStatus, bool)

	// hasDriverChannel is wired once the connection registry exists
	hasDriverChannel func(uuid.UUID) bool

	mu      sync.Mutex
	pending map[uuid.UUID]*time.Timer
	running map[uuid.UUID]chan struct{}
}

// NewFallback creates the fallback manager
func NewFallback(cfg models.FallbackConfig, relay *Relay, status func(uuid.UUID) (models.TripStatus, bool)) *Fallback {
	if cfg.TickSecs <= 0 {
		cfg.TickSecs = 1
	}
	return &Fallback{
		cfg:              cfg,
		relay:            relay,
		status:           status,
		hasDriverChannel: func(uuid.UUID) bool { return false },
		pending:          make(map[uuid.UUID]*time.Timer),
		running:          make(map[uuid.UUID]chan struct{}),
	}
}

// Arm schedules simulation for a freshly assigned trip. If a live
// driver channel registers (or a real sample arrives) within the grace
// period, nothing is synthesized.
func (f *Fallback) Arm(trip *models.Trip) {
	grace := time.Duration(f.cfg.GraceSec) * time.Second
	tripCopy := *trip

	f.mu.Lock()
	defer f.mu.Unlock()
	if timer, ok := f.pending[trip.ID]; ok {
		timer.Stop()
	}
	f.pending[trip.ID] = time.AfterFunc(grace, func() {
		f.start(&tripCopy)
	})
}

func (f *Fallback) start(trip *models.Trip) {
	f.mu.Lock()
	delete(f.pending, trip.ID)
	if _, ok := f.running[trip.ID]; ok {
		f.mu.Unlock()
		return
	}
	if f.hasDriverChannel(trip.ID) || f.relay.HasRealFeed(trip.ID) {
		f.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	f.running[trip.ID] = stop
	f.mu.Unlock()

	logger.Info("no live driver feed, starting simulated motion",
		logger.String("trip_id", trip.ID.String()))

	go f.run(trip, stop)
}

// run interpolates a path from pickup to destination at the configured
// speed. The path is deterministic for a given trip id.
func (f *Fallback) run(trip *models.Trip, stop chan struct{}) {
	defer logger.RecoverPanic("fallback")
	defer f.clear(trip.ID)

	rng := rand.New(rand.NewSource(seedFromTrip(trip.ID)))

	distanceKm := utils.CalculateDistance(trip.Pickup, trip.Destination)
	if distanceKm <= 0 {
		return
	}

	tick := time.Duration(f.cfg.TickSecs) * time.Second
	stepFrac := f.cfg.SpeedKmh * tick.Hours() / distanceKm

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	progress := 0.0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		if status, ok := f.status(trip.ID); ok {
			if status.Terminal() || statusRank[status] >= statusRank[models.TripStatusInProgress] {
				return
			}
		}
		if f.relay.HasRealFeed(trip.ID) {
			return
		}

		// deterministic jitter keeps the pace from looking machine-perfect
		progress += stepFrac * (0.9 + 0.2*rng.Float64())
		point := utils.Interpolate(trip.Pickup, trip.Destination, progress)

		if err := f.relay.Report(context.Background(), trip.ID, point.Latitude, point.Longitude, nil, true); err != nil {
			logger.Warn("failed to inject simulated position",
				logger.String("trip_id", trip.ID.String()),
				logger.Err(err))
		}

		if progress >= 1 {
			return
		}
	}
}

// Stop halts any pending or running simulation for the trip
func (f *Fallback) Stop(tripID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if timer, ok := f.pending[tripID]; ok {
		timer.Stop()
		delete(f.pending, tripID)
	}
	if stop, ok := f.running[tripID]; ok {
		close(stop)
		delete(f.running, tripID)
	}
}

func (f *Fallback) clear(tripID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.running, tripID)
}

func seedFromTrip(tripID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte(tripID.String()))
	return int64(h.Sum64())
}
