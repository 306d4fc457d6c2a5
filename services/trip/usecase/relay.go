package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/internal/utils"
	"github.com/openride/tripgate/services/trip"
)

// Relay fans position samples out from the driver feed to customer
// subscribers. Delivery is last-value-wins: a slow subscriber only
// ever has the newest sample displace a stale one, nothing queues
// unboundedly and the reporter is never blocked.
type Relay struct {
	interval time.Duration
	cache    trip.PositionCache
	gw       trip.TripGW
	now      func() time.Time

	mu    sync.Mutex
	feeds map[uuid.UUID]*tripFeed
}

type tripFeed struct {
	mu           sync.Mutex
	seq          int64
	latest       *models.DriverPosition
	lastHash     string
	lastAccepted time.Time
	pending      *models.DriverPosition
	flush        *time.Timer
	realSeen     bool
	evicted      bool
	subs         map[chan models.DriverPosition]bool
}

// NewRelay creates the location relay
func NewRelay(cfg models.TrackingConfig, cache trip.PositionCache, gw trip.TripGW) *Relay {
	interval := time.Duration(cfg.PositionIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	return &Relay{
		interval: interval,
		cache:    cache,
		gw:       gw,
		now:      time.Now,
		feeds:    make(map[uuid.UUID]*tripFeed),
	}
}

func (r *Relay) feed(tripID uuid.UUID) *tripFeed {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.feeds[tripID]
	if !ok {
		f = &tripFeed{subs: make(map[chan models.DriverPosition]bool)}
		r.feeds[tripID] = f
	}
	return f
}

// Report accepts one position sample for a trip. Samples arriving
// faster than the configured cadence are coalesced into the next tick;
// exact duplicates (same geohash cell) are dropped. Once a genuine
// driver sample has been seen, simulated samples are ignored for good.
func (r *Relay) Report(ctx context.Context, tripID uuid.UUID, lat, lng float64, heading *float64, simulated bool) error {
	f := r.feed(tripID)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.evicted {
		return nil
	}
	if simulated && f.realSeen {
		return nil
	}
	if !simulated {
		f.realSeen = true
	}

	hash := utils.EncodeLocation(models.Location{Latitude: lat, Longitude: lng}, utils.PositionHashPrecision)
	if hash == f.lastHash {
		return nil
	}

	pos := &models.DriverPosition{
		TripID:     tripID,
		Latitude:   lat,
		Longitude:  lng,
		Heading:    heading,
		Simulated:  simulated,
		ReceivedAt: r.now(),
	}

	elapsed := r.now().Sub(f.lastAccepted)
	if f.lastAccepted.IsZero() || elapsed >= r.interval {
		r.accept(tripID, f, pos, hash)
		return nil
	}

	// too soon: keep only the newest sample for the next tick
	f.pending = pos
	if f.flush == nil {
		f.flush = time.AfterFunc(r.interval-elapsed, func() {
			r.flushPending(tripID)
		})
	}
	return nil
}

// accept stamps and delivers a sample. Callers hold f.mu.
func (r *Relay) accept(tripID uuid.UUID, f *tripFeed, pos *models.DriverPosition, hash string) {
	f.seq++
	pos.Sequence = f.seq
	f.latest = pos
	f.lastHash = hash
	f.lastAccepted = r.now()

	for ch := range f.subs {
		deliver(ch, *pos)
	}

	// persistence and fan-out to collaborators never block the reporter
	go r.sideEffects(pos)
}

func (r *Relay) sideEffects(pos *models.DriverPosition) {
	defer logger.RecoverPanic("relay")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if r.cache != nil {
		if err := r.cache.Store(ctx, pos); err != nil {
			logger.Warn("failed to cache position",
				logger.String("trip_id", pos.TripID.String()),
				logger.Err(err))
		}
	}
	if r.gw != nil {
		if err := r.gw.PublishPositionUpdate(ctx, pos); err != nil {
			logger.Warn("failed to publish position",
				logger.String("trip_id", pos.TripID.String()),
				logger.Err(err))
		}
	}
}

func (r *Relay) flushPending(tripID uuid.UUID) {
	f := r.feed(tripID)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.flush = nil
	pos := f.pending
	f.pending = nil
	if pos == nil || f.evicted {
		return
	}
	if pos.Simulated && f.realSeen {
		return
	}

	hash := utils.EncodeLocation(models.Location{Latitude: pos.Latitude, Longitude: pos.Longitude}, utils.PositionHashPrecision)
	if hash == f.lastHash {
		return
	}
	r.accept(tripID, f, pos, hash)
}

// deliver pushes the newest sample, displacing a stale undelivered one
func deliver(ch chan models.DriverPosition, pos models.DriverPosition) {
	select {
	case ch <- pos:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- pos:
		default:
		}
	}
}

// Subscribe returns a stream of position samples for the trip. The
// channel is pre-seeded with the last known sample so a reconnecting
// customer does not wait for the next driver tick.
func (r *Relay) Subscribe(tripID uuid.UUID) <-chan models.DriverPosition {
	f := r.feed(tripID)

	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan models.DriverPosition, 1)
	f.subs[ch] = true

	if f.latest == nil && r.cache != nil {
		if last, err := r.cache.Last(context.Background(), tripID); err == nil && last != nil {
			f.latest = last
			f.seq = last.Sequence
		}
	}
	if f.latest != nil {
		ch <- *f.latest
	}

	return ch
}

// Unsubscribe releases a stream obtained from Subscribe
func (r *Relay) Unsubscribe(tripID uuid.UUID, ch <-chan models.DriverPosition) {
	f := r.feed(tripID)

	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs {
		if (<-chan models.DriverPosition)(sub) == ch {
			delete(f.subs, sub)
			close(sub)
			return
		}
	}
}

// HasRealFeed reports whether a genuine driver sample has been seen
func (r *Relay) HasRealFeed(tripID uuid.UUID) bool {
	f := r.feed(tripID)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.realSeen
}

// Last returns the most recent sample for the trip, if any
func (r *Relay) Last(ctx context.Context, tripID uuid.UUID) *models.DriverPosition {
	f := r.feed(tripID)

	f.mu.Lock()
	latest := f.latest
	f.mu.Unlock()
	if latest != nil {
		return latest
	}
	if r.cache == nil {
		return nil
	}

	last, err := r.cache.Last(ctx, tripID)
	if err != nil || last == nil {
		return nil
	}
	return last
}

// Evict drops the trip's feed, closes its subscribers and clears the
// cached sample. Called when the trip reaches a terminal state.
func (r *Relay) Evict(tripID uuid.UUID) {
	r.mu.Lock()
	f, ok := r.feeds[tripID]
	delete(r.feeds, tripID)
	r.mu.Unlock()
	if !ok {
		return
	}

	f.mu.Lock()
	f.evicted = true
	if f.flush != nil {
		f.flush.Stop()
		f.flush = nil
	}
	for ch := range f.subs {
		close(ch)
		delete(f.subs, ch)
	}
	f.mu.Unlock()

	if r.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := r.cache.Evict(ctx, tripID); err != nil {
			logger.Warn("failed to evict cached position",
				logger.String("trip_id", tripID.String()),
				logger.Err(err))
		}
	}
}
