package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	wspkg "github.com/openride/tripgate/internal/pkg/websocket"
	"github.com/openride/tripgate/services/trip"
)

type registryKey struct {
	TripID uuid.UUID
	Role   models.Role
}

// Registry tracks the live channel per (trip, role). Pure routing: it
// holds no business state. Re-registering a key replaces the handle
// and closes the superseded one asynchronously, which covers clients
// that reconnected without a clean disconnect.
type Registry struct {
	mu    sync.RWMutex
	conns map[registryKey]*wspkg.Client
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{conns: make(map[registryKey]*wspkg.Client)}
}

// Register routes (tripID, role) to the client. Any previously
// registered handle for the key is closed in the background.
func (r *Registry) Register(tripID uuid.UUID, role models.Role, client *wspkg.Client) {
	key := registryKey{TripID: tripID, Role: role}

	r.mu.Lock()
	old := r.conns[key]
	r.conns[key] = client
	r.mu.Unlock()

	if old != nil && old != client {
		logger.Debug("superseding stale channel",
			logger.String("trip_id", tripID.String()),
			logger.String("role", string(role)))
		go old.Close()
	}
}

// Unregister removes the client from every key it is the active handle
// for. Idempotent: unregistering a superseded handle is a no-op.
func (r *Registry) Unregister(client *wspkg.Client) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var trips []uuid.UUID
	for key, active := range r.conns {
		if active == client {
			delete(r.conns, key)
			trips = append(trips, key.TripID)
		}
	}
	return trips
}

// Lookup returns the active handle for (tripID, role)
func (r *Registry) Lookup(tripID uuid.UUID, role models.Role) (*wspkg.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.conns[registryKey{TripID: tripID, Role: role}]
	return client, ok
}

// VerifyActive checks that the client is still the routed handle for
// the (trip, role). Returns ErrStaleChannel for superseded handles, so
// callers drop their messages instead of acting on them.
func (r *Registry) VerifyActive(tripID uuid.UUID, role models.Role, client *wspkg.Client) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.conns[registryKey{TripID: tripID, Role: role}] != client {
		return trip.ErrStaleChannel
	}
	return nil
}

// HasChannel reports whether any handle is registered for (trip, role)
func (r *Registry) HasChannel(tripID uuid.UUID, role models.Role) bool {
	_, ok := r.Lookup(tripID, role)
	return ok
}

// NotifyTrip sends an event to the channel registered for (trip, role).
// A missing channel is not an error.
func (r *Registry) NotifyTrip(tripID uuid.UUID, role models.Role, event string, data interface{}) {
	client, ok := r.Lookup(tripID, role)
	if !ok {
		return
	}
	if err := client.Send(event, data); err != nil {
		logger.Debug("failed to push event to channel",
			logger.String("trip_id", tripID.String()),
			logger.String("role", string(role)),
			logger.String("event", event),
			logger.Err(err))
	}
}

// NotifyBoth sends an event to both parties of a trip, if registered
func (r *Registry) NotifyBoth(tripID uuid.UUID, event string, data interface{}) {
	r.NotifyTrip(tripID, models.RoleCustomer, event, data)
	r.NotifyTrip(tripID, models.RoleDriver, event, data)
}
