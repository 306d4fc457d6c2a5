package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride/tripgate/internal/pkg/models"
	wspkg "github.com/openride/tripgate/internal/pkg/websocket"
	"github.com/openride/tripgate/services/trip"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	tripID := uuid.New()
	client := &wspkg.Client{UserID: "u1", Role: models.RoleCustomer}

	r.Register(tripID, models.RoleCustomer, client)

	got, ok := r.Lookup(tripID, models.RoleCustomer)
	require.True(t, ok)
	assert.Same(t, client, got)

	_, ok = r.Lookup(tripID, models.RoleDriver)
	assert.False(t, ok)
	assert.True(t, r.HasChannel(tripID, models.RoleCustomer))
	assert.False(t, r.HasChannel(tripID, models.RoleDriver))
}

func TestRegistry_ReRegisterReplacesHandle(t *testing.T) {
	r := NewRegistry()
	tripID := uuid.New()
	stale := &wspkg.Client{UserID: "u1", Role: models.RoleDriver}
	fresh := &wspkg.Client{UserID: "u1", Role: models.RoleDriver}

	r.Register(tripID, models.RoleDriver, stale)
	r.Register(tripID, models.RoleDriver, fresh)

	got, ok := r.Lookup(tripID, models.RoleDriver)
	require.True(t, ok)
	assert.Same(t, fresh, got)

	assert.NoError(t, r.VerifyActive(tripID, models.RoleDriver, fresh))
	assert.ErrorIs(t, r.VerifyActive(tripID, models.RoleDriver, stale), trip.ErrStaleChannel,
		"a superseded handle is no longer routed")

	// the old handle gets closed in the background
	time.Sleep(20 * time.Millisecond)
}

func TestRegistry_UnregisterIsIdempotentAndScoped(t *testing.T) {
	r := NewRegistry()
	tripID := uuid.New()
	stale := &wspkg.Client{UserID: "u1", Role: models.RoleDriver}
	fresh := &wspkg.Client{UserID: "u1", Role: models.RoleDriver}

	r.Register(tripID, models.RoleDriver, stale)
	r.Register(tripID, models.RoleDriver, fresh)

	// the superseded handle's teardown must not evict the fresh one
	assert.Empty(t, r.Unregister(stale))
	assert.True(t, r.HasChannel(tripID, models.RoleDriver))

	trips := r.Unregister(fresh)
	require.Len(t, trips, 1)
	assert.Equal(t, tripID, trips[0])
	assert.False(t, r.HasChannel(tripID, models.RoleDriver))

	assert.Empty(t, r.Unregister(fresh), "unregistering twice is a no-op")
}

func TestRegistry_UnregisterCoversEveryTrip(t *testing.T) {
	r := NewRegistry()
	tripA := uuid.New()
	tripB := uuid.New()
	client := &wspkg.Client{UserID: "d1", Role: models.RoleDriver}

	r.Register(tripA, models.RoleDriver, client)
	r.Register(tripB, models.RoleDriver, client)

	trips := r.Unregister(client)
	assert.ElementsMatch(t, []uuid.UUID{tripA, tripB}, trips)
}

func TestRegistry_NotifyMissingChannelIsNoop(t *testing.T) {
	r := NewRegistry()

	// no channel registered; nothing to deliver, nothing to fail
	r.NotifyTrip(uuid.New(), models.RoleCustomer, "status_changed", nil)
	r.NotifyBoth(uuid.New(), "status_changed", nil)
}
