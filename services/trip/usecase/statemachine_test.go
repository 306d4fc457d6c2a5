package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
	"github.com/openride/tripgate/services/trip/mocks"
)

type ucFixture struct {
	uc        *TripUC
	repo      *mocks.MockTripRepo
	directory *mocks.MockDriverDirectory
	gw        *mocks.MockTripGW
	cache     *mocks.MockPositionCache
}

func newUCFixture(t *testing.T, ctrl *gomock.Controller) *ucFixture {
	t.Helper()

	cfg := &models.Config{
		Match: models.MatchConfig{
			SearchRadiusKm:   5.0,
			TimeoutSec:       1,
			RetryIntervalSec: 2,
			ReconnectGrace:   60,
		},
		Tracking: models.TrackingConfig{PositionIntervalMs: 1000},
		Fallback: models.FallbackConfig{GraceSec: 300, SpeedKmh: 40, TickSecs: 1},
	}

	f := &ucFixture{
		repo:      mocks.NewMockTripRepo(ctrl),
		directory: mocks.NewMockDriverDirectory(ctrl),
		gw:        mocks.NewMockTripGW(ctrl),
		cache:     mocks.NewMockPositionCache(ctrl),
	}
	f.uc = NewTripUC(cfg, f.repo, f.directory, f.gw, f.cache)
	return f
}

func requestedTrip() *models.Trip {
	return &models.Trip{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Pickup:      models.Location{Latitude: -6.1754, Longitude: 106.8272},
		Destination: models.Location{Latitude: -6.2088, Longitude: 106.8456},
		CabType:     "standard",
		Status:      models.TripStatusRequested,
	}
}

func TestRequestTransition_DriverForwardPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	driverID := uuid.New()
	tr := requestedTrip()
	tr.Status = models.TripStatusDriverAssigned
	tr.DriverID = &driverID
	tr.Sequence = 1

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	steps := []models.TripStatus{
		models.TripStatusDriverEnRoute,
		models.TripStatusDriverArrived,
		models.TripStatusInProgress,
	}

	var lastSeq int64 = 1
	for _, target := range steps {
		seq, err := f.uc.RequestTransition(context.Background(), tr.ID, target, models.RoleDriver)
		require.NoError(t, err, "transition to %s", target)
		assert.Equal(t, lastSeq+1, seq, "sequence must increase by one per transition")
		lastSeq = seq
	}

	status, ok := f.uc.currentStatus(tr.ID)
	require.True(t, ok)
	assert.Equal(t, models.TripStatusInProgress, status)
}

func TestRequestTransition_IllegalEdgeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)

	_, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusInProgress, models.RoleDriver)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)

	// nothing was mutated
	status, ok := f.uc.currentStatus(tr.ID)
	require.True(t, ok)
	assert.Equal(t, models.TripStatusRequested, status)
}

func TestRequestTransition_SkippingStateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	driverID := uuid.New()
	tr := requestedTrip()
	tr.Status = models.TripStatusDriverAssigned
	tr.DriverID = &driverID

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)

	_, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusDriverArrived, models.RoleDriver)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestRequestTransition_RoleGating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	driverID := uuid.New()
	tr := requestedTrip()
	tr.Status = models.TripStatusDriverAssigned
	tr.DriverID = &driverID

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)

	// only the driver moves the trip to DRIVER_EN_ROUTE
	_, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusDriverEnRoute, models.RoleCustomer)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestRequestTransition_CustomerCancelsWhileRequested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	// the cancelled trip is evicted from memory, so the second attempt
	// reloads it from the repository
	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(2)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	seq, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusCancelled, models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	// terminal: no further transitions accepted
	_, err = f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusDriverAssigned, models.RoleSystem)
	assert.ErrorIs(t, err, trip.ErrInvalidTransition)
}

func TestRequestTransition_TerminalEvictsTripState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	f.uc.excludeDriver(tr.ID, uuid.New())

	_, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusCancelled, models.RoleCustomer)
	require.NoError(t, err)

	f.uc.mu.Lock()
	states := len(f.uc.states)
	excluded := len(f.uc.excluded)
	f.uc.mu.Unlock()
	assert.Zero(t, states, "terminal trips must leave the state table")
	assert.Zero(t, excluded, "terminal trips must leave the exclusion table")

	// a straggler sample is still dropped, without touching the repo
	err = f.uc.ReportPosition(context.Background(), &models.PositionReport{
		TripID:   tr.ID,
		Latitude: -6.1754, Longitude: 106.8272,
	})
	require.NoError(t, err)

	f.uc.relay.mu.Lock()
	feeds := len(f.uc.relay.feeds)
	f.uc.relay.mu.Unlock()
	assert.Zero(t, feeds, "a dropped sample must not open a relay feed")
}

func TestRequestTransition_PersistFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	driverID := uuid.New()
	tr := requestedTrip()
	tr.Status = models.TripStatusDriverAssigned
	tr.DriverID = &driverID
	tr.Sequence = 1

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	_, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusDriverEnRoute, models.RoleDriver)
	require.Error(t, err)

	status, ok := f.uc.currentStatus(tr.ID)
	require.True(t, ok)
	assert.Equal(t, models.TripStatusDriverAssigned, status)

	// the rejected attempt burned nothing: the next one gets sequence 2
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	seq, err := f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusDriverEnRoute, models.RoleDriver)
	require.NoError(t, err)
	assert.Equal(t, int64(2), seq)
}

func TestRequestTransition_CompletionReleasesAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	driverID := uuid.New()
	tr := requestedTrip()
	tr.Status = models.TripStatusInProgress
	tr.DriverID = &driverID
	tr.Sequence = 4

	_, err := f.uc.assignments.Acquire(driverID, tr.ID)
	require.NoError(t, err)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.directory.EXPECT().Release(gomock.Any(), driverID).Return(nil).Times(1)

	_, err = f.uc.RequestTransition(context.Background(), tr.ID, models.TripStatusCompleted, models.RoleDriver)
	require.NoError(t, err)

	_, held := f.uc.assignments.TripOf(driverID)
	assert.False(t, held, "completion must free the driver slot")
}

func TestRequestTransition_UnknownTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tripID := uuid.New()
	f.repo.EXPECT().Load(gomock.Any(), tripID).Return(nil, trip.ErrTripNotFound).Times(1)

	_, err := f.uc.RequestTransition(context.Background(), tripID, models.TripStatusCancelled, models.RoleCustomer)
	assert.ErrorIs(t, err, trip.ErrTripNotFound)
}
