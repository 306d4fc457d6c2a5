package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

func candidate(id uuid.UUID, distanceKm float64) models.DriverSummary {
	return models.DriverSummary{
		ID:         id,
		Name:       "driver-" + id.String()[:8],
		CabType:    "standard",
		DistanceKm: distanceKm,
	}
}

func TestRequestMatch_PicksNearestDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	near := candidate(uuid.New(), 0.4)
	far := candidate(uuid.New(), 3.1)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), tr.Pickup, 5.0, "standard").
		Return([]models.DriverSummary{far, near}, nil).
		Times(1)
	f.repo.EXPECT().ActiveTripCounts(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), near.ID, tr.ID).Return(true, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assignment, err := f.uc.RequestMatch(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, near.ID, assignment.DriverID)

	status, ok := f.uc.currentStatus(tr.ID)
	require.True(t, ok)
	assert.Equal(t, models.TripStatusDriverAssigned, status)
}

func TestRequestMatch_TieBreaksOnActiveTripsThenID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	busy := candidate(uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000"), 1.0)
	idle := candidate(uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000"), 1.0)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DriverSummary{busy, idle}, nil).
		Times(1)
	f.repo.EXPECT().
		ActiveTripCounts(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]int{busy.ID: 2}, nil).
		Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), idle.ID, tr.ID).Return(true, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assignment, err := f.uc.RequestMatch(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, idle.ID, assignment.DriverID, "equal distance resolves to the idler driver")
}

func TestRequestMatch_HeldDriverSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	first := candidate(uuid.New(), 0.5)
	second := candidate(uuid.New(), 1.5)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DriverSummary{first, second}, nil).
		Times(1)
	f.repo.EXPECT().ActiveTripCounts(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil).Times(1)

	// first is already held by another trip elsewhere
	f.directory.EXPECT().TryHold(gomock.Any(), first.ID, tr.ID).Return(false, nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), second.ID, tr.ID).Return(true, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assignment, err := f.uc.RequestMatch(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, assignment.DriverID)
}

func TestRequestMatch_SlotConflictAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()
	contested := candidate(uuid.New(), 0.5)
	fallback := candidate(uuid.New(), 1.5)

	// the contested driver already serves another trip in this instance
	_, err := f.uc.assignments.Acquire(contested.ID, uuid.New())
	require.NoError(t, err)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DriverSummary{contested, fallback}, nil).
		Times(1)
	f.repo.EXPECT().ActiveTripCounts(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), contested.ID, tr.ID).Return(true, nil).Times(1)
	f.directory.EXPECT().Release(gomock.Any(), contested.ID).Return(nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), fallback.ID, tr.ID).Return(true, nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assignment, err := f.uc.RequestMatch(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, fallback.ID, assignment.DriverID)
}

func TestRequestMatch_NoDriverWithinWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tr := requestedTrip()

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()
	f.gw.EXPECT().PublishMatchFailed(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := f.uc.RequestMatch(context.Background(), tr.ID)
	assert.ErrorIs(t, err, trip.ErrNoDriverAvailable)

	status, ok := f.uc.currentStatus(tr.ID)
	require.True(t, ok)
	assert.Equal(t, models.TripStatusRequested, status, "a failed match leaves the trip requestable")
}

func TestRequestMatch_SoleCandidateServesOneTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)

	tripA := requestedTrip()
	tripB := requestedTrip()
	sole := candidate(uuid.New(), 0.8)

	f.repo.EXPECT().Load(gomock.Any(), tripA.ID).Return(tripA, nil).Times(1)
	f.repo.EXPECT().Load(gomock.Any(), tripB.ID).Return(tripB, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DriverSummary{sole}, nil).
		AnyTimes()
	f.repo.EXPECT().ActiveTripCounts(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil).AnyTimes()

	// the directory hold is first-winner-takes-it
	f.directory.EXPECT().TryHold(gomock.Any(), sole.ID, tripA.ID).Return(true, nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), sole.ID, tripB.ID).Return(false, nil).AnyTimes()
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.gw.EXPECT().PublishMatchFailed(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	assignment, err := f.uc.RequestMatch(context.Background(), tripA.ID)
	require.NoError(t, err)
	assert.Equal(t, sole.ID, assignment.DriverID)

	_, err = f.uc.RequestMatch(context.Background(), tripB.ID)
	assert.ErrorIs(t, err, trip.ErrNoDriverAvailable)
}

func TestDriverDisconnected_RematchExcludesDroppedDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	f.uc.cfg.Match.ReconnectGrace = 0

	tr := requestedTrip()
	dropped := candidate(uuid.New(), 0.3)
	replacement := candidate(uuid.New(), 1.2)

	f.repo.EXPECT().Load(gomock.Any(), tr.ID).Return(tr, nil).Times(1)
	f.directory.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.DriverSummary{dropped, replacement}, nil).
		AnyTimes()
	f.repo.EXPECT().ActiveTripCounts(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int{}, nil).AnyTimes()
	f.directory.EXPECT().TryHold(gomock.Any(), dropped.ID, tr.ID).Return(true, nil).Times(1)
	f.directory.EXPECT().TryHold(gomock.Any(), replacement.ID, tr.ID).Return(true, nil).Times(1)
	f.directory.EXPECT().Release(gomock.Any(), dropped.ID).Return(nil).Times(1)
	f.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gw.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gw.EXPECT().PublishDriverAssigned(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assignment, err := f.uc.RequestMatch(context.Background(), tr.ID)
	require.NoError(t, err)
	require.Equal(t, dropped.ID, assignment.DriverID)

	f.uc.DriverDisconnected(tr.ID)

	require.Eventually(t, func() bool {
		driverID, held := f.uc.assignments.DriverOf(tr.ID)
		return held && driverID == replacement.ID
	}, 3*time.Second, 10*time.Millisecond, "trip must be re-matched to the remaining driver")
}
