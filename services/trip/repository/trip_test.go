package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
	"github.com/openride/tripgate/services/trip/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func tripColumns() []string {
	return []string{
		"id", "customer_id",
		"pickup_lng", "pickup_lat",
		"destination_lng", "destination_lat",
		"cab_type",
		"fare_base", "fare_distance", "fare_time", "fare_tax", "fare_total",
		"status", "driver_id", "sequence", "created_at",
	}
}

func TestLoad_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	tripID := uuid.New()
	customerID := uuid.New()
	driverID := uuid.New()
	createdAt := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(tripColumns()).AddRow(
			tripID.String(), customerID.String(),
			106.8272, -6.1754,
			106.8456, -6.2088,
			"standard",
			10000.0, 24000.0, 6000.0, 4000.0, 44000.0,
			"DRIVER_ASSIGNED", driverID.String(), int64(3), createdAt,
		))

	got, err := repo.Load(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, tripID, got.ID)
	assert.Equal(t, customerID, got.CustomerID)
	assert.InDelta(t, -6.1754, got.Pickup.Latitude, 0.0000001)
	assert.InDelta(t, 106.8272, got.Pickup.Longitude, 0.0000001)
	assert.InDelta(t, -6.2088, got.Destination.Latitude, 0.0000001)
	assert.Equal(t, models.TripStatusDriverAssigned, got.Status)
	require.NotNil(t, got.DriverID)
	assert.Equal(t, driverID, *got.DriverID)
	assert.Equal(t, int64(3), got.Sequence)
	assert.InDelta(t, 44000.0, got.Fare.Total, 0.01)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	tripID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(tripID).
		WillReturnRows(sqlmock.NewRows(tripColumns()))

	_, err := repo.Load(context.Background(), tripID)

	assert.ErrorIs(t, err, trip.ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersist_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	driverID := uuid.New()
	tr := &models.Trip{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     models.TripStatusDriverAssigned,
		DriverID:   &driverID,
		Sequence:   2,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WithArgs(tr.Status, driverID, tr.Sequence, tr.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Persist(context.Background(), tr)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersist_MissingRowReportsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	tr := &models.Trip{ID: uuid.New(), CustomerID: uuid.New(), Status: models.TripStatusCancelled}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE trips")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Persist(context.Background(), tr)

	assert.ErrorIs(t, err, trip.ErrTripNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveTripCounts_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	driverA := uuid.New()
	driverB := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, COUNT(*)")).
		WithArgs(pq.Array([]uuid.UUID{driverA, driverB})).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "active"}).
			AddRow(driverA.String(), 2))

	counts, err := repo.ActiveTripCounts(context.Background(), []uuid.UUID{driverA, driverB})

	require.NoError(t, err)
	assert.Equal(t, 2, counts[driverA])
	_, ok := counts[driverB]
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveTripCounts_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	counts, err := repo.ActiveTripCounts(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	tr := &models.Trip{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Pickup:      models.Location{Latitude: -6.1754, Longitude: 106.8272},
		Destination: models.Location{Latitude: -6.2088, Longitude: 106.8456},
		CabType:     "standard",
		Status:      models.TripStatusRequested,
		CreatedAt:   time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), tr)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(db)

	tr := &models.Trip{ID: uuid.New(), CustomerID: uuid.New(), Status: models.TripStatusRequested, CreatedAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), tr)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
