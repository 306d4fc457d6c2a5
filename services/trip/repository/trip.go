package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// TripRepo persists trip records in PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// Load fetches a trip by id
func (r *TripRepo) Load(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT
			id, customer_id,
			(pickup[0])::float8 AS pickup_lng,
			(pickup[1])::float8 AS pickup_lat,
			(destination[0])::float8 AS destination_lng,
			(destination[1])::float8 AS destination_lat,
			cab_type,
			fare_base, fare_distance, fare_time, fare_tax, fare_total,
			status, driver_id, sequence, created_at
		FROM trips
		WHERE id = $1
	`

	var dto models.TripDTO
	err := r.db.QueryRowxContext(ctx, query, tripID).Scan(
		&dto.ID, &dto.CustomerID,
		&dto.PickupLng, &dto.PickupLat,
		&dto.DestinationLng, &dto.DestinationLat,
		&dto.CabType,
		&dto.FareBase, &dto.FareDistance, &dto.FareTime, &dto.FareTax, &dto.FareTotal,
		&dto.Status, &dto.DriverID, &dto.Sequence, &dto.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// Persist writes the trip's mutable lifecycle fields. The fare
// snapshot is immutable after assignment and is never updated here.
func (r *TripRepo) Persist(ctx context.Context, t *models.Trip) error {
	query := `
		UPDATE trips
		SET status = :status,
		    driver_id = :driver_id,
		    sequence = :sequence
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, t.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to persist trip: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check persisted trip: %w", err)
	}
	if rows == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

// ActiveTripCounts counts non-terminal trips per driver. Used as the
// authoritative tie-break signal during matching; the directory's
// cached counts can lag.
func (r *TripRepo) ActiveTripCounts(ctx context.Context, driverIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if len(driverIDs) == 0 {
		return map[uuid.UUID]int{}, nil
	}

	query := `
		SELECT driver_id, COUNT(*) AS active
		FROM trips
		WHERE driver_id = ANY($1)
		  AND status NOT IN ('COMPLETED', 'CANCELLED')
		GROUP BY driver_id
	`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(driverIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to count active trips: %w", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int, len(driverIDs))
	for rows.Next() {
		var driverID uuid.UUID
		var active int
		if err := rows.Scan(&driverID, &active); err != nil {
			return nil, fmt.Errorf("failed to scan active trip count: %w", err)
		}
		counts[driverID] = active
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active trip counts: %w", err)
	}

	return counts, nil
}

// Create inserts a new trip record (used by the booking collaborator
// and by integration seeding).
func (r *TripRepo) Create(ctx context.Context, t *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, customer_id, pickup, destination, cab_type,
			fare_base, fare_distance, fare_time, fare_tax, fare_total,
			status, driver_id, sequence, created_at
		) VALUES (
			:id, :customer_id,
			point(:pickup_lng, :pickup_lat),
			point(:destination_lng, :destination_lat),
			:cab_type,
			:fare_base, :fare_distance, :fare_time, :fare_tax, :fare_total,
			:status, :driver_id, :sequence, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, t.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}
