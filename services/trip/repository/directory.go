package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/database"
	"github.com/openride/tripgate/internal/pkg/models"
)

const (
	// holdTTL caps how long a driver hold can outlive its trip if the
	// gateway dies before releasing it
	holdTTL = 2 * time.Hour

	// profileTTL expires drivers that stop refreshing their presence
	profileTTL = 24 * time.Hour
)

// DriverDirectory locates candidate drivers through Redis geo sets and
// arbitrates exclusive holds with SETNX, so holds stay correct across
// gateway instances.
type DriverDirectory struct {
	redisClient *database.RedisClient
}

// NewDriverDirectory creates a new Redis-backed driver directory
func NewDriverDirectory(redisClient *database.RedisClient) *DriverDirectory {
	return &DriverDirectory{redisClient: redisClient}
}

// UpsertDriver registers or refreshes a driver's presence and location
func (d *DriverDirectory) UpsertDriver(ctx context.Context, driver *models.DriverSummary) error {
	geoKey := fmt.Sprintf(constants.KeyDriverGeo, driver.CabType)
	if err := d.redisClient.GeoAdd(ctx, geoKey, driver.Location.Longitude, driver.Location.Latitude, driver.ID.String()); err != nil {
		return fmt.Errorf("failed to add driver to geo set: %w", err)
	}

	profileKey := fmt.Sprintf(constants.KeyDriverProfile, driver.ID)
	profile := map[string]interface{}{
		constants.FieldName:      driver.Name,
		constants.FieldCabType:   driver.CabType,
		constants.FieldPlate:     driver.PlateNumber,
		constants.FieldTrips:     strconv.Itoa(driver.ActiveTrips),
		constants.FieldAvailable: "1",
		constants.FieldLatitude:  strconv.FormatFloat(driver.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(driver.Location.Longitude, 'f', -1, 64),
	}
	if err := d.redisClient.HSet(ctx, profileKey, profile); err != nil {
		return fmt.Errorf("failed to store driver profile: %w", err)
	}
	return d.redisClient.Expire(ctx, profileKey, profileTTL)
}

// RemoveDriver takes a driver out of the candidate pool
func (d *DriverDirectory) RemoveDriver(ctx context.Context, driverID uuid.UUID, cabType string) error {
	geoKey := fmt.Sprintf(constants.KeyDriverGeo, cabType)
	if err := d.redisClient.GeoRemove(ctx, geoKey, driverID.String()); err != nil {
		return fmt.Errorf("failed to remove driver from geo set: %w", err)
	}
	return d.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverProfile, driverID))
}

// FindCandidates returns online, unheld drivers of the cab type within
// radiusKm of the point, nearest first.
func (d *DriverDirectory) FindCandidates(ctx context.Context, point models.Location, radiusKm float64, cabType string) ([]models.DriverSummary, error) {
	geoKey := fmt.Sprintf(constants.KeyDriverGeo, cabType)
	locations, err := d.redisClient.GeoRadius(ctx, geoKey, point.Longitude, point.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search driver geo set: %w", err)
	}

	candidates := make([]models.DriverSummary, 0, len(locations))
	for _, loc := range locations {
		driverID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}

		profile, err := d.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverProfile, driverID))
		if err != nil || len(profile) == 0 {
			continue
		}
		if profile[constants.FieldAvailable] != "1" {
			continue
		}

		// already held drivers never enter the candidate list
		if held, _ := d.isHeld(ctx, driverID); held {
			continue
		}

		trips, _ := strconv.Atoi(profile[constants.FieldTrips])
		candidates = append(candidates, models.DriverSummary{
			ID:          driverID,
			Name:        profile[constants.FieldName],
			CabType:     cabType,
			PlateNumber: profile[constants.FieldPlate],
			Location: models.Location{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			},
			DistanceKm:  loc.Dist,
			ActiveTrips: trips,
		})
	}

	return candidates, nil
}

// TryHold atomically claims the driver for the trip
func (d *DriverDirectory) TryHold(ctx context.Context, driverID, tripID uuid.UUID) (bool, error) {
	key := fmt.Sprintf(constants.KeyDriverHold, driverID)
	ok, err := d.redisClient.SetNX(ctx, key, tripID.String(), holdTTL)
	if err != nil {
		return false, fmt.Errorf("failed to hold driver: %w", err)
	}
	return ok, nil
}

// Release frees a held driver
func (d *DriverDirectory) Release(ctx context.Context, driverID uuid.UUID) error {
	return d.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverHold, driverID))
}

// GetDriver returns the directory profile for one driver
func (d *DriverDirectory) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverSummary, error) {
	profile, err := d.redisClient.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverProfile, driverID))
	if err != nil {
		return nil, fmt.Errorf("failed to load driver profile: %w", err)
	}
	if len(profile) == 0 {
		return nil, fmt.Errorf("driver %s not found", driverID)
	}

	lat, _ := strconv.ParseFloat(profile[constants.FieldLatitude], 64)
	lng, _ := strconv.ParseFloat(profile[constants.FieldLongitude], 64)
	trips, _ := strconv.Atoi(profile[constants.FieldTrips])

	return &models.DriverSummary{
		ID:          driverID,
		Name:        profile[constants.FieldName],
		CabType:     profile[constants.FieldCabType],
		PlateNumber: profile[constants.FieldPlate],
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
		},
		ActiveTrips: trips,
	}, nil
}

func (d *DriverDirectory) isHeld(ctx context.Context, driverID uuid.UUID) (bool, error) {
	_, err := d.redisClient.Get(ctx, fmt.Sprintf(constants.KeyDriverHold, driverID))
	if err != nil {
		return false, nil // redis.Nil means unheld
	}
	return true, nil
}
