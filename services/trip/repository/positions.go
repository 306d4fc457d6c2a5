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

// PositionCache keeps the most recent position sample per trip in
// Redis so a reconnecting customer sees the last known point even
// after a gateway restart. Only the newest sample is kept.
type PositionCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewPositionCache creates a new Redis-backed position cache
func NewPositionCache(redisClient *database.RedisClient, cfg models.TrackingConfig) *PositionCache {
	ttl := time.Duration(cfg.CacheTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PositionCache{redisClient: redisClient, ttl: ttl}
}

// Store overwrites the cached sample for the trip
func (c *PositionCache) Store(ctx context.Context, pos *models.DriverPosition) error {
	key := fmt.Sprintf(constants.KeyTripPosition, pos.TripID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		constants.FieldSequence:  strconv.FormatInt(pos.Sequence, 10),
		constants.FieldTimestamp: strconv.FormatInt(pos.ReceivedAt.Unix(), 10),
	}
	if pos.Heading != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*pos.Heading, 'f', -1, 64)
	}

	if err := c.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to cache position: %w", err)
	}
	return c.redisClient.Expire(ctx, key, c.ttl)
}

// Last returns the cached sample for the trip, or nil when absent
func (c *PositionCache) Last(ctx context.Context, tripID uuid.UUID) (*models.DriverPosition, error) {
	key := fmt.Sprintf(constants.KeyTripPosition, tripID)
	fields, err := c.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude: %w", err)
	}
	seq, _ := strconv.ParseInt(fields[constants.FieldSequence], 10, 64)
	ts, _ := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)

	pos := &models.DriverPosition{
		TripID:     tripID,
		Latitude:   lat,
		Longitude:  lng,
		Sequence:   seq,
		ReceivedAt: time.Unix(ts, 0),
	}

	if raw, ok := fields[constants.FieldHeading]; ok {
		if heading, err := strconv.ParseFloat(raw, 64); err == nil {
			pos.Heading = &heading
		}
	}

	return pos, nil
}

// Evict removes the cached sample for a finished trip
func (c *PositionCache) Evict(ctx context.Context, tripID uuid.UUID) error {
	return c.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyTripPosition, tripID))
}
