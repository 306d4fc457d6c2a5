package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// handleReportPosition accepts driver-side location samples. Only the
// active driver channel for the trip may report; anything else is
// dropped without a reply.
func (m *WebSocketManager) handleReportPosition(sess *session, data json.RawMessage) error {
	if sess.client.Role != models.RoleDriver {
		return sess.client.SendError(constants.ErrorRoleNotAllowed, "Only drivers report positions")
	}

	var report models.PositionReport
	if err := json.Unmarshal(data, &report); err != nil {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Invalid position format")
	}

	if report.Latitude < -90 || report.Latitude > 90 || report.Longitude < -180 || report.Longitude > 180 {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Coordinates out of range")
	}

	if err := m.registry.VerifyActive(report.TripID, models.RoleDriver, sess.client); errors.Is(err, trip.ErrStaleChannel) {
		// superseded handle: dropped without a reply
		logger.Debug("position report from stale channel dropped",
			logger.String("trip_id", report.TripID.String()),
			logger.String("user_id", sess.client.UserID))
		return nil
	}

	if err := m.tripUC.ReportPosition(context.Background(), &report); err != nil {
		logger.Warn("position report rejected",
			logger.String("trip_id", report.TripID.String()),
			logger.String("user_id", sess.client.UserID),
			logger.Err(err))
	}

	return nil
}
