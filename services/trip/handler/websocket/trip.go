package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/services/trip"
)

// handleSubscribe opens the trip channel for the authenticated party,
// registers it for event delivery, and for customers starts the
// position pump.
func (m *WebSocketManager) handleSubscribe(sess *session, data json.RawMessage) error {
	var req models.SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Invalid subscribe format")
	}

	sess.mu.Lock()
	bound := sess.tripID
	sess.mu.Unlock()
	// one connection serves one trip; switching trips needs a fresh
	// connection so the position pump and registry stay consistent
	if bound != uuid.Nil && bound != req.TripID {
		return sess.client.SendError(constants.ErrorAlreadySubscribed, "Connection already bound to another trip")
	}

	t, err := m.tripUC.Subscribe(context.Background(), req.TripID, sess.client.Role, sess.client.UserID)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return sess.client.SendError(constants.ErrorTripNotFound, "Trip not found")
		}
		return sess.client.SendError(constants.ErrorInternalError, "Failed to subscribe")
	}

	m.registry.Register(req.TripID, sess.client.Role, sess.client)

	sess.mu.Lock()
	sess.tripID = req.TripID
	if sess.client.Role == models.RoleCustomer && !sess.pumping {
		sess.pump = m.tripUC.SubscribePositions(req.TripID)
		sess.pumping = true
		go m.pumpPositions(sess, req.TripID)
	}
	sess.mu.Unlock()

	if sess.client.Role == models.RoleDriver {
		m.tripUC.DriverConnected(req.TripID)
	}

	logger.Info("channel subscribed",
		logger.String("trip_id", req.TripID.String()),
		logger.String("role", string(sess.client.Role)),
		logger.String("user_id", sess.client.UserID))

	return sess.client.Send(constants.EventSubscribed, t)
}

// pumpPositions forwards the coalescing position stream to the client
func (m *WebSocketManager) pumpPositions(sess *session, tripID uuid.UUID) {
	defer logger.RecoverPanic("position_pump")

	sess.mu.Lock()
	pump := sess.pump
	sess.mu.Unlock()

	for pos := range pump {
		if err := sess.client.Send(constants.EventPositionUpdate, pos); err != nil {
			logger.Debug("failed to push position update",
				logger.String("trip_id", tripID.String()),
				logger.Err(err))
			return
		}
	}
}

// handleRequestTransition advances the trip on behalf of the client's
// role. Invalid transitions are reported back and otherwise ignored;
// the channel stays up.
func (m *WebSocketManager) handleRequestTransition(sess *session, data json.RawMessage) error {
	var req models.TransitionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Invalid transition format")
	}

	if err := m.registry.VerifyActive(req.TripID, sess.client.Role, sess.client); errors.Is(err, trip.ErrStaleChannel) {
		// superseded handle: dropped without a reply
		logger.Debug("transition request from stale channel dropped",
			logger.String("trip_id", req.TripID.String()),
			logger.String("user_id", sess.client.UserID))
		return nil
	}

	if _, err := m.tripUC.RequestTransition(context.Background(), req.TripID, req.Status, sess.client.Role); err != nil {
		switch {
		case errors.Is(err, trip.ErrInvalidTransition):
			return sess.client.SendError(constants.ErrorInvalidTransition, err.Error())
		case errors.Is(err, trip.ErrTripNotFound):
			return sess.client.SendError(constants.ErrorTripNotFound, "Trip not found")
		default:
			return sess.client.SendError(constants.ErrorInternalError, "Failed to apply transition")
		}
	}

	return nil
}

// handleResume serves the authoritative snapshot to a reconnecting
// client before any further events.
func (m *WebSocketManager) handleResume(sess *session, data json.RawMessage) error {
	var req models.ResumeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Invalid resume format")
	}

	snapshot, err := m.tripUC.Resume(context.Background(), req.TripID, sess.client.Role)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return sess.client.SendError(constants.ErrorTripNotFound, "Trip not found")
		}
		return sess.client.SendError(constants.ErrorInternalError, "Failed to resume")
	}

	return sess.client.Send(constants.EventSnapshot, snapshot)
}
