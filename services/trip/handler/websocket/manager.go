package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/openride/tripgate/internal/pkg/constants"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	wspkg "github.com/openride/tripgate/internal/pkg/websocket"
	"github.com/openride/tripgate/services/trip"
)

// WebSocketManager services trip channels: it dispatches inbound
// events to the use case and owns the per-connection subscription
// state (registry entries and position pumps).
type WebSocketManager struct {
	tripUC   trip.TripUC
	manager  *wspkg.Manager
	registry *Registry
}

// NewWebSocketManager creates the trip WebSocket manager
func NewWebSocketManager(tripUC trip.TripUC, manager *wspkg.Manager, registry *Registry) *WebSocketManager {
	return &WebSocketManager{
		tripUC:   tripUC,
		manager:  manager,
		registry: registry,
	}
}

// Registry exposes the connection registry (wired as the use case notifier)
func (m *WebSocketManager) Registry() *Registry {
	return m.registry
}

// HandleWebSocket handles a new WebSocket connection
func (m *WebSocketManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.serveClient)
}

// session is the per-connection state for one serviced channel
type session struct {
	client *wspkg.Client

	mu      sync.Mutex
	tripID  uuid.UUID
	pump    <-chan models.DriverPosition
	pumping bool
}

func (m *WebSocketManager) serveClient(client *wspkg.Client) error {
	sess := &session{client: client}
	defer m.teardown(sess)

	for {
		msg, err := client.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := m.handleMessage(sess, msg); err != nil {
			logger.Debug("message handling failed",
				logger.String("user_id", client.UserID),
				logger.Err(err))
		}
	}
}

// teardown runs when the channel closes for any reason. Closing a
// channel never cancels the trip; for drivers it only starts the
// reconnect grace path.
func (m *WebSocketManager) teardown(sess *session) {
	trips := m.registry.Unregister(sess.client)

	sess.mu.Lock()
	if sess.pumping {
		m.tripUC.UnsubscribePositions(sess.tripID, sess.pump)
		sess.pumping = false
	}
	sess.mu.Unlock()

	if sess.client.Role == models.RoleDriver {
		for _, tripID := range trips {
			m.tripUC.DriverDisconnected(tripID)
		}
	}

	sess.client.Close()
}

func (m *WebSocketManager) handleMessage(sess *session, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return sess.client.SendError(constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventSubscribe:
		return m.handleSubscribe(sess, wsMsg.Data)
	case constants.EventReportPosition:
		return m.handleReportPosition(sess, wsMsg.Data)
	case constants.EventRequestTransition:
		return m.handleRequestTransition(sess, wsMsg.Data)
	case constants.EventResume:
		return m.handleResume(sess, wsMsg.Data)
	case constants.EventPing:
		return sess.client.Send(constants.EventPong, nil)
	default:
		return sess.client.SendError(constants.ErrorInvalidFormat, "Unknown event type")
	}
}
