package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/openride/tripgate/internal/pkg/constants"
	jwtpkg "github.com/openride/tripgate/internal/pkg/jwt"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
)

// Client is one authenticated WebSocket connection. Writes are
// serialized; gorilla connections allow a single concurrent writer.
type Client struct {
	UserID string
	Role   models.Role

	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
}

// Send writes an event envelope to the client
func (c *Client) Send(event string, data interface{}) error {
	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.conn == nil {
		return websocket.ErrCloseSent
	}

	return c.conn.WriteJSON(models.WSMessage{
		Event: event,
		Data:  rawData,
	})
}

// SendError writes an error event to the client
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// ReadMessage blocks for the next inbound frame
func (c *Client) ReadMessage() ([]byte, error) {
	_, msg, err := c.conn.ReadMessage()
	return msg, err
}

// Close closes the underlying connection. Safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Manager authenticates and upgrades WebSocket connections
type Manager struct {
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and services a connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		UserID: claims.UserID,
		Role:   models.Role(claims.Role),
		conn:   ws,
	}
	defer client.Close()

	return handleClient(client)
}

func (m *Manager) authenticate(c echo.Context) (*models.WebSocketClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	if claims.Role != string(models.RoleCustomer) && claims.Role != string(models.RoleDriver) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Unknown role")
	}

	return claims, nil
}
