package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/middleware"
	"github.com/openride/tripgate/services/trip/handler/http"
	"github.com/openride/tripgate/services/trip/handler/websocket"
)

// Handler coordinates all protocol handlers for the trip gateway
type Handler struct {
	tripHandler   *http.TripHandler
	driverHandler *http.DriverHandler
	wsManager     *websocket.WebSocketManager
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *http.TripHandler,
	driverHandler *http.DriverHandler,
	wsManager *websocket.WebSocketManager,
) *Handler {
	return &Handler{
		tripHandler:   tripHandler,
		driverHandler: driverHandler,
		wsManager:     wsManager,
	}
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Client channels; JWT is validated during the upgrade handshake
	e.GET("/ws", h.wsManager.HandleWebSocket)

	// Service-to-service surface for the booking and fleet collaborators
	internal := e.Group("/internal", middleware.ValidateAPIKey("booking-service", "fleet-service", "ops-service"))
	internal.POST("/trips", h.tripHandler.CreateTrip)
	internal.GET("/trips/:id", h.tripHandler.GetTrip)
	internal.POST("/drivers", h.driverHandler.RegisterDriver)
	internal.DELETE("/drivers/:id", h.driverHandler.DeregisterDriver)
}
