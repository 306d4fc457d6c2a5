package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/internal/utils"
	"github.com/openride/tripgate/services/trip"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip books a new trip
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var t models.Trip
	if err := c.Bind(&t); err != nil {
		logger.Warn("Invalid trip booking payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.tripUC.CreateTrip(c.Request().Context(), &t); err != nil {
		logger.Error("Failed to create trip",
			logger.String("customer_id", t.CustomerID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", t)
}

// GetTrip returns the current trip record
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	snapshot, err := h.tripUC.Resume(c.Request().Context(), tripID, models.RoleSystem)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		logger.Error("Failed to load trip",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to load trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", snapshot)
}
