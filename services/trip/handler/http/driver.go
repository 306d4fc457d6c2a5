package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/models"
	"github.com/openride/tripgate/internal/utils"
	"github.com/openride/tripgate/services/trip"
)

// DriverHandler handles HTTP requests for driver directory operations
type DriverHandler struct {
	tripUC trip.TripUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(tripUC trip.TripUC) *DriverHandler {
	return &DriverHandler{tripUC: tripUC}
}

// RegisterDriver places or refreshes a driver in the matching directory
func (h *DriverHandler) RegisterDriver(c echo.Context) error {
	var driver models.DriverSummary
	if err := c.Bind(&driver); err != nil {
		logger.Warn("Invalid driver registration payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.tripUC.RegisterDriver(c.Request().Context(), &driver); err != nil {
		logger.Error("Failed to register driver",
			logger.String("driver_id", driver.ID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver registered", driver)
}

// DeregisterDriver removes a driver from the matching directory
func (h *DriverHandler) DeregisterDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	cabType := c.QueryParam("cab_type")
	if cabType == "" {
		return utils.BadRequestResponse(c, "cab_type is required")
	}

	if err := h.tripUC.DeregisterDriver(c.Request().Context(), driverID, cabType); err != nil {
		logger.Error("Failed to deregister driver",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to deregister driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver deregistered", nil)
}
