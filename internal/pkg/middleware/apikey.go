package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/config"
	"github.com/openride/tripgate/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps collaborator service names to their API keys
var ServiceAPIKeys = map[string]string{
	"booking-service": config.GetEnv("BOOKING_SERVICE_API_KEY", ""),
	"fleet-service":   config.GetEnv("FLEET_SERVICE_API_KEY", ""),
	"ops-service":     config.GetEnv("OPS_SERVICE_API_KEY", ""),
}

// ValidateAPIKey validates the API key for service-to-service calls
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for _, service := range allowedServices {
				if ServiceAPIKeys[service] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[service]) {
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
