package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/utils"
)

// PanicRecoveryMiddleware recovers panics raised while serving a
// request, logs them with the stack trace, and answers 500. Mounted
// first so every later middleware and handler is covered, the
// websocket upgrade path included.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered during request processing",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
						logger.String("stack_trace", string(debug.Stack())))

					if !c.Response().Committed {
						_ = utils.InternalServerErrorResponse(c, "")
					}
				}
			}()

			return next(c)
		}
	}
}
