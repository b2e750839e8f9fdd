package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	nrpkg "github.com/fleetdesk/fleetdesk/internal/pkg/newrelic"
	"github.com/fleetdesk/fleetdesk/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and converts the panic into a 500 response.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicErr := fmt.Errorf("panic recovered: %v", r)

					zapLogger.Error("Recovered from panic",
						logger.Any("panic", r),
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.String("stack", string(debug.Stack())))

					nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), panicErr)

					if !c.Response().Committed {
						err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
