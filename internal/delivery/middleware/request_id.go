package middleware

import (
	"log/slog"

	deliverycontext "geekstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestScope gives every request an id and a logger tagged with it.
// A client id is reused only when it passes SanitizeRequestID.
func RequestScope(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := deliverycontext.SanitizeRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
			if requestID == "" {
				requestID = deliverycontext.NewRequestID()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			ctx, _ := deliverycontext.Scope(req.Context(), base, requestID)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
