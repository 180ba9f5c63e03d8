package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header name for request ID
const RequestIDHeader = "X-Request-ID"

const requestIDContextKey = "request_id"

// RequestID tags each request with a unique id, reusing an inbound
// X-Request-ID (from a load balancer, etc.) when present.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set(requestIDContextKey, requestID)
			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID for the current request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDContextKey).(string)
	return id
}
