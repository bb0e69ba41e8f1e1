package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger tags every request with a request id and emits one access log
// event once the handler chain finishes.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestLogger := log.With().Str("request_id", uuid.New().String()).Logger()
		ctx := requestLogger.WithContext(c.Request().Context())
		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)

		requestLogger.Info().
			Str("method", c.Request().Method).
			Str("endpoint", c.Request().URL.Path).
			Str("remote_ip", c.RealIP()).
			Int("status", c.Response().Status).
			Int64("latency", time.Since(start).Milliseconds()).
			Msg("Request processed")

		return err
	}
}
