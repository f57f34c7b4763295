package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags each request with an X-Request-ID and logs one line after
// the handler ran. The user id is present only on authenticated routes,
// since the auth middleware runs inside this one.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		userID := "-"
		if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok && id != uuid.Nil {
			userID = id.String()
		}

		m.logger.Printf(
			"[HTTP] %s %s | rid=%s status=%d user_id=%s ip=%s latency_ms=%d bytes=%d",
			c.Method(), c.OriginalURL(), rid, c.Response().StatusCode(), userID,
			c.IP(), time.Since(start).Milliseconds(), c.Response().Header.ContentLength(),
		)

		return err
	}
}
