package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"resume-match/internal/pkg/response"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    pinger
	cache pinger
}

func NewHealthHandler(db, cache pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/healthz", h.Health)
}

// Health reports dependency status. The cache is optional infrastructure,
// so a down cache degrades the report without failing the check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := map[string]string{"database": "ok", "cache": "ok"}

	if h.db == nil || h.db.Ping(ctx) != nil {
		deps["database"] = "down"
		status = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(ctx) != nil {
		deps["cache"] = "down"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "unhealthy", deps)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, deps)
}
