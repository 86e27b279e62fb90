package handler

import (
	"context"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the service's backing stores are reachable.
type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler creates the handler. cache may be nil when caching is disabled.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check handles GET /healthz
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	status := fiber.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status, resp.Database = "unavailable", "unreachable"
		status = fiber.StatusServiceUnavailable
	}

	// A cache outage degrades the service but does not make it unavailable.
	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Cache = "unreachable"
			if status == fiber.StatusOK {
				resp.Status = "degraded"
			}
		}
	}

	return c.Status(status).JSON(resp)
}
