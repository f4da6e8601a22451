package handlers

import (
	"context"
	"net/http"
	"time"

	"acmedash/internal/caching"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check endpoints
type HealthHandlers struct {
	db        *pgxpool.Pool
	viewCache caching.ViewCache
}

func NewHealthHandlers(db *pgxpool.Pool, viewCache caching.ViewCache) *HealthHandlers {
	return &HealthHandlers{db: db, viewCache: viewCache}
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	services := map[string]string{
		"database": "healthy",
		"redis":    "healthy",
	}

	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unhealthy"
		status = "degraded"
	}
	if err := h.viewCache.Ping(ctx); err != nil {
		services["redis"] = "unhealthy"
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}

// ReadinessCheck handles GET /health/ready
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
