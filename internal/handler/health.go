package handler

import (
	"context"
	"net/http"
	"time"

	"rentalhub/internal/version"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// PingFunc checks that the database answers
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	ping PingFunc
	log  *zap.Logger
}

func NewHealthHandler(ping PingFunc, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: logger}
}

// Root is the plain-text liveness probe
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// Healthz reports whether MongoDB is reachable
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}

// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}
