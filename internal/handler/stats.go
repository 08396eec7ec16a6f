package handler

import (
	"net/http"

	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsHandler struct {
	stats *service.StatsService
	log   *zap.Logger
}

func NewStatsHandler(stats *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{stats: stats, log: logger}
}

// @Router /admin-stats [get]
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to build statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
