package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnnouncementHandler struct {
	announcements *service.AnnouncementService
	log           *zap.Logger
}

func NewAnnouncementHandler(announcements *service.AnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, log: logger}
}

// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req model.AnnouncementRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid announcement", err)
		return
	}

	res, err := h.announcements.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to create announcement", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.announcements.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to list announcements", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
