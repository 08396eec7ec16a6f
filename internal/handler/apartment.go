package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApartmentHandler serves the apartment listings
type ApartmentHandler struct {
	apartments *service.ApartmentService
	log        *zap.Logger
}

func NewApartmentHandler(apartments *service.ApartmentService, logger *zap.Logger) *ApartmentHandler {
	return &ApartmentHandler{apartments: apartments, log: logger}
}

// List returns one page of apartments
// @Router /appertments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	var q model.PageQuery
	if err := bindQuery(c, &q); err != nil {
		badRequest(c, "invalid pagination", err)
		return
	}

	apts, err := h.apartments.List(c.Request.Context(), q)
	if err != nil {
		fail(c, h.log, "failed to list apartments", err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

// Count returns the number of apartments
// @Router /appertments-count [get]
func (h *ApartmentHandler) Count(c *gin.Context) {
	n, err := h.apartments.Count(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to count apartments", err)
		return
	}
	c.JSON(http.StatusOK, model.CountResponse{Count: n})
}

// Create adds an apartment
// @Router /appertments [post]
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req model.ApartmentRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid apartment", err)
		return
	}

	res, err := h.apartments.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to create apartment", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
