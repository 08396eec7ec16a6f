package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler handles coupon codes
type CouponHandler struct {
	coupons *service.CouponService
	log     *zap.Logger
}

func NewCouponHandler(coupons *service.CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{coupons: coupons, log: logger}
}

// @Router /cupon-codes [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req model.CouponRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid coupon", err)
		return
	}

	res, err := h.coupons.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to create coupon", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Router /cupon-codes [get]
func (h *CouponHandler) List(c *gin.Context) {
	list, err := h.coupons.List(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to list coupons", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetByCode returns the coupon or null
// @Router /cupon-codes/{code} [get]
func (h *CouponHandler) GetByCode(c *gin.Context) {
	coupon, err := h.coupons.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, h.log, "failed to get coupon", err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// GetByID returns the coupon or null; malformed ids are rejected with 400
// @Router /cupon/{id} [get]
func (h *CouponHandler) GetByID(c *gin.Context) {
	coupon, err := h.coupons.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.log, "failed to get coupon", err)
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// Update applies a partial update
// @Router /cupon/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	var req model.CouponUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid coupon update", err)
		return
	}

	res, err := h.coupons.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, h.log, "failed to update coupon", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
