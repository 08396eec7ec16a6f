package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment intents, finalized payments and staged
// payment info.
type PaymentHandler struct {
	payments *service.PaymentService
	log      *zap.Logger
}

func NewPaymentHandler(payments *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: logger}
}

// CreateIntent returns the client secret of a new payment intent
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid price", err)
		return
	}

	res, err := h.payments.CreateIntent(c.Request.Context(), *req.Price)
	if err != nil {
		fail(c, h.log, "failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Finalize stores a payment and clears staged payment info
// @Router /payments [post]
func (h *PaymentHandler) Finalize(c *gin.Context) {
	var req model.PaymentRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid payment", err)
		return
	}

	res, err := h.payments.Finalize(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to save payment", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// History lists payments for an email, optionally for one month
// @Router /payments/{email} [get]
func (h *PaymentHandler) History(c *gin.Context) {
	var q model.PaymentQuery
	if err := bindQuery(c, &q); err != nil {
		badRequest(c, "invalid query", err)
		return
	}

	list, err := h.payments.History(c.Request.Context(), c.Param("email"), q.Month)
	if err != nil {
		fail(c, h.log, "failed to list payments", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Router /payments-info [post]
func (h *PaymentHandler) StageInfo(c *gin.Context) {
	var req model.PaymentInfoRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid payment info", err)
		return
	}

	res, err := h.payments.StageInfo(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to save payment info", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Router /payments-info/{email} [get]
func (h *PaymentHandler) InfoByEmail(c *gin.Context) {
	list, err := h.payments.InfoByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, "failed to get payment info", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
