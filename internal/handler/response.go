package handler

import (
	"errors"
	"net/http"

	"rentalhub/internal/middleware"
	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func badRequest(c *gin.Context, message string, err error) {
	detail := ""
	if err != nil {
		detail = describeBindError(err)
	}
	c.JSON(http.StatusBadRequest, model.NewErrorResponse(message, detail))
}

// fail maps a service error to a status code. Anything unrecognized is a
// 500 whose cause is logged but not returned.
func fail(c *gin.Context, log *zap.Logger, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(message, err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.NewErrorResponse(message, err.Error()))
	case errors.Is(err, service.ErrGatewayUnavailable):
		c.JSON(http.StatusServiceUnavailable, model.NewErrorResponse(message, err.Error()))
	default:
		_ = c.Error(err)
		log.Error(message,
			zap.Error(err),
			zap.String("route", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.ContextRequestID)))
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(message, ""))
	}
}
