package middleware

import (
	"net/http"
	"time"

	"rentalhub/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one structured line per request. 5xx responses log at
// error level, 4xx at warn.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(ContextRequestID)),
		}
		if email := c.GetString(ContextEmail); email != "" {
			fields = append(fields, zap.String("email", email))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()))
		}
		if ce := logger.Check(level, "request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

// Recovery turns panics into 500 responses and logs the panic value
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(ContextRequestID)),
			zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("internal server error", ""))
	})
}
