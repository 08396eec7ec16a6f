package middleware

import (
	"context"
	"net/http"
	"strings"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by Auth
const (
	ContextEmail = "email"
	ContextName  = "name"
)

const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

// TokenVerifier validates bearer tokens
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// AdminChecker reports whether an email belongs to an admin
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Auth requires an "Authorization: Bearer <token>" header carrying a valid
// token and stores the token's email in the gin context.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(msgUnauthorized, ""))
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(msgUnauthorized, ""))
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RequireAdmin must run after Auth. Non-admins get 401 with "forbidden
// access", matching what existing clients expect.
func RequireAdmin(users AdminChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmail)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(msgUnauthorized, ""))
			return
		}

		ok, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			logger.Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("failed to verify role", ""))
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse(msgForbidden, ""))
			return
		}
		c.Next()
	}
}
