package handler

import (
	"net/http"
	"strings"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler issues access tokens
type AuthHandler struct {
	tokens *service.TokenService
	log    *zap.Logger
}

func NewAuthHandler(tokens *service.TokenService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: logger}
}

// IssueToken signs a token for the posted identity. The caller is trusted to
// have authenticated the user with the identity provider first.
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.TokenRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid token request", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, err := h.tokens.Issue(email, strings.TrimSpace(req.Name))
	if err != nil {
		fail(c, h.log, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
