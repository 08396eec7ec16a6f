package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

// NewUserHandler creates a new User handler
func NewUserHandler(users *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: logger}
}

// Upsert stores the user on first sight and otherwise returns the stored one
// @Router /users [put]
func (h *UserHandler) Upsert(c *gin.Context) {
	var req model.UpsertUserRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid user", err)
		return
	}

	user, created, err := h.users.Upsert(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to save user", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// Get returns the user or null
// @Router /users/{email} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, "failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
