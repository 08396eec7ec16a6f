package handler

import (
	"net/http"

	"rentalhub/internal/model"
	"rentalhub/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MembershipHandler serves member records, agreement requests and the admin
// decisions that move users between them.
type MembershipHandler struct {
	membership *service.MembershipService
	log        *zap.Logger
}

func NewMembershipHandler(membership *service.MembershipService, logger *zap.Logger) *MembershipHandler {
	return &MembershipHandler{membership: membership, log: logger}
}

// @Router /membersinfo [post]
func (h *MembershipHandler) CreateMember(c *gin.Context) {
	var req model.MemberRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid member", err)
		return
	}

	res, err := h.membership.CreateMember(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to create member", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Router /members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	members, err := h.membership.ListMembers(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to list members", err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// @Router /member/{email} [get]
func (h *MembershipHandler) GetMember(c *gin.Context) {
	member, err := h.membership.GetMember(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, "failed to get member", err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Revoke demotes a member back to a plain user
// @Router /member/{email} [delete]
func (h *MembershipHandler) Revoke(c *gin.Context) {
	change, err := h.membership.Revoke(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, "failed to revoke membership", err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// Decide approves (role "member") or rejects (role "user") the pending
// agreement requests of an email.
// @Router /agements-user/{email} [patch]
func (h *MembershipHandler) Decide(c *gin.Context) {
	var req model.RoleUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid role update", err)
		return
	}

	change, err := h.membership.Decide(c.Request.Context(), c.Param("email"), &req)
	if err != nil {
		fail(c, h.log, "failed to update agreement", err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// @Router /agreementlists [post]
func (h *MembershipHandler) CreateAgreement(c *gin.Context) {
	var req model.AgreementRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, "invalid agreement", err)
		return
	}

	res, err := h.membership.CreateAgreement(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.log, "failed to create agreement", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Router /agreementlists [get]
func (h *MembershipHandler) ListAgreements(c *gin.Context) {
	list, err := h.membership.ListAgreements(c.Request.Context())
	if err != nil {
		fail(c, h.log, "failed to list agreements", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Router /agreementlists/{email} [get]
func (h *MembershipHandler) AgreementsByEmail(c *gin.Context) {
	list, err := h.membership.AgreementsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, h.log, "failed to get agreements", err)
		return
	}
	c.JSON(http.StatusOK, list)
}
