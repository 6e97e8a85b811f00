package handler

import (
	communityapp "github.com/comunidad/backend/internal/application/community"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MembershipHandler handles community membership API endpoints
type MembershipHandler struct {
	BaseHandler
	membershipService *communityapp.MembershipService
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(membershipService *communityapp.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// Enroll godoc
// @Summary      Enroll a store in a community
// @Description  Create an active membership linking a store to a community. A store can be enrolled in a community at most once.
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Param        request body communityapp.EnrollStoreRequest true "Enrollment request"
// @Success      201 {object} dto.Response{data=communityapp.MembershipResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id}/members [post]
func (h *MembershipHandler) Enroll(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	var req communityapp.EnrollStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	membership, err := h.membershipService.Enroll(c.Request.Context(), communityID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, membership)
}

// ListByCommunity godoc
// @Summary      List members of a community
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Param        status query string false "Status filter" Enums(active, inactive)
// @Success      200 {object} dto.Response{data=[]communityapp.MembershipResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id}/members [get]
func (h *MembershipHandler) ListByCommunity(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	var filter communityapp.MembershipListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	memberships, err := h.membershipService.ListByCommunity(c.Request.Context(), communityID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, memberships)
}

// ListByStore godoc
// @Summary      List a store's community memberships
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]communityapp.MembershipResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id}/memberships [get]
func (h *MembershipHandler) ListByStore(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	memberships, err := h.membershipService.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, memberships)
}

// GetByID godoc
// @Summary      Get membership by ID
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Membership ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.MembershipResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /memberships/{id} [get]
func (h *MembershipHandler) GetByID(c *gin.Context) {
	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid membership ID format")
		return
	}

	membership, err := h.membershipService.GetByID(c.Request.Context(), membershipID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, membership)
}

// Activate godoc
// @Summary      Reinstate a suspended membership
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Membership ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.MembershipResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /memberships/{id}/activate [post]
func (h *MembershipHandler) Activate(c *gin.Context) {
	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid membership ID format")
		return
	}

	membership, err := h.membershipService.Activate(c.Request.Context(), membershipID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, membership)
}

// Suspend godoc
// @Summary      Suspend a membership
// @Description  Suspend a membership. The store's products disappear from the community's listings on the next read.
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Membership ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.MembershipResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /memberships/{id}/suspend [post]
func (h *MembershipHandler) Suspend(c *gin.Context) {
	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid membership ID format")
		return
	}

	membership, err := h.membershipService.Suspend(c.Request.Context(), membershipID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, membership)
}

// Remove godoc
// @Summary      Remove a membership
// @Tags         memberships
// @Produce      json
// @Param        id path string true "Membership ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /memberships/{id} [delete]
func (h *MembershipHandler) Remove(c *gin.Context) {
	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid membership ID format")
		return
	}

	if err := h.membershipService.Remove(c.Request.Context(), membershipID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
