package handler

import (
	communityapp "github.com/comunidad/backend/internal/application/community"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommunityHandler handles community-related API endpoints
type CommunityHandler struct {
	BaseHandler
	communityService *communityapp.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityService *communityapp.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

// Create godoc
// @Summary      Create a new community
// @Description  Create a community with a unique code. The code is normalized to lowercase before uniqueness is checked.
// @Tags         communities
// @Accept       json
// @Produce      json
// @Param        request body communityapp.CreateCommunityRequest true "Community creation request"
// @Success      201 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities [post]
func (h *CommunityHandler) Create(c *gin.Context) {
	var req communityapp.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	community, err := h.communityService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, community)
}

// GetByID godoc
// @Summary      Get community by ID
// @Tags         communities
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id} [get]
func (h *CommunityHandler) GetByID(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	community, err := h.communityService.GetByID(c.Request.Context(), communityID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, community)
}

// GetByCode godoc
// @Summary      Get community by code
// @Tags         communities
// @Produce      json
// @Param        code path string true "Community code"
// @Success      200 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/code/{code} [get]
func (h *CommunityHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Community code is required")
		return
	}

	community, err := h.communityService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, community)
}

// List godoc
// @Summary      List communities
// @Description  Retrieve a paginated list of communities. With only_public=true, only active and visible communities are returned.
// @Tags         communities
// @Produce      json
// @Param        search query string false "Search keyword"
// @Param        only_public query bool false "Restrict to active, visible communities"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]communityapp.CommunityResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities [get]
func (h *CommunityHandler) List(c *gin.Context) {
	var filter communityapp.CommunityListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	communities, total, err := h.communityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, communities, total, filter.Page, filter.PageSize)
}

// Update godoc
// @Summary      Update community profile
// @Description  Update community profile fields. Omitted fields are left unchanged.
// @Tags         communities
// @Accept       json
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Param        request body communityapp.UpdateCommunityRequest true "Community update request"
// @Success      200 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id} [put]
func (h *CommunityHandler) Update(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	var req communityapp.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	community, err := h.communityService.Update(c.Request.Context(), communityID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, community)
}

// Activate godoc
// @Summary      Activate a community
// @Tags         communities
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id}/activate [post]
func (h *CommunityHandler) Activate(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	community, err := h.communityService.Activate(c.Request.Context(), communityID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, community)
}

// Deactivate godoc
// @Summary      Deactivate a community
// @Description  Deactivate a community. Its product listings return empty results until it is reactivated.
// @Tags         communities
// @Produce      json
// @Param        id path string true "Community ID" format(uuid)
// @Success      200 {object} dto.Response{data=communityapp.CommunityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/{id}/deactivate [post]
func (h *CommunityHandler) Deactivate(c *gin.Context) {
	communityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid community ID format")
		return
	}

	community, err := h.communityService.Deactivate(c.Request.Context(), communityID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, community)
}
