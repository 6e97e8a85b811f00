package handler

import (
	showcaseapp "github.com/comunidad/backend/internal/application/showcase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CommunityProductHandler handles the public community product listing endpoints
type CommunityProductHandler struct {
	BaseHandler
	communityProductService *showcaseapp.CommunityProductService
}

// NewCommunityProductHandler creates a new CommunityProductHandler
func NewCommunityProductHandler(communityProductService *showcaseapp.CommunityProductService) *CommunityProductHandler {
	return &CommunityProductHandler{
		communityProductService: communityProductService,
	}
}

// ListByCommunity godoc
// @Summary      List products visible in a community
// @Description  Retrieve the denormalized product listing for a community, newest first. Only products of active member stores appear. An unknown or inactive community yields an empty page, not an error.
// @Tags         community-products
// @Produce      json
// @Param        code path string true "Community code"
// @Param        category query string false "Category filter"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]showcaseapp.CommunityProductResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /communities/code/{code}/products [get]
func (h *CommunityProductHandler) ListByCommunity(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Community code is required")
		return
	}

	var req showcaseapp.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.communityProductService.ListByCommunity(c.Request.Context(), code, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID godoc
// @Summary      Get a community product entry by ID
// @Tags         community-products
// @Produce      json
// @Param        id path string true "Projection ID" format(uuid)
// @Success      200 {object} dto.Response{data=showcaseapp.CommunityProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /community-products/{id} [get]
func (h *CommunityProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid projection ID format")
		return
	}

	entry, err := h.communityProductService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entry)
}

// Delete godoc
// @Summary      Delete a community product entry
// @Description  Remove a projection row directly. The reconciler recreates it on the next run if the source product is still active and pending sync.
// @Tags         community-products
// @Produce      json
// @Param        id path string true "Projection ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /community-products/{id} [delete]
func (h *CommunityProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid projection ID format")
		return
	}

	if err := h.communityProductService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
