package handler

import (
	storeapp "github.com/comunidad/backend/internal/application/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler handles store-related API endpoints
type StoreHandler struct {
	BaseHandler
	storeService *storeapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *storeapp.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// Create godoc
// @Summary      Register a new store
// @Description  Create a store with a unique slug. The slug is normalized to lowercase before uniqueness is checked.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        request body storeapp.CreateStoreRequest true "Store creation request"
// @Success      201 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores [post]
func (h *StoreHandler) Create(c *gin.Context) {
	var req storeapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, store)
}

// GetByID godoc
// @Summary      Get store by ID
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id} [get]
func (h *StoreHandler) GetByID(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.storeService.GetByID(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// GetBySlug godoc
// @Summary      Get store by slug
// @Tags         stores
// @Produce      json
// @Param        slug path string true "Store slug"
// @Success      200 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/slug/{slug} [get]
func (h *StoreHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.BadRequest(c, "Store slug is required")
		return
	}

	store, err := h.storeService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// List godoc
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Param        search query string false "Search keyword"
// @Param        status query string false "Status filter" Enums(active, inactive)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]storeapp.StoreResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores [get]
func (h *StoreHandler) List(c *gin.Context) {
	var filter storeapp.StoreListFilter
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

	stores, total, err := h.storeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stores, total, filter.Page, filter.PageSize)
}

// UpdateProfile godoc
// @Summary      Update store profile
// @Description  Update store contact and profile fields. Omitted fields are left unchanged. Active products of the store are refreshed in community listings.
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Param        request body storeapp.UpdateStoreProfileRequest true "Store profile update request"
// @Success      200 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id} [put]
func (h *StoreHandler) UpdateProfile(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	var req storeapp.UpdateStoreProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.UpdateProfile(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// Activate godoc
// @Summary      Activate a store
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id}/activate [post]
func (h *StoreHandler) Activate(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.storeService.Activate(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// Deactivate godoc
// @Summary      Deactivate a store
// @Description  Deactivate a store. Memberships and projections stay in place; suspend memberships to remove the store from community listings.
// @Tags         stores
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response{data=storeapp.StoreResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stores/{id}/deactivate [post]
func (h *StoreHandler) Deactivate(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.storeService.Deactivate(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}
