package handler

import (
	syncapp "github.com/comunidad/backend/internal/application/sync"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SyncHandler exposes administrative endpoints for the product projection sync
type SyncHandler struct {
	BaseHandler
	synchronizer *syncapp.Synchronizer
	reconciler   *syncapp.Reconciler
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(synchronizer *syncapp.Synchronizer, reconciler *syncapp.Reconciler) *SyncHandler {
	return &SyncHandler{
		synchronizer: synchronizer,
		reconciler:   reconciler,
	}
}

// SyncProductData reports the outcome of a single-product sync
type SyncProductData struct {
	Synced bool `json:"synced"`
}

// Run godoc
// @Summary      Run a full reconcile pass
// @Description  Synchronize every active product still flagged pending. Returns 409 when another run already holds the sync lock. Per-product failures are skipped and reflected in the count.
// @Tags         sync
// @Produce      json
// @Success      200 {object} dto.Response{data=SyncCountData}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sync/run [post]
func (h *SyncHandler) Run(c *gin.Context) {
	count, err := h.reconciler.SyncAllPending(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, SyncCountData{SyncedCount: count})
}

// SyncProduct godoc
// @Summary      Synchronize a single product
// @Description  Refresh the community projection of one product. Returns synced=false when the product or its store no longer exists.
// @Tags         sync
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=SyncProductData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sync/products/{id} [post]
func (h *SyncHandler) SyncProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	synced, err := h.synchronizer.SyncProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, SyncProductData{Synced: synced})
}

// SyncStoreProducts godoc
// @Summary      Refresh all projections of a store
// @Description  Re-project every active product of a store, regardless of sync status. Used after store profile edits.
// @Tags         sync
// @Produce      json
// @Param        id path string true "Store ID" format(uuid)
// @Success      200 {object} dto.Response{data=SyncCountData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /sync/stores/{id} [post]
func (h *SyncHandler) SyncStoreProducts(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	count, err := h.reconciler.SyncStoreProducts(c.Request.Context(), storeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, SyncCountData{SyncedCount: count})
}
