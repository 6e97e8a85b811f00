package sync

import (
	"context"

	"github.com/comunidad/backend/internal/domain/catalog"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductSyncer is the single-product operation the reconciler drives
type ProductSyncer interface {
	SyncProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}

// RunLock serializes full reconciliation runs across instances.
// A nil lock disables the guard.
type RunLock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// Reconciler drives bulk projection refreshes. Individual products that
// fail to sync are logged and skipped; a run always finishes with a count
// of the products it actually refreshed.
type Reconciler struct {
	syncer      ProductSyncer
	productRepo catalog.ProductRepository
	lock        RunLock
	logger      *zap.Logger
}

// NewReconciler creates a new Reconciler. lock may be nil.
func NewReconciler(
	syncer ProductSyncer,
	productRepo catalog.ProductRepository,
	lock RunLock,
	logger *zap.Logger,
) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		syncer:      syncer,
		productRepo: productRepo,
		lock:        lock,
		logger:      logger,
	}
}

// SyncAllPending refreshes every active product whose projection is stale
// and returns how many were synchronized. Only enumeration failures abort
// the run; per-product failures are skipped.
func (r *Reconciler) SyncAllPending(ctx context.Context) (int, error) {
	if r.lock != nil {
		acquired, err := r.lock.Acquire(ctx)
		if err != nil {
			return 0, err
		}
		if !acquired {
			return 0, shared.ErrSyncInProgress
		}
		defer func() {
			if err := r.lock.Release(ctx); err != nil {
				r.logger.Warn("failed to release sync run lock", zap.Error(err))
			}
		}()
	}

	products, err := r.productRepo.FindActivePendingSync(ctx)
	if err != nil {
		return 0, err
	}

	return r.syncProducts(ctx, products), nil
}

// SyncStoreProducts refreshes every active product of a store, regardless
// of sync status. Used after store profile edits so projections pick up
// the new display fields.
func (r *Reconciler) SyncStoreProducts(ctx context.Context, storeID uuid.UUID) (int, error) {
	products, err := r.productRepo.FindActiveByStore(ctx, storeID)
	if err != nil {
		return 0, err
	}

	return r.syncProducts(ctx, products), nil
}

func (r *Reconciler) syncProducts(ctx context.Context, products []catalog.Product) int {
	count := 0
	for i := range products {
		product := &products[i]

		synced, err := r.syncer.SyncProduct(ctx, product.ID)
		if err != nil {
			r.logger.Warn("product sync failed, skipping",
				zap.String("product_id", product.ID.String()),
				zap.String("store_id", product.StoreID.String()),
				zap.Error(err))
			continue
		}
		if !synced {
			r.logger.Warn("product skipped: product or store gone",
				zap.String("product_id", product.ID.String()),
				zap.String("store_id", product.StoreID.String()))
			continue
		}
		count++
	}
	return count
}
