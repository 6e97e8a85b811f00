package sync

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/catalog"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
)

// Synchronizer projects products into the denormalized community_products
// read model, one row per product.
type Synchronizer struct {
	productRepo    catalog.ProductRepository
	storeRepo      store.StoreRepository
	projectionRepo showcase.CommunityProductRepository
}

// NewSynchronizer creates a new Synchronizer
func NewSynchronizer(
	productRepo catalog.ProductRepository,
	storeRepo store.StoreRepository,
	projectionRepo showcase.CommunityProductRepository,
) *Synchronizer {
	return &Synchronizer{
		productRepo:    productRepo,
		storeRepo:      storeRepo,
		projectionRepo: projectionRepo,
	}
}

// SyncProduct refreshes the community projection of a single product.
//
// It returns (false, nil) when the product or its store no longer exists;
// those are recoverable outcomes a batch run counts and moves past, not
// errors. Storage failures are returned as-is. On success the projection
// row is upserted in place and the product is flagged synced, so the
// operation can be retried any number of times with the same result.
func (s *Synchronizer) SyncProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	owner, err := s.storeRepo.FindByID(ctx, product.StoreID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Orphaned product: leave its sync status untouched so the
			// gap stays visible to operators.
			return false, nil
		}
		return false, err
	}

	projection := showcase.Project(product, owner)
	if err := s.projectionRepo.Upsert(ctx, projection); err != nil {
		return false, err
	}

	product.MarkSynced()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return false, err
	}

	return true, nil
}

// RemoveProjection deletes the projection row of a product. Used when the
// product itself is deleted; missing rows are ignored.
func (s *Synchronizer) RemoveProjection(ctx context.Context, productID uuid.UUID) error {
	return s.projectionRepo.DeleteByProductID(ctx, productID)
}
