package catalog

import (
	"context"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll finds all products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByStore finds all products of a store
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindActiveByStore finds all active products of a store, without pagination.
	// Used by the reconciler when refreshing a store's projections.
	FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]Product, error)

	// FindActivePendingSync finds all active products whose projection is stale
	FindActivePendingSync(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStore counts products of a store
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}
