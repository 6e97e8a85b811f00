package showcase

import (
	"context"

	"github.com/google/uuid"
)

// ListingFilter narrows community listing queries
type ListingFilter struct {
	Category string
	Page     int
	PageSize int
}

// DefaultListingFilter returns a listing filter with default pagination
func DefaultListingFilter() ListingFilter {
	return ListingFilter{Page: 1, PageSize: 20}
}

// CommunityProductRepository defines the interface for projection persistence
type CommunityProductRepository interface {
	// FindByID finds a projection row by its own ID
	FindByID(ctx context.Context, id uuid.UUID) (*CommunityProduct, error)

	// FindByProductID finds the projection row for a product
	FindByProductID(ctx context.Context, productID uuid.UUID) (*CommunityProduct, error)

	// Upsert inserts the projection or overwrites the existing row for the
	// same product in place, keeping the existing row's ID
	Upsert(ctx context.Context, projection *CommunityProduct) error

	// FindByStores finds active projections of the given stores, newest
	// first, honoring the listing filter
	FindByStores(ctx context.Context, storeIDs []uuid.UUID, filter ListingFilter) ([]CommunityProduct, error)

	// CountByStores counts active projections of the given stores under the
	// same predicate FindByStores uses
	CountByStores(ctx context.Context, storeIDs []uuid.UUID, filter ListingFilter) (int64, error)

	// DeleteByProductID removes the projection row of a product
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error

	// Delete removes a projection row by its own ID
	Delete(ctx context.Context, id uuid.UUID) error
}
