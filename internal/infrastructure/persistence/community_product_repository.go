package persistence

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCommunityProductRepository implements CommunityProductRepository using GORM
type GormCommunityProductRepository struct {
	db *gorm.DB
}

// NewGormCommunityProductRepository creates a new GormCommunityProductRepository
func NewGormCommunityProductRepository(db *gorm.DB) *GormCommunityProductRepository {
	return &GormCommunityProductRepository{db: db}
}

// FindByID finds a projection row by its own ID
func (r *GormCommunityProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*showcase.CommunityProduct, error) {
	var projection showcase.CommunityProduct
	if err := r.db.WithContext(ctx).First(&projection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &projection, nil
}

// FindByProductID finds the projection row for a product
func (r *GormCommunityProductRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*showcase.CommunityProduct, error) {
	var projection showcase.CommunityProduct
	if err := r.db.WithContext(ctx).First(&projection, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &projection, nil
}

// Upsert inserts the projection or overwrites the row already holding the
// same product_id. The conflict update leaves the id column alone, so a
// re-synced product keeps its original projection identity.
func (r *GormCommunityProductRepository) Upsert(ctx context.Context, projection *showcase.CommunityProduct) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"store_id",
			"title",
			"description",
			"long_description",
			"price",
			"images",
			"category",
			"active",
			"store_slug",
			"store_name",
			"store_logo",
			"store_phone",
			"store_email",
			"store_website",
			"store_facebook",
			"store_instagram",
			"created_at",
			"updated_at",
		}),
	}).Create(projection).Error
}

// FindByStores finds active projections of the given stores, newest first
func (r *GormCommunityProductRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID, filter showcase.ListingFilter) ([]showcase.CommunityProduct, error) {
	if len(storeIDs) == 0 {
		return []showcase.CommunityProduct{}, nil
	}

	var projections []showcase.CommunityProduct
	query := r.applyListingFilter(r.db.WithContext(ctx).Model(&showcase.CommunityProduct{}), storeIDs, filter).
		Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Find(&projections).Error; err != nil {
		return nil, err
	}
	return projections, nil
}

// CountByStores counts active projections of the given stores
func (r *GormCommunityProductRepository) CountByStores(ctx context.Context, storeIDs []uuid.UUID, filter showcase.ListingFilter) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	var count int64
	query := r.applyListingFilter(r.db.WithContext(ctx).Model(&showcase.CommunityProduct{}), storeIDs, filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByProductID removes the projection row of a product. Removing a
// missing row is not an error so cleanup stays idempotent.
func (r *GormCommunityProductRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&showcase.CommunityProduct{}, "product_id = ?", productID).Error
}

// Delete removes a projection row by its own ID
func (r *GormCommunityProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&showcase.CommunityProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyListingFilter builds the shared predicate for listing and counting,
// so page items and totals never disagree
func (r *GormCommunityProductRepository) applyListingFilter(query *gorm.DB, storeIDs []uuid.UUID, filter showcase.ListingFilter) *gorm.DB {
	query = query.Where("store_id IN ? AND active = ?", storeIDs, true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	return query
}

// Ensure interface compliance
var _ showcase.CommunityProductRepository = (*GormCommunityProductRepository)(nil)
