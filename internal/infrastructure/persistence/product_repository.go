package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/comunidad/backend/internal/domain/catalog"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID.
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll finds all products matching the filter.
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	query := r.withFilter(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
	return findProducts(query)
}

// FindByStore finds all products of a store matching the filter.
func (r *GormProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("store_id = ?", storeID)
	return findProducts(r.withFilter(query, filter))
}

// FindActiveByStore returns every active product of a store, oldest
// first, without pagination.
func (r *GormProductRepository) FindActiveByStore(ctx context.Context, storeID uuid.UUID) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ?", storeID, catalog.ProductStatusActive).
		Order("created_at ASC")
	return findProducts(query)
}

// FindActivePendingSync returns active products whose community
// projection is stale, oldest first.
func (r *GormProductRepository) FindActivePendingSync(ctx context.Context) ([]catalog.Product, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND sync_status = ?", catalog.ProductStatusActive, catalog.SyncStatusPending).
		Order("created_at ASC")
	return findProducts(query)
}

// Save creates or updates a product.
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product, reporting shared.ErrNotFound when no row
// matched.
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts products matching the filter, ignoring pagination.
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.withConditions(r.db.WithContext(ctx).Model(&catalog.Product{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStore counts all products of a store.
func (r *GormProductRepository) CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("store_id = ?", storeID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func findProducts(query *gorm.DB) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// withFilter applies conditions, sorting and pagination.
func (r *GormProductRepository) withFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.withConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, ProductSortFields, "created_at"))
}

// withConditions applies search and field filters only, so Count sees
// the same row set as Find.
func (r *GormProductRepository) withConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "sync_status":
			query = query.Where("sync_status = ?", value)
		case "category":
			query = query.Where("category = ?", value)
		case "store_id":
			query = query.Where("store_id = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "max_price":
			query = query.Where("price <= ?", value)
		}
	}

	return query
}
