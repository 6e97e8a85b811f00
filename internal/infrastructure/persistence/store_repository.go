package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStoreRepository implements store.StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

var _ store.StoreRepository = (*GormStoreRepository)(nil)

func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID.
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	return r.findOne(r.db.WithContext(ctx), "id = ?", id)
}

// FindBySlug finds a store by its slug. Slugs are stored lowercase, so
// the lookup normalizes first.
func (r *GormStoreRepository) FindBySlug(ctx context.Context, slug string) (*store.Store, error) {
	return r.findOne(r.db.WithContext(ctx), "slug = ?", strings.ToLower(slug))
}

// FindAll finds all stores matching the filter.
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Store, error) {
	var stores []store.Store
	query := r.withFilter(r.db.WithContext(ctx).Model(&store.Store{}), filter)
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// ExistsBySlug reports whether any store already uses the slug.
func (r *GormStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&store.Store{}).
		Where("slug = ?", strings.ToLower(slug)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a store.
func (r *GormStoreRepository) Save(ctx context.Context, s *store.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes a store, reporting shared.ErrNotFound when no row
// matched.
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&store.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stores matching the filter, ignoring pagination.
func (r *GormStoreRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.withConditions(r.db.WithContext(ctx).Model(&store.Store{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStoreRepository) findOne(query *gorm.DB, cond string, arg interface{}) (*store.Store, error) {
	var s store.Store
	err := query.First(&s, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormStoreRepository) withFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.withConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	// Store listings read naturally name-first.
	if filter.OrderBy == "" {
		return query.Order("name ASC")
	}
	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, StoreSortFields, "name"))
}

func (r *GormStoreRepository) withConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR slug LIKE ?", pattern, pattern)
	}

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	return query
}
