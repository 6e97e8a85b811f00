package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCommunityRepository implements community.CommunityRepository
// using GORM.
type GormCommunityRepository struct {
	db *gorm.DB
}

var _ community.CommunityRepository = (*GormCommunityRepository)(nil)

func NewGormCommunityRepository(db *gorm.DB) *GormCommunityRepository {
	return &GormCommunityRepository{db: db}
}

// FindByID finds a community by its ID.
func (r *GormCommunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Community, error) {
	return r.findOne(r.db.WithContext(ctx), "id = ?", id)
}

// FindByCode finds a community by its public code. Codes are stored
// lowercase, so the lookup normalizes first.
func (r *GormCommunityRepository) FindByCode(ctx context.Context, code string) (*community.Community, error) {
	return r.findOne(r.db.WithContext(ctx), "code = ?", normalizeCode(code))
}

// FindAll finds all communities matching the filter.
func (r *GormCommunityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]community.Community, error) {
	query := r.withFilter(r.db.WithContext(ctx).Model(&community.Community{}), filter)
	return findCommunities(query)
}

// FindVisible finds active, publicly visible communities matching the
// filter.
func (r *GormCommunityRepository) FindVisible(ctx context.Context, filter shared.Filter) ([]community.Community, error) {
	query := r.db.WithContext(ctx).Model(&community.Community{}).
		Where("visible = ? AND status = ?", true, community.CommunityStatusActive)
	return findCommunities(r.withFilter(query, filter))
}

// ExistsByCode reports whether any community already uses the code.
func (r *GormCommunityRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&community.Community{}).
		Where("code = ?", normalizeCode(code)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a community.
func (r *GormCommunityRepository) Save(ctx context.Context, c *community.Community) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes a community, reporting shared.ErrNotFound when no row
// matched.
func (r *GormCommunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&community.Community{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts communities matching the filter, ignoring pagination.
func (r *GormCommunityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.withConditions(r.db.WithContext(ctx).Model(&community.Community{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCommunityRepository) findOne(query *gorm.DB, cond string, arg interface{}) (*community.Community, error) {
	var c community.Community
	err := query.First(&c, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func findCommunities(query *gorm.DB) ([]community.Community, error) {
	var communities []community.Community
	if err := query.Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (r *GormCommunityRepository) withFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.withConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if filter.OrderBy == "" {
		return query.Order("name ASC")
	}
	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, CommunitySortFields, "name"))
}

func (r *GormCommunityRepository) withConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR code LIKE ?", pattern, pattern)
	}

	if visible, ok := filter.Filters["visible"]; ok {
		query = query.Where("visible = ?", visible)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	return query
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
