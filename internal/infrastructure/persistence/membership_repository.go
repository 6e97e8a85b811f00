package persistence

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMembershipRepository implements MembershipRepository using GORM
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewGormMembershipRepository creates a new GormMembershipRepository
func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	return &GormMembershipRepository{db: db}
}

// FindByID finds a membership by its ID
func (r *GormMembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Membership, error) {
	var m community.Membership
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByCommunityAndStore finds the membership pairing a community and a store
func (r *GormMembershipRepository) FindByCommunityAndStore(ctx context.Context, communityID, storeID uuid.UUID) (*community.Membership, error) {
	var m community.Membership
	if err := r.db.WithContext(ctx).
		Where("community_id = ? AND store_id = ?", communityID, storeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByCommunity finds all memberships of a community
func (r *GormMembershipRepository) FindByCommunity(ctx context.Context, communityID uuid.UUID, filter shared.Filter) ([]community.Membership, error) {
	var memberships []community.Membership
	query := r.db.WithContext(ctx).Model(&community.Membership{}).
		Where("community_id = ?", communityID)

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	query = query.Order("created_at ASC")

	if err := query.Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// FindByStore finds all memberships of a store
func (r *GormMembershipRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]community.Membership, error) {
	var memberships []community.Membership
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// ListActiveStoreIDs returns the store IDs with an active membership in the community
func (r *GormMembershipRepository) ListActiveStoreIDs(ctx context.Context, communityID uuid.UUID) ([]uuid.UUID, error) {
	var storeIDs []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&community.Membership{}).
		Where("community_id = ? AND status = ?", communityID, community.MembershipStatusActive).
		Pluck("store_id", &storeIDs).Error; err != nil {
		return nil, err
	}
	return storeIDs, nil
}

// Save creates or updates a membership
func (r *GormMembershipRepository) Save(ctx context.Context, m *community.Membership) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete deletes a membership
func (r *GormMembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&community.Membership{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interface compliance
var _ community.MembershipRepository = (*GormMembershipRepository)(nil)
