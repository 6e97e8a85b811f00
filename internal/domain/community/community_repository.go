package community

import (
	"context"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CommunityRepository defines the interface for community persistence
type CommunityRepository interface {
	// FindByID finds a community by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Community, error)

	// FindByCode finds a community by its public code
	FindByCode(ctx context.Context, code string) (*Community, error)

	// FindAll finds all communities matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Community, error)

	// FindVisible finds all active, publicly visible communities
	FindVisible(ctx context.Context, filter shared.Filter) ([]Community, error)

	// ExistsByCode checks whether a community with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Save creates or updates a community
	Save(ctx context.Context, community *Community) error

	// Delete deletes a community
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts communities matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// MembershipRepository defines the interface for membership persistence
type MembershipRepository interface {
	// FindByID finds a membership by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Membership, error)

	// FindByCommunityAndStore finds the membership pairing a community and a store
	FindByCommunityAndStore(ctx context.Context, communityID, storeID uuid.UUID) (*Membership, error)

	// FindByCommunity finds all memberships of a community
	FindByCommunity(ctx context.Context, communityID uuid.UUID, filter shared.Filter) ([]Membership, error)

	// FindByStore finds all memberships of a store
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]Membership, error)

	// ListActiveStoreIDs returns the store IDs with an active membership
	// in the community
	ListActiveStoreIDs(ctx context.Context, communityID uuid.UUID) ([]uuid.UUID, error)

	// Save creates or updates a membership
	Save(ctx context.Context, membership *Membership) error

	// Delete deletes a membership
	Delete(ctx context.Context, id uuid.UUID) error
}
