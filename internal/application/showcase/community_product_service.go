package showcase

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/google/uuid"
)

// CommunityProductService serves community-scoped listings from the
// denormalized projection. Membership is evaluated per request, so
// suspending a store takes effect on the next read without touching
// projection rows.
type CommunityProductService struct {
	communityRepo  community.CommunityRepository
	membershipRepo community.MembershipRepository
	projectionRepo showcase.CommunityProductRepository
}

// NewCommunityProductService creates a new CommunityProductService
func NewCommunityProductService(
	communityRepo community.CommunityRepository,
	membershipRepo community.MembershipRepository,
	projectionRepo showcase.CommunityProductRepository,
) *CommunityProductService {
	return &CommunityProductService{
		communityRepo:  communityRepo,
		membershipRepo: membershipRepo,
		projectionRepo: projectionRepo,
	}
}

// ResolveActiveStoreIDs maps a community code to the store IDs whose
// membership is currently active. Unknown codes and inactive communities
// resolve to an empty set rather than an error, so listings fail closed.
func (s *CommunityProductService) ResolveActiveStoreIDs(ctx context.Context, communityCode string) ([]uuid.UUID, error) {
	c, err := s.communityRepo.FindByCode(ctx, communityCode)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return []uuid.UUID{}, nil
		}
		return nil, err
	}
	if !c.IsActive() {
		return []uuid.UUID{}, nil
	}

	storeIDs, err := s.membershipRepo.ListActiveStoreIDs(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return storeIDs, nil
}

// ListByCommunity returns a page of the community's active products,
// newest first, optionally narrowed to one category. Items and total are
// computed under the same predicate.
func (s *CommunityProductService) ListByCommunity(ctx context.Context, communityCode string, req ListingRequest) (*shared.Paginated[CommunityProductResponse], error) {
	filter := req.toListingFilter()

	storeIDs, err := s.ResolveActiveStoreIDs(ctx, communityCode)
	if err != nil {
		return nil, err
	}
	if len(storeIDs) == 0 {
		empty := shared.NewPaginated([]CommunityProductResponse{}, 0, filter.Page, filter.PageSize)
		return &empty, nil
	}

	items, err := s.projectionRepo.FindByStores(ctx, storeIDs, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.projectionRepo.CountByStores(ctx, storeIDs, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CommunityProductResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToCommunityProductResponse(&items[i]))
	}

	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// GetByID returns one projection row
func (s *CommunityProductService) GetByID(ctx context.Context, id uuid.UUID) (*CommunityProductResponse, error) {
	projection, err := s.projectionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCommunityProductResponse(projection)
	return &response, nil
}

// Delete removes a projection row. This is an operator escape hatch; the
// synchronizer will recreate the row on the product's next sync.
func (s *CommunityProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projectionRepo.Delete(ctx, id)
}
