package community

import (
	"context"
	"errors"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
)

// MembershipService handles community membership operations. Membership
// changes never touch projection rows; listings pick them up on the next
// read through the membership lookup.
type MembershipService struct {
	membershipRepo community.MembershipRepository
	communityRepo  community.CommunityRepository
	storeRepo      store.StoreRepository
}

// NewMembershipService creates a new MembershipService
func NewMembershipService(
	membershipRepo community.MembershipRepository,
	communityRepo community.CommunityRepository,
	storeRepo store.StoreRepository,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		communityRepo:  communityRepo,
		storeRepo:      storeRepo,
	}
}

// Enroll enrolls a store into a community. A store holds at most one
// membership per community; enrolling twice is rejected.
func (s *MembershipService) Enroll(ctx context.Context, communityID uuid.UUID, req EnrollStoreRequest) (*MembershipResponse, error) {
	if _, err := s.communityRepo.FindByID(ctx, communityID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_COMMUNITY", "Community not found")
		}
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_STORE", "Store not found")
		}
		return nil, err
	}

	_, err := s.membershipRepo.FindByCommunityAndStore(ctx, communityID, req.StoreID)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Store is already a member of this community")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	membership, err := community.NewMembership(communityID, req.StoreID)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Save(ctx, membership); err != nil {
		return nil, err
	}

	response := ToMembershipResponse(membership)
	return &response, nil
}

// GetByID retrieves a membership by ID
func (s *MembershipService) GetByID(ctx context.Context, membershipID uuid.UUID) (*MembershipResponse, error) {
	membership, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	response := ToMembershipResponse(membership)
	return &response, nil
}

// ListByCommunity retrieves a community's memberships
func (s *MembershipService) ListByCommunity(ctx context.Context, communityID uuid.UUID, filter MembershipListFilter) ([]MembershipResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	memberships, err := s.membershipRepo.FindByCommunity(ctx, communityID, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToMembershipResponses(memberships), nil
}

// ListByStore retrieves all memberships of a store
func (s *MembershipService) ListByStore(ctx context.Context, storeID uuid.UUID) ([]MembershipResponse, error) {
	memberships, err := s.membershipRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return ToMembershipResponses(memberships), nil
}

// Activate reinstates a suspended membership
func (s *MembershipService) Activate(ctx context.Context, membershipID uuid.UUID) (*MembershipResponse, error) {
	return s.changeStatus(ctx, membershipID, (*community.Membership).Activate)
}

// Suspend suspends a membership, dropping the store's products from the
// community's listings on the next read
func (s *MembershipService) Suspend(ctx context.Context, membershipID uuid.UUID) (*MembershipResponse, error) {
	return s.changeStatus(ctx, membershipID, (*community.Membership).Deactivate)
}

// Remove removes a membership entirely
func (s *MembershipService) Remove(ctx context.Context, membershipID uuid.UUID) error {
	if _, err := s.membershipRepo.FindByID(ctx, membershipID); err != nil {
		return err
	}
	return s.membershipRepo.Delete(ctx, membershipID)
}

func (s *MembershipService) changeStatus(ctx context.Context, membershipID uuid.UUID, change func(*community.Membership) error) (*MembershipResponse, error) {
	membership, err := s.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	if err := change(membership); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Save(ctx, membership); err != nil {
		return nil, err
	}

	response := ToMembershipResponse(membership)
	return &response, nil
}
