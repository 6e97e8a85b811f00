package community

import (
	"context"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CommunityService handles community-related business operations
type CommunityService struct {
	communityRepo community.CommunityRepository
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityRepo community.CommunityRepository) *CommunityService {
	return &CommunityService{communityRepo: communityRepo}
}

// Create creates a new community
func (s *CommunityService) Create(ctx context.Context, req CreateCommunityRequest) (*CommunityResponse, error) {
	newCommunity, err := community.NewCommunity(req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	exists, err := s.communityRepo.ExistsByCode(ctx, newCommunity.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Community with this code already exists")
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}
	if req.Title != "" || req.Description != "" || req.Logo != "" || req.Email != "" || req.Phone != "" || req.Open || !visible {
		profile := community.CommunityProfile{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
			Logo:        req.Logo,
			Email:       req.Email,
			Phone:       req.Phone,
			Open:        req.Open,
			Visible:     visible,
		}
		if err := newCommunity.UpdateProfile(profile); err != nil {
			return nil, err
		}
	}

	if err := s.communityRepo.Save(ctx, newCommunity); err != nil {
		return nil, err
	}

	response := ToCommunityResponse(newCommunity)
	return &response, nil
}

// GetByID retrieves a community by ID
func (s *CommunityService) GetByID(ctx context.Context, communityID uuid.UUID) (*CommunityResponse, error) {
	found, err := s.communityRepo.FindByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	response := ToCommunityResponse(found)
	return &response, nil
}

// GetByCode retrieves a community by its public code
func (s *CommunityService) GetByCode(ctx context.Context, code string) (*CommunityResponse, error) {
	found, err := s.communityRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToCommunityResponse(found)
	return &response, nil
}

// List retrieves a list of communities with filtering and pagination
func (s *CommunityService) List(ctx context.Context, filter CommunityListFilter) ([]CommunityResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	var (
		communities []community.Community
		err         error
	)
	if filter.OnlyPublic {
		domainFilter.Filters["visible"] = true
		domainFilter.Filters["status"] = string(community.CommunityStatusActive)
		communities, err = s.communityRepo.FindVisible(ctx, domainFilter)
	} else {
		communities, err = s.communityRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.communityRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCommunityResponses(communities), total, nil
}

// Update updates a community's display fields
func (s *CommunityService) Update(ctx context.Context, communityID uuid.UUID, req UpdateCommunityRequest) (*CommunityResponse, error) {
	found, err := s.communityRepo.FindByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	profile := community.CommunityProfile{
		Name:        found.Name,
		Title:       found.Title,
		Description: found.Description,
		Logo:        found.Logo,
		Email:       found.Email,
		Phone:       found.Phone,
		Open:        found.Open,
		Visible:     found.Visible,
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Logo != nil {
		profile.Logo = *req.Logo
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Open != nil {
		profile.Open = *req.Open
	}
	if req.Visible != nil {
		profile.Visible = *req.Visible
	}

	if err := found.UpdateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.communityRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	response := ToCommunityResponse(found)
	return &response, nil
}

// Activate reactivates a community, making its listings resolvable again
func (s *CommunityService) Activate(ctx context.Context, communityID uuid.UUID) (*CommunityResponse, error) {
	return s.changeStatus(ctx, communityID, (*community.Community).Activate)
}

// Deactivate deactivates a community. Its listings resolve to empty pages
// from the next read on.
func (s *CommunityService) Deactivate(ctx context.Context, communityID uuid.UUID) (*CommunityResponse, error) {
	return s.changeStatus(ctx, communityID, (*community.Community).Deactivate)
}

func (s *CommunityService) changeStatus(ctx context.Context, communityID uuid.UUID, change func(*community.Community) error) (*CommunityResponse, error) {
	found, err := s.communityRepo.FindByID(ctx, communityID)
	if err != nil {
		return nil, err
	}

	if err := change(found); err != nil {
		return nil, err
	}

	if err := s.communityRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	response := ToCommunityResponse(found)
	return &response, nil
}
