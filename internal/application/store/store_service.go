package store

import (
	"context"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreSyncer refreshes every projection that carries a store's display
// fields. This decouples StoreService from the sync package.
type StoreSyncer interface {
	SyncStoreProducts(ctx context.Context, storeID uuid.UUID) (int, error)
}

// StoreService handles store-related business operations. Profile edits
// save first and then refresh the store's projections; a failed refresh
// is logged and left for the next reconciliation run, since each edit
// also flags the store's products as pending.
type StoreService struct {
	storeRepo store.StoreRepository
	syncer    StoreSyncer
	logger    *zap.Logger
}

// NewStoreService creates a new StoreService. syncer may be nil, in which
// case projections are refreshed only by reconciliation runs.
func NewStoreService(storeRepo store.StoreRepository, syncer StoreSyncer, logger *zap.Logger) *StoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreService{
		storeRepo: storeRepo,
		syncer:    syncer,
		logger:    logger,
	}
}

// Create creates a new store
func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	slug, err := store.NormalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	exists, err := s.storeRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Store with this slug already exists")
	}

	newStore, err := store.NewStore(req.Name, slug)
	if err != nil {
		return nil, err
	}

	if req.Logo != "" || req.Phone != "" || req.Email != "" || req.Website != "" || req.Facebook != "" || req.Instagram != "" {
		profile := store.StoreProfile{
			Name:      req.Name,
			Logo:      req.Logo,
			Phone:     req.Phone,
			Email:     req.Email,
			Website:   req.Website,
			Facebook:  req.Facebook,
			Instagram: req.Instagram,
		}
		if err := newStore.UpdateProfile(profile); err != nil {
			return nil, err
		}
	}

	if err := s.storeRepo.Save(ctx, newStore); err != nil {
		return nil, err
	}

	response := ToStoreResponse(newStore)
	return &response, nil
}

// GetByID retrieves a store by ID
func (s *StoreService) GetByID(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	found, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	response := ToStoreResponse(found)
	return &response, nil
}

// GetBySlug retrieves a store by its public slug
func (s *StoreService) GetBySlug(ctx context.Context, slug string) (*StoreResponse, error) {
	normalized, err := store.NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	found, err := s.storeRepo.FindBySlug(ctx, normalized)
	if err != nil {
		return nil, err
	}

	response := ToStoreResponse(found)
	return &response, nil
}

// List retrieves a list of stores with filtering and pagination
func (s *StoreService) List(ctx context.Context, filter StoreListFilter) ([]StoreResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	stores, err := s.storeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.storeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStoreResponses(stores), total, nil
}

// UpdateProfile updates a store's display fields and refreshes the
// projections that carry copies of them
func (s *StoreService) UpdateProfile(ctx context.Context, storeID uuid.UUID, req UpdateStoreProfileRequest) (*StoreResponse, error) {
	found, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	profile := store.StoreProfile{
		Name:      found.Name,
		Logo:      found.Logo,
		Phone:     found.Phone,
		Email:     found.Email,
		Website:   found.Website,
		Facebook:  found.Facebook,
		Instagram: found.Instagram,
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Logo != nil {
		profile.Logo = *req.Logo
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Facebook != nil {
		profile.Facebook = *req.Facebook
	}
	if req.Instagram != nil {
		profile.Instagram = *req.Instagram
	}

	if err := found.UpdateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	if s.syncer != nil {
		if _, err := s.syncer.SyncStoreProducts(ctx, found.ID); err != nil {
			s.logger.Warn("store projection refresh failed, products left pending",
				zap.String("store_id", found.ID.String()),
				zap.Error(err))
		}
	}

	response := ToStoreResponse(found)
	return &response, nil
}

// Activate reactivates a store
func (s *StoreService) Activate(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	return s.changeStatus(ctx, storeID, (*store.Store).Activate)
}

// Deactivate deactivates a store. Its projections and memberships stay in
// place; removing the store from community listings means suspending its
// memberships, which takes effect on the next read.
func (s *StoreService) Deactivate(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	return s.changeStatus(ctx, storeID, (*store.Store).Deactivate)
}

func (s *StoreService) changeStatus(ctx context.Context, storeID uuid.UUID, change func(*store.Store) error) (*StoreResponse, error) {
	found, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := change(found); err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, found); err != nil {
		return nil, err
	}

	response := ToStoreResponse(found)
	return &response, nil
}
