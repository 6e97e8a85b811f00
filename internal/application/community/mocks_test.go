package community

import (
	"context"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommunityRepository is a mock implementation of community.CommunityRepository
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Community, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Community), args.Error(1)
}

func (m *MockCommunityRepository) FindByCode(ctx context.Context, code string) (*community.Community, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Community), args.Error(1)
}

func (m *MockCommunityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]community.Community, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]community.Community), args.Error(1)
}

func (m *MockCommunityRepository) FindVisible(ctx context.Context, filter shared.Filter) ([]community.Community, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]community.Community), args.Error(1)
}

func (m *MockCommunityRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) Save(ctx context.Context, c *community.Community) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommunityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockMembershipRepository is a mock implementation of community.MembershipRepository
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByCommunityAndStore(ctx context.Context, communityID, storeID uuid.UUID) (*community.Membership, error) {
	args := m.Called(ctx, communityID, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByCommunity(ctx context.Context, communityID uuid.UUID, filter shared.Filter) ([]community.Membership, error) {
	args := m.Called(ctx, communityID, filter)
	return args.Get(0).([]community.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]community.Membership, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]community.Membership), args.Error(1)
}

func (m *MockMembershipRepository) ListActiveStoreIDs(ctx context.Context, communityID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockMembershipRepository) Save(ctx context.Context, membership *community.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStoreRepository is a mock implementation of store.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindBySlug(ctx context.Context, slug string) (*store.Store, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Store, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *MockStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ community.CommunityRepository  = (*MockCommunityRepository)(nil)
	_ community.MembershipRepository = (*MockMembershipRepository)(nil)
	_ store.StoreRepository          = (*MockStoreRepository)(nil)
)
