package showcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// MockProjectionRepository is a mock implementation of showcase.CommunityProductRepository
type MockProjectionRepository struct {
	mock.Mock
}

func (m *MockProjectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*showcase.CommunityProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*showcase.CommunityProduct), args.Error(1)
}

func (m *MockProjectionRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*showcase.CommunityProduct, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*showcase.CommunityProduct), args.Error(1)
}

func (m *MockProjectionRepository) Upsert(ctx context.Context, projection *showcase.CommunityProduct) error {
	args := m.Called(ctx, projection)
	return args.Error(0)
}

func (m *MockProjectionRepository) FindByStores(ctx context.Context, storeIDs []uuid.UUID, filter showcase.ListingFilter) ([]showcase.CommunityProduct, error) {
	args := m.Called(ctx, storeIDs, filter)
	return args.Get(0).([]showcase.CommunityProduct), args.Error(1)
}

func (m *MockProjectionRepository) CountByStores(ctx context.Context, storeIDs []uuid.UUID, filter showcase.ListingFilter) (int64, error) {
	args := m.Called(ctx, storeIDs, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectionRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProjectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestCommunity(t *testing.T) *community.Community {
	c, err := community.NewCommunity("barrio-norte", "Barrio Norte")
	require.NoError(t, err)
	return c
}

func newTestProjection(storeID uuid.UUID, title string) showcase.CommunityProduct {
	return showcase.CommunityProduct{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		StoreID:   storeID,
		Title:     title,
		Price:     decimal.NewFromInt(10),
		Active:    true,
		StoreSlug: "la-tiendita",
		StoreName: "La Tiendita",
		CreatedAt: time.Now(),
	}
}

func TestCommunityProductService_ResolveActiveStoreIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves active member store ids", func(t *testing.T) {
		c := newTestCommunity(t)
		storeIDs := []uuid.UUID{uuid.New(), uuid.New()}

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)

		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)
		membershipRepo.On("ListActiveStoreIDs", ctx, c.ID).Return(storeIDs, nil)

		service := NewCommunityProductService(communityRepo, membershipRepo, new(MockProjectionRepository))

		resolved, err := service.ResolveActiveStoreIDs(ctx, "barrio-norte")
		require.NoError(t, err)
		assert.Equal(t, storeIDs, resolved)
	})

	t.Run("unknown community resolves to empty set", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)

		communityRepo.On("FindByCode", ctx, "nowhere").Return(nil, shared.ErrNotFound)

		service := NewCommunityProductService(communityRepo, membershipRepo, new(MockProjectionRepository))

		resolved, err := service.ResolveActiveStoreIDs(ctx, "nowhere")
		require.NoError(t, err)
		assert.Empty(t, resolved)
		membershipRepo.AssertNotCalled(t, "ListActiveStoreIDs", mock.Anything, mock.Anything)
	})

	t.Run("inactive community resolves to empty set", func(t *testing.T) {
		c := newTestCommunity(t)
		require.NoError(t, c.Deactivate())

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)

		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)

		service := NewCommunityProductService(communityRepo, membershipRepo, new(MockProjectionRepository))

		resolved, err := service.ResolveActiveStoreIDs(ctx, "barrio-norte")
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)

		storageErr := errors.New("connection reset")
		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(nil, storageErr)

		service := NewCommunityProductService(communityRepo, new(MockMembershipRepository), new(MockProjectionRepository))

		_, err := service.ResolveActiveStoreIDs(ctx, "barrio-norte")
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestCommunityProductService_ListByCommunity(t *testing.T) {
	ctx := context.Background()

	t.Run("returns a page with matching total", func(t *testing.T) {
		c := newTestCommunity(t)
		storeID := uuid.New()
		items := []showcase.CommunityProduct{
			newTestProjection(storeID, "Newest"),
			newTestProjection(storeID, "Older"),
		}

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)
		membershipRepo.On("ListActiveStoreIDs", ctx, c.ID).Return([]uuid.UUID{storeID}, nil)
		projectionRepo.On("FindByStores", ctx, []uuid.UUID{storeID}, mock.Anything).Return(items, nil)
		projectionRepo.On("CountByStores", ctx, []uuid.UUID{storeID}, mock.Anything).Return(int64(12), nil)

		service := NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)

		page, err := service.ListByCommunity(ctx, "barrio-norte", ListingRequest{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 6, page.TotalPages)
		assert.Equal(t, "Newest", page.Items[0].Title)
	})

	t.Run("no member stores short-circuits to an empty page", func(t *testing.T) {
		c := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)
		membershipRepo.On("ListActiveStoreIDs", ctx, c.ID).Return([]uuid.UUID{}, nil)

		service := NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)

		page, err := service.ListByCommunity(ctx, "barrio-norte", ListingRequest{})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Zero(t, page.Total)
		projectionRepo.AssertNotCalled(t, "FindByStores", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("category filter reaches the repository", func(t *testing.T) {
		c := newTestCommunity(t)
		storeID := uuid.New()

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)
		membershipRepo.On("ListActiveStoreIDs", ctx, c.ID).Return([]uuid.UUID{storeID}, nil)

		categoryFilter := mock.MatchedBy(func(f showcase.ListingFilter) bool {
			return f.Category == "ceramics"
		})
		projectionRepo.On("FindByStores", ctx, []uuid.UUID{storeID}, categoryFilter).Return([]showcase.CommunityProduct{}, nil)
		projectionRepo.On("CountByStores", ctx, []uuid.UUID{storeID}, categoryFilter).Return(int64(0), nil)

		service := NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)

		_, err := service.ListByCommunity(ctx, "barrio-norte", ListingRequest{Category: "ceramics"})
		require.NoError(t, err)
		projectionRepo.AssertExpectations(t)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		c := newTestCommunity(t)
		storeID := uuid.New()

		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		storageErr := errors.New("connection reset")
		communityRepo.On("FindByCode", ctx, "barrio-norte").Return(c, nil)
		membershipRepo.On("ListActiveStoreIDs", ctx, c.ID).Return([]uuid.UUID{storeID}, nil)
		projectionRepo.On("FindByStores", ctx, mock.Anything, mock.Anything).Return([]showcase.CommunityProduct{}, storageErr)

		service := NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)

		_, err := service.ListByCommunity(ctx, "barrio-norte", ListingRequest{})
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestCommunityProductService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the projection", func(t *testing.T) {
		projection := newTestProjection(uuid.New(), "Handmade Mug")

		projectionRepo := new(MockProjectionRepository)
		projectionRepo.On("FindByID", ctx, projection.ID).Return(&projection, nil)

		service := NewCommunityProductService(new(MockCommunityRepository), new(MockMembershipRepository), projectionRepo)

		response, err := service.GetByID(ctx, projection.ID)
		require.NoError(t, err)
		assert.Equal(t, projection.ID, response.ID)
		assert.Equal(t, "Handmade Mug", response.Title)
	})

	t.Run("missing projection returns ErrNotFound", func(t *testing.T) {
		projectionRepo := new(MockProjectionRepository)
		id := uuid.New()
		projectionRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewCommunityProductService(new(MockCommunityRepository), new(MockMembershipRepository), projectionRepo)

		_, err := service.GetByID(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
