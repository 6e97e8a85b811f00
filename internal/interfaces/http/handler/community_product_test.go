package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	showcaseapp "github.com/comunidad/backend/internal/application/showcase"
	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/comunidad/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommunityRepository implements community.CommunityRepository for testing
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

// MockMembershipRepository implements community.MembershipRepository for testing
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

// MockProjectionRepository implements showcase.CommunityProductRepository for testing
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

func setupCommunityProductRouter(
	communityRepo *MockCommunityRepository,
	membershipRepo *MockMembershipRepository,
	projectionRepo *MockProjectionRepository,
) *gin.Engine {
	service := showcaseapp.NewCommunityProductService(communityRepo, membershipRepo, projectionRepo)
	h := NewCommunityProductHandler(service)

	router := gin.New()
	router.GET("/communities/code/:code/products", h.ListByCommunity)
	router.GET("/community-products/:id", h.GetByID)
	return router
}

func newTestCommunity(t *testing.T) *community.Community {
	t.Helper()
	comm, err := community.NewCommunity("barrio-norte", "Barrio Norte")
	require.NoError(t, err)
	return comm
}

func newListedProjection(storeID uuid.UUID, title string) showcase.CommunityProduct {
	return showcase.CommunityProduct{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		StoreID:   storeID,
		Title:     title,
		Price:     decimal.NewFromFloat(25.50),
		Category:  "ceramics",
		Active:    true,
		StoreSlug: "la-tiendita",
		StoreName: "La Tiendita",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestCommunityProductHandlerListByCommunity(t *testing.T) {
	t.Run("returns page of member store products", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		comm := newTestCommunity(t)
		storeID := uuid.New()
		storeIDs := []uuid.UUID{storeID}

		communityRepo.On("FindByCode", mock.Anything, "barrio-norte").Return(comm, nil)
		membershipRepo.On("ListActiveStoreIDs", mock.Anything, comm.ID).Return(storeIDs, nil)
		projectionRepo.On("FindByStores", mock.Anything, storeIDs, mock.Anything).
			Return([]showcase.CommunityProduct{newListedProjection(storeID, "Vase")}, nil)
		projectionRepo.On("CountByStores", mock.Anything, storeIDs, mock.Anything).
			Return(int64(1), nil)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/communities/code/barrio-norte/products?page=1&page_size=20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(1), resp.Meta.Total)

		items, ok := resp.Data.([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("unknown community yields empty page, not an error", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		communityRepo.On("FindByCode", mock.Anything, "ghost-town").Return(nil, shared.ErrNotFound)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/communities/code/ghost-town/products", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(0), resp.Meta.Total)

		membershipRepo.AssertNotCalled(t, "ListActiveStoreIDs", mock.Anything, mock.Anything)
		projectionRepo.AssertNotCalled(t, "FindByStores", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("category filter is forwarded to the repository", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		comm := newTestCommunity(t)
		storeIDs := []uuid.UUID{uuid.New()}

		communityRepo.On("FindByCode", mock.Anything, "barrio-norte").Return(comm, nil)
		membershipRepo.On("ListActiveStoreIDs", mock.Anything, comm.ID).Return(storeIDs, nil)
		projectionRepo.On("FindByStores", mock.Anything, storeIDs, mock.MatchedBy(func(f showcase.ListingFilter) bool {
			return f.Category == "ceramics"
		})).Return([]showcase.CommunityProduct{}, nil)
		projectionRepo.On("CountByStores", mock.Anything, storeIDs, mock.Anything).Return(int64(0), nil)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/communities/code/barrio-norte/products?category=ceramics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		projectionRepo.AssertExpectations(t)
	})

	t.Run("rejects invalid pagination", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/communities/code/barrio-norte/products?page_size=500", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		communityRepo.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
	})
}

func TestCommunityProductHandlerGetByID(t *testing.T) {
	t.Run("returns projection entry", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		entry := newListedProjection(uuid.New(), "Vase")
		projectionRepo.On("FindByID", mock.Anything, entry.ID).Return(&entry, nil)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/community-products/"+entry.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("maps missing entry to 404", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		id := uuid.New()
		projectionRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/community-products/"+id.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		membershipRepo := new(MockMembershipRepository)
		projectionRepo := new(MockProjectionRepository)

		router := setupCommunityProductRouter(communityRepo, membershipRepo, projectionRepo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/community-products/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
