package community

import (
	"context"
	"testing"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCommunity(t *testing.T) *community.Community {
	c, err := community.NewCommunity("barrio-norte", "Barrio Norte")
	require.NoError(t, err)
	return c
}

func TestCommunityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a community with a normalized code", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		communityRepo.On("ExistsByCode", ctx, "barrio-norte").Return(false, nil)
		communityRepo.On("Save", ctx, mock.AnythingOfType("*community.Community")).Return(nil)

		service := NewCommunityService(communityRepo)

		response, err := service.Create(ctx, CreateCommunityRequest{Code: "Barrio-Norte", Name: "Barrio Norte"})
		require.NoError(t, err)
		assert.Equal(t, "barrio-norte", response.Code)
		assert.True(t, response.Visible)
		assert.Equal(t, string(community.CommunityStatusActive), response.Status)
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		communityRepo.On("ExistsByCode", ctx, "barrio-norte").Return(true, nil)

		service := NewCommunityService(communityRepo)

		_, err := service.Create(ctx, CreateCommunityRequest{Code: "barrio-norte", Name: "Barrio Norte"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		communityRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("profile fields are applied on create", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		communityRepo.On("ExistsByCode", ctx, "barrio-norte").Return(false, nil)
		communityRepo.On("Save", ctx, mock.AnythingOfType("*community.Community")).Return(nil)

		service := NewCommunityService(communityRepo)

		hidden := false
		response, err := service.Create(ctx, CreateCommunityRequest{
			Code:    "barrio-norte",
			Name:    "Barrio Norte",
			Title:   "Mercado de Barrio Norte",
			Open:    true,
			Visible: &hidden,
		})
		require.NoError(t, err)
		assert.Equal(t, "Mercado de Barrio Norte", response.Title)
		assert.True(t, response.Open)
		assert.False(t, response.Visible)
	})
}

func TestCommunityService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges partial updates", func(t *testing.T) {
		existing := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		communityRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		communityRepo.On("Save", ctx, existing).Return(nil)

		service := NewCommunityService(communityRepo)

		newTitle := "Mercado de Barrio Norte"
		response, err := service.Update(ctx, existing.ID, UpdateCommunityRequest{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, "Mercado de Barrio Norte", response.Title)
		assert.Equal(t, "Barrio Norte", response.Name)
	})

	t.Run("missing community returns ErrNotFound", func(t *testing.T) {
		communityRepo := new(MockCommunityRepository)
		id := uuid.New()
		communityRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		service := NewCommunityService(communityRepo)

		_, err := service.Update(ctx, id, UpdateCommunityRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCommunityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("public listing uses the visibility query", func(t *testing.T) {
		existing := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		communityRepo.On("FindVisible", ctx, mock.Anything).Return([]community.Community{*existing}, nil)
		communityRepo.On("Count", ctx, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["visible"] == true
		})).Return(int64(1), nil)

		service := NewCommunityService(communityRepo)

		responses, total, err := service.List(ctx, CommunityListFilter{OnlyPublic: true})
		require.NoError(t, err)
		assert.Len(t, responses, 1)
		assert.Equal(t, int64(1), total)
		communityRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("admin listing sees everything", func(t *testing.T) {
		existing := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		communityRepo.On("FindAll", ctx, mock.Anything).Return([]community.Community{*existing}, nil)
		communityRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

		service := NewCommunityService(communityRepo)

		responses, _, err := service.List(ctx, CommunityListFilter{})
		require.NoError(t, err)
		assert.Len(t, responses, 1)
	})
}

func TestCommunityService_StatusChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivate persists the new status", func(t *testing.T) {
		existing := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		communityRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		communityRepo.On("Save", ctx, existing).Return(nil)

		service := NewCommunityService(communityRepo)

		response, err := service.Deactivate(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, string(community.CommunityStatusInactive), response.Status)
	})

	t.Run("activating an active community fails", func(t *testing.T) {
		existing := newTestCommunity(t)

		communityRepo := new(MockCommunityRepository)
		communityRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

		service := NewCommunityService(communityRepo)

		_, err := service.Activate(ctx, existing.ID)
		require.Error(t, err)
		communityRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
