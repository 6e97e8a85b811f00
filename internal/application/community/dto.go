package community

import (
	"time"

	"github.com/comunidad/backend/internal/domain/community"
	"github.com/google/uuid"
)

// CreateCommunityRequest represents a request to create a community
type CreateCommunityRequest struct {
	Code        string `json:"code" binding:"required,slugcode,max=100"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	Logo        string `json:"logo" binding:"omitempty,url,max=500"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Phone       string `json:"phone" binding:"max=50"`
	Open        bool   `json:"open"`
	Visible     *bool  `json:"visible"`
}

// UpdateCommunityRequest represents a request to update a community's
// display fields. Nil fields are left unchanged.
type UpdateCommunityRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Logo        *string `json:"logo" binding:"omitempty,url,max=500"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Open        *bool   `json:"open"`
	Visible     *bool   `json:"visible"`
}

// CommunityListFilter represents filtering options for community lists
type CommunityListFilter struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search"`
	OnlyPublic bool   `form:"only_public"`
}

// CommunityResponse represents a community in API responses
type CommunityResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Open        bool      `json:"open"`
	Visible     bool      `json:"visible"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCommunityResponse converts a community to a response
func ToCommunityResponse(c *community.Community) CommunityResponse {
	return CommunityResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Title:       c.Title,
		Description: c.Description,
		Logo:        c.Logo,
		Email:       c.Email,
		Phone:       c.Phone,
		Open:        c.Open,
		Visible:     c.Visible,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCommunityResponses converts a slice of communities to responses
func ToCommunityResponses(communities []community.Community) []CommunityResponse {
	responses := make([]CommunityResponse, 0, len(communities))
	for i := range communities {
		responses = append(responses, ToCommunityResponse(&communities[i]))
	}
	return responses
}

// EnrollStoreRequest represents a request to enroll a store in a community
type EnrollStoreRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
}

// MembershipListFilter represents filtering options for membership lists
type MembershipListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// MembershipResponse represents a membership in API responses
type MembershipResponse struct {
	ID          uuid.UUID `json:"id"`
	CommunityID uuid.UUID `json:"community_id"`
	StoreID     uuid.UUID `json:"store_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToMembershipResponse converts a membership to a response
func ToMembershipResponse(m *community.Membership) MembershipResponse {
	return MembershipResponse{
		ID:          m.ID,
		CommunityID: m.CommunityID,
		StoreID:     m.StoreID,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToMembershipResponses converts a slice of memberships to responses
func ToMembershipResponses(memberships []community.Membership) []MembershipResponse {
	responses := make([]MembershipResponse, 0, len(memberships))
	for i := range memberships {
		responses = append(responses, ToMembershipResponse(&memberships[i]))
	}
	return responses
}
