package store

import (
	"time"

	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
)

// CreateStoreRequest represents a request to create a store
type CreateStoreRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Slug      string `json:"slug" binding:"required,slugcode,max=100"`
	Logo      string `json:"logo" binding:"omitempty,url,max=500"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Website   string `json:"website" binding:"omitempty,url,max=500"`
	Facebook  string `json:"facebook" binding:"omitempty,url,max=500"`
	Instagram string `json:"instagram" binding:"omitempty,url,max=500"`
}

// UpdateStoreProfileRequest represents a request to update a store's
// display fields. Nil fields are left unchanged.
type UpdateStoreProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Logo      *string `json:"logo" binding:"omitempty,url,max=500"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Website   *string `json:"website" binding:"omitempty,url,max=500"`
	Facebook  *string `json:"facebook" binding:"omitempty,url,max=500"`
	Instagram *string `json:"instagram" binding:"omitempty,url,max=500"`
}

// StoreListFilter represents filtering options for store lists
type StoreListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Logo      string    `json:"logo"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
	Facebook  string    `json:"facebook"`
	Instagram string    `json:"instagram"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToStoreResponse converts a store to a response
func ToStoreResponse(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		Logo:      s.Logo,
		Phone:     s.Phone,
		Email:     s.Email,
		Website:   s.Website,
		Facebook:  s.Facebook,
		Instagram: s.Instagram,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStoreResponses converts a slice of stores to responses
func ToStoreResponses(stores []store.Store) []StoreResponse {
	responses := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		responses = append(responses, ToStoreResponse(&stores[i]))
	}
	return responses
}
