package showcase

import (
	"time"

	"github.com/comunidad/backend/internal/domain/showcase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingRequest represents the query parameters of a community listing
type ListingRequest struct {
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

func (r ListingRequest) toListingFilter() showcase.ListingFilter {
	filter := showcase.DefaultListingFilter()
	filter.Category = r.Category
	if r.Page > 0 {
		filter.Page = r.Page
	}
	if r.PageSize > 0 {
		filter.PageSize = r.PageSize
	}
	return filter
}

// CommunityProductResponse represents a community product in API responses
type CommunityProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	StoreID         uuid.UUID       `json:"store_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description"`
	Price           decimal.Decimal `json:"price"`
	Images          []string        `json:"images"`
	Category        string          `json:"category"`
	StoreSlug       string          `json:"store_slug"`
	StoreName       string          `json:"store_name"`
	StoreLogo       string          `json:"store_logo"`
	StorePhone      string          `json:"store_phone"`
	StoreEmail      string          `json:"store_email"`
	StoreWebsite    string          `json:"store_website"`
	StoreFacebook   string          `json:"store_facebook"`
	StoreInstagram  string          `json:"store_instagram"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToCommunityProductResponse converts a projection row to a response
func ToCommunityProductResponse(p *showcase.CommunityProduct) CommunityProductResponse {
	return CommunityProductResponse{
		ID:              p.ID,
		ProductID:       p.ProductID,
		StoreID:         p.StoreID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Price:           p.Price,
		Images:          p.Images,
		Category:        p.Category,
		StoreSlug:       p.StoreSlug,
		StoreName:       p.StoreName,
		StoreLogo:       p.StoreLogo,
		StorePhone:      p.StorePhone,
		StoreEmail:      p.StoreEmail,
		StoreWebsite:    p.StoreWebsite,
		StoreFacebook:   p.StoreFacebook,
		StoreInstagram:  p.StoreInstagram,
		CreatedAt:       p.CreatedAt,
	}
}
