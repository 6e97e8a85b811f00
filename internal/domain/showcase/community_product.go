package showcase

import (
	"time"

	"github.com/comunidad/backend/internal/domain/catalog"
	"github.com/comunidad/backend/internal/domain/shared/valueobject"
	"github.com/comunidad/backend/internal/domain/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommunityProduct is the denormalized read model served to community
// listings. One row exists per product; re-syncs overwrite the row in
// place so its ID stays stable for consumers that bookmarked it.
//
// It is a projection, not an aggregate: it carries no version or domain
// events and is only ever written by the synchronizer.
type CommunityProduct struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID       uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	StoreID         uuid.UUID              `gorm:"type:uuid;not null;index" json:"store_id"`
	Title           string                 `gorm:"type:varchar(200);not null" json:"title"`
	Description     string                 `gorm:"type:text" json:"description"`
	LongDescription string                 `gorm:"type:text" json:"long_description"`
	Price           decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0" json:"price"`
	Images          valueobject.StringList `gorm:"type:jsonb" json:"images"`
	Category        string                 `gorm:"type:varchar(100);index" json:"category"`
	Active          bool                   `gorm:"not null;default:true;index" json:"active"`
	StoreSlug       string                 `gorm:"type:varchar(100);not null" json:"store_slug"`
	StoreName       string                 `gorm:"type:varchar(200);not null" json:"store_name"`
	StoreLogo       string                 `gorm:"type:varchar(500)" json:"store_logo"`
	StorePhone      string                 `gorm:"type:varchar(50)" json:"store_phone"`
	StoreEmail      string                 `gorm:"type:varchar(200)" json:"store_email"`
	StoreWebsite    string                 `gorm:"type:varchar(500)" json:"store_website"`
	StoreFacebook   string                 `gorm:"type:varchar(500)" json:"store_facebook"`
	StoreInstagram  string                 `gorm:"type:varchar(500)" json:"store_instagram"`
	CreatedAt       time.Time              `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time              `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for GORM
func (CommunityProduct) TableName() string {
	return "community_products"
}

// Project builds a fresh projection row from a product and its store.
// CreatedAt is copied from the product so listing order reflects when
// the product was published, not when it was last synced.
func Project(product *catalog.Product, s *store.Store) *CommunityProduct {
	return &CommunityProduct{
		ID:              uuid.New(),
		ProductID:       product.ID,
		StoreID:         s.ID,
		Title:           product.Title,
		Description:     product.Description,
		LongDescription: product.LongDescription,
		Price:           product.Price,
		Images:          product.Images.Copy(),
		Category:        product.Category,
		Active:          product.IsActive(),
		StoreSlug:       s.Slug,
		StoreName:       s.Name,
		StoreLogo:       s.Logo,
		StorePhone:      s.Phone,
		StoreEmail:      s.Email,
		StoreWebsite:    s.Website,
		StoreFacebook:   s.Facebook,
		StoreInstagram:  s.Instagram,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       time.Now(),
	}
}
