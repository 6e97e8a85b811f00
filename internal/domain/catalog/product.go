package catalog

import (
	"strings"
	"time"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/comunidad/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the publication status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// SyncStatus tracks whether the community projection reflects the
// current state of the product
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSynced  SyncStatus = "synced"
)

// Product represents a store's product listing
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	StoreID         uuid.UUID              `gorm:"type:uuid;not null;index"`
	Title           string                 `gorm:"type:varchar(200);not null"`
	Description     string                 `gorm:"type:text"`
	LongDescription string                 `gorm:"type:text"`
	Price           decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0"`
	Images          valueobject.StringList `gorm:"type:jsonb"`
	Category        string                 `gorm:"type:varchar(100);index"`
	Status          ProductStatus          `gorm:"type:varchar(20);not null;default:'active'"`
	SyncStatus      SyncStatus             `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for a store
func NewProduct(storeID uuid.UUID, title, description string, price decimal.Decimal, category string) (*Product, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Product must belong to a store")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Title:             strings.TrimSpace(title),
		Description:       description,
		Price:             price,
		Images:            valueobject.StringList{},
		Category:          category,
		Status:            ProductStatusActive,
		SyncStatus:        SyncStatusPending,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's listing content. Any content change
// invalidates the community projection until the next sync.
func (p *Product) Update(title, description, longDescription string, price decimal.Decimal, category string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Description = description
	p.LongDescription = longDescription
	p.Price = price
	p.Category = category
	p.markDirty()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateImages replaces the ordered image URL list
func (p *Product) UpdateImages(images []string) {
	p.Images = valueobject.StringList(images).Copy()
	if p.Images == nil {
		p.Images = valueobject.StringList{}
	}
	p.markDirty()

	p.AddDomainEvent(NewProductUpdatedEvent(p))
}

// Activate makes the product visible in community listings after the next sync
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Product is already active")
	}

	p.Status = ProductStatusActive
	p.markDirty()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusInactive, ProductStatusActive))

	return nil
}

// Deactivate hides the product; the projection keeps the row but the
// copied active flag excludes it from listings after the next sync
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Product is already inactive")
	}

	p.Status = ProductStatusInactive
	p.markDirty()

	p.AddDomainEvent(NewProductStatusChangedEvent(p, ProductStatusActive, ProductStatusInactive))

	return nil
}

// MarkSynced records that the community projection now reflects this product
func (p *Product) MarkSynced() {
	p.SyncStatus = SyncStatusSynced
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductSyncedEvent(p))
}

// MarkPendingSync flags the product as needing re-synchronization
func (p *Product) MarkPendingSync() {
	p.SyncStatus = SyncStatusPending
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsActive reports whether the product is publicly visible
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// NeedsSync reports whether the projection is stale for this product
func (p *Product) NeedsSync() bool {
	return p.SyncStatus == SyncStatusPending
}

// markDirty bumps bookkeeping fields and flags the projection as stale
func (p *Product) markDirty() {
	p.SyncStatus = SyncStatusPending
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	return nil
}
