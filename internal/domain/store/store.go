package store

import (
	"regexp"
	"strings"
	"time"

	"github.com/comunidad/backend/internal/domain/shared"
)

// StoreStatus represents the status of a store
type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "active"
	StoreStatusInactive StoreStatus = "inactive"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store represents a seller's storefront. Its display fields are
// denormalized into community product projections.
type Store struct {
	shared.BaseAggregateRoot
	Name      string      `gorm:"type:varchar(200);not null"`
	Slug      string      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Logo      string      `gorm:"type:varchar(500)"`
	Phone     string      `gorm:"type:varchar(50)"`
	Email     string      `gorm:"type:varchar(200)"`
	Website   string      `gorm:"type:varchar(500)"`
	Facebook  string      `gorm:"type:varchar(500)"`
	Instagram string      `gorm:"type:varchar(500)"`
	Status    StoreStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store with a normalized slug
func NewStore(name, slug string) (*Store, error) {
	if err := validateStoreName(name); err != nil {
		return nil, err
	}
	normalized, err := NormalizeSlug(slug)
	if err != nil {
		return nil, err
	}

	store := &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Slug:              normalized,
		Status:            StoreStatusActive,
	}

	store.AddDomainEvent(NewStoreCreatedEvent(store))

	return store, nil
}

// StoreProfile carries the editable display fields of a store
type StoreProfile struct {
	Name      string
	Logo      string
	Phone     string
	Email     string
	Website   string
	Facebook  string
	Instagram string
}

// UpdateProfile updates the store's display fields. Projections built from
// this store carry stale copies until the store's products are re-synced.
func (s *Store) UpdateProfile(profile StoreProfile) error {
	if err := validateStoreName(profile.Name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(profile.Name)
	s.Logo = profile.Logo
	s.Phone = profile.Phone
	s.Email = profile.Email
	s.Website = profile.Website
	s.Facebook = profile.Facebook
	s.Instagram = profile.Instagram
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStoreProfileUpdatedEvent(s))

	return nil
}

// Activate reactivates the store
func (s *Store) Activate() error {
	if s.Status == StoreStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Store is already active")
	}

	s.Status = StoreStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStoreStatusChangedEvent(s, StoreStatusInactive, StoreStatusActive))

	return nil
}

// Deactivate deactivates the store. Existing projections are untouched;
// refreshing them is an explicit reconciliation decision.
func (s *Store) Deactivate() error {
	if s.Status == StoreStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Store is already inactive")
	}

	s.Status = StoreStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStoreStatusChangedEvent(s, StoreStatusActive, StoreStatusInactive))

	return nil
}

// IsActive reports whether the store is active
func (s *Store) IsActive() bool {
	return s.Status == StoreStatusActive
}

// NormalizeSlug lowercases and validates a store slug
func NormalizeSlug(slug string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	if normalized == "" {
		return "", shared.NewDomainError("INVALID_SLUG", "Store slug cannot be empty")
	}
	if len(normalized) > 100 {
		return "", shared.NewDomainError("INVALID_SLUG", "Store slug cannot exceed 100 characters")
	}
	if !slugPattern.MatchString(normalized) {
		return "", shared.NewDomainError("INVALID_SLUG", "Store slug can only contain lowercase letters, digits and hyphens")
	}
	return normalized, nil
}

func validateStoreName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot exceed 200 characters")
	}
	return nil
}
