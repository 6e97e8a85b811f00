package store

import (
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeStore = "Store"

// Event type constants
const (
	EventTypeStoreCreated        = "StoreCreated"
	EventTypeStoreProfileUpdated = "StoreProfileUpdated"
	EventTypeStoreStatusChanged  = "StoreStatusChanged"
	EventTypeStoreDeleted        = "StoreDeleted"
)

// StoreCreatedEvent is published when a new store is created
type StoreCreatedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
}

// NewStoreCreatedEvent creates a new StoreCreatedEvent
func NewStoreCreatedEvent(s *Store) *StoreCreatedEvent {
	return &StoreCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreCreated, AggregateTypeStore, s.ID),
		StoreID:         s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
	}
}

// StoreProfileUpdatedEvent is published when a store's display fields change.
// Consumers use it to schedule projection refreshes for the store's products.
type StoreProfileUpdatedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
}

// NewStoreProfileUpdatedEvent creates a new StoreProfileUpdatedEvent
func NewStoreProfileUpdatedEvent(s *Store) *StoreProfileUpdatedEvent {
	return &StoreProfileUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreProfileUpdated, AggregateTypeStore, s.ID),
		StoreID:         s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
	}
}

// StoreStatusChangedEvent is published when a store is activated or deactivated
type StoreStatusChangedEvent struct {
	shared.BaseDomainEvent
	StoreID   uuid.UUID   `json:"store_id"`
	OldStatus StoreStatus `json:"old_status"`
	NewStatus StoreStatus `json:"new_status"`
}

// NewStoreStatusChangedEvent creates a new StoreStatusChangedEvent
func NewStoreStatusChangedEvent(s *Store, oldStatus, newStatus StoreStatus) *StoreStatusChangedEvent {
	return &StoreStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreStatusChanged, AggregateTypeStore, s.ID),
		StoreID:         s.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// StoreDeletedEvent is published when a store is removed
type StoreDeletedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Slug    string    `json:"slug"`
}

// NewStoreDeletedEvent creates a new StoreDeletedEvent
func NewStoreDeletedEvent(s *Store) *StoreDeletedEvent {
	return &StoreDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreDeleted, AggregateTypeStore, s.ID),
		StoreID:         s.ID,
		Slug:            s.Slug,
	}
}
