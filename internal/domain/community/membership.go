package community

import (
	"time"

	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MembershipStatus represents the status of a store's membership
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusInactive MembershipStatus = "inactive"
)

// Membership links a store to a community. Only active memberships
// contribute the store's products to the community's listings.
type Membership struct {
	shared.BaseAggregateRoot
	CommunityID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_community_store,priority:1"`
	StoreID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_membership_community_store,priority:2;index"`
	Status      MembershipStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Membership) TableName() string {
	return "community_memberships"
}

// NewMembership enrolls a store into a community
func NewMembership(communityID, storeID uuid.UUID) (*Membership, error) {
	if communityID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMMUNITY", "Membership requires a community")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Membership requires a store")
	}

	membership := &Membership{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CommunityID:       communityID,
		StoreID:           storeID,
		Status:            MembershipStatusActive,
	}

	membership.AddDomainEvent(NewMemberJoinedEvent(membership))

	return membership, nil
}

// Activate reinstates the membership
func (m *Membership) Activate() error {
	if m.Status == MembershipStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Membership is already active")
	}

	m.Status = MembershipStatusActive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMembershipStatusChangedEvent(m, MembershipStatusInactive, MembershipStatusActive))

	return nil
}

// Deactivate suspends the membership; the store's products drop out of the
// community's listings at read time, no projection rewrite needed
func (m *Membership) Deactivate() error {
	if m.Status == MembershipStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Membership is already inactive")
	}

	m.Status = MembershipStatusInactive
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	m.AddDomainEvent(NewMembershipStatusChangedEvent(m, MembershipStatusActive, MembershipStatusInactive))

	return nil
}

// IsActive reports whether the membership is active
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}
