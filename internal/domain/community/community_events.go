package community

import (
	"github.com/comunidad/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeCommunity  = "Community"
	AggregateTypeMembership = "Membership"
)

// Event type constants
const (
	EventTypeCommunityCreated        = "CommunityCreated"
	EventTypeCommunityUpdated        = "CommunityUpdated"
	EventTypeMemberJoined            = "MemberJoined"
	EventTypeMembershipStatusChanged = "MembershipStatusChanged"
)

// CommunityCreatedEvent is published when a new community is created
type CommunityCreatedEvent struct {
	shared.BaseDomainEvent
	CommunityID uuid.UUID `json:"community_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewCommunityCreatedEvent creates a new CommunityCreatedEvent
func NewCommunityCreatedEvent(c *Community) *CommunityCreatedEvent {
	return &CommunityCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommunityCreated, AggregateTypeCommunity, c.ID),
		CommunityID:     c.ID,
		Code:            c.Code,
		Name:            c.Name,
	}
}

// CommunityUpdatedEvent is published when a community's profile changes
type CommunityUpdatedEvent struct {
	shared.BaseDomainEvent
	CommunityID uuid.UUID `json:"community_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
}

// NewCommunityUpdatedEvent creates a new CommunityUpdatedEvent
func NewCommunityUpdatedEvent(c *Community) *CommunityUpdatedEvent {
	return &CommunityUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommunityUpdated, AggregateTypeCommunity, c.ID),
		CommunityID:     c.ID,
		Code:            c.Code,
		Name:            c.Name,
	}
}

// MemberJoinedEvent is published when a store joins a community
type MemberJoinedEvent struct {
	shared.BaseDomainEvent
	MembershipID uuid.UUID `json:"membership_id"`
	CommunityID  uuid.UUID `json:"community_id"`
	StoreID      uuid.UUID `json:"store_id"`
}

// NewMemberJoinedEvent creates a new MemberJoinedEvent
func NewMemberJoinedEvent(m *Membership) *MemberJoinedEvent {
	return &MemberJoinedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberJoined, AggregateTypeMembership, m.ID),
		MembershipID:    m.ID,
		CommunityID:     m.CommunityID,
		StoreID:         m.StoreID,
	}
}

// MembershipStatusChangedEvent is published when a membership is
// activated or deactivated
type MembershipStatusChangedEvent struct {
	shared.BaseDomainEvent
	MembershipID uuid.UUID        `json:"membership_id"`
	CommunityID  uuid.UUID        `json:"community_id"`
	StoreID      uuid.UUID        `json:"store_id"`
	OldStatus    MembershipStatus `json:"old_status"`
	NewStatus    MembershipStatus `json:"new_status"`
}

// NewMembershipStatusChangedEvent creates a new MembershipStatusChangedEvent
func NewMembershipStatusChangedEvent(m *Membership, oldStatus, newStatus MembershipStatus) *MembershipStatusChangedEvent {
	return &MembershipStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMembershipStatusChanged, AggregateTypeMembership, m.ID),
		MembershipID:    m.ID,
		CommunityID:     m.CommunityID,
		StoreID:         m.StoreID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
