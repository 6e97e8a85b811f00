package community

import (
	"strings"
	"time"

	"github.com/comunidad/backend/internal/domain/shared"
)

// CommunityStatus represents the status of a community
type CommunityStatus string

const (
	CommunityStatusActive   CommunityStatus = "active"
	CommunityStatusInactive CommunityStatus = "inactive"
)

// Community represents a group of stores that share a public marketplace.
// The Code is the logical identifier clients use in listing URLs; it is
// stable across environments while the row ID is not.
type Community struct {
	shared.BaseAggregateRoot
	Code        string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Title       string          `gorm:"type:varchar(200)"`
	Description string          `gorm:"type:text"`
	Logo        string          `gorm:"type:varchar(500)"`
	Email       string          `gorm:"type:varchar(200)"`
	Phone       string          `gorm:"type:varchar(50)"`
	Open        bool            `gorm:"not null;default:false"`
	Visible     bool            `gorm:"not null;default:true"`
	Status      CommunityStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Community) TableName() string {
	return "communities"
}

// NewCommunity creates a new community
func NewCommunity(code, name string) (*Community, error) {
	normalized, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}
	if err := validateCommunityName(name); err != nil {
		return nil, err
	}

	community := &Community{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              normalized,
		Name:              strings.TrimSpace(name),
		Visible:           true,
		Status:            CommunityStatusActive,
	}

	community.AddDomainEvent(NewCommunityCreatedEvent(community))

	return community, nil
}

// CommunityProfile carries the editable display fields of a community
type CommunityProfile struct {
	Name        string
	Title       string
	Description string
	Logo        string
	Email       string
	Phone       string
	Open        bool
	Visible     bool
}

// UpdateProfile updates the community's display fields
func (c *Community) UpdateProfile(profile CommunityProfile) error {
	if err := validateCommunityName(profile.Name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(profile.Name)
	c.Title = profile.Title
	c.Description = profile.Description
	c.Logo = profile.Logo
	c.Email = profile.Email
	c.Phone = profile.Phone
	c.Open = profile.Open
	c.Visible = profile.Visible
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCommunityUpdatedEvent(c))

	return nil
}

// Activate reactivates the community
func (c *Community) Activate() error {
	if c.Status == CommunityStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Community is already active")
	}

	c.Status = CommunityStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the community; its listings resolve to empty
func (c *Community) Deactivate() error {
	if c.Status == CommunityStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Community is already inactive")
	}

	c.Status = CommunityStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive reports whether the community is active
func (c *Community) IsActive() bool {
	return c.Status == CommunityStatusActive
}

func normalizeCode(code string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return "", shared.NewDomainError("INVALID_CODE", "Community code cannot be empty")
	}
	if len(normalized) > 100 {
		return "", shared.NewDomainError("INVALID_CODE", "Community code cannot exceed 100 characters")
	}
	if strings.ContainsAny(normalized, " \t\n") {
		return "", shared.NewDomainError("INVALID_CODE", "Community code cannot contain whitespace")
	}
	return normalized, nil
}

func validateCommunityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_COMMUNITY_NAME", "Community name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_COMMUNITY_NAME", "Community name cannot exceed 200 characters")
	}
	return nil
}
