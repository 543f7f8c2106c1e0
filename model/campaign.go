package model

import (
	"database/sql"
	"strings"
	"time"
)

// Campaign ...
type Campaign struct {
	ID       int64          `db:"id"`
	Name     string         `db:"name"`
	Slug     string         `db:"slug"`
	SlugHash uint32         `db:"slug_hash"`
	Type     CampaignType   `db:"type"`
	Status   CampaignStatus `db:"status"`

	CreatorID  int64          `db:"creator_id"`
	Department sql.NullString `db:"department"`

	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`

	Notes       sql.NullString `db:"notes"`
	Description sql.NullString `db:"description"`

	SelectionLimit int        `db:"selection_limit"`
	SelectionMin   int        `db:"selection_min"`
	EditPolicy     EditPolicy `db:"edit_policy"`

	AskColor      bool           `db:"ask_color"`
	ColorConfig   ColorConfig    `db:"color_config"`
	AllowedColors sql.NullString `db:"allowed_colors"`
	AskSize       bool           `db:"ask_size"`
	AskQuantity   bool           `db:"ask_quantity"`
	MinQuantity   int            `db:"min_quantity"`
	MaxQuantity   int            `db:"max_quantity"`

	SendInvitation   bool         `db:"send_invitation"`
	SendConfirmation bool         `db:"send_confirmation"`
	SendReminder     bool         `db:"send_reminder"`
	ReminderHours    int          `db:"reminder_hours"`
	ReminderSentAt   sql.NullTime `db:"reminder_sent_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignStatus ...
type CampaignStatus string

const (
	// CampaignStatusDraft ...
	CampaignStatusDraft CampaignStatus = "draft"

	// CampaignStatusScheduled ...
	CampaignStatusScheduled CampaignStatus = "scheduled"

	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = "active"

	// CampaignStatusEnded ...
	CampaignStatusEnded CampaignStatus = "ended"

	// CampaignStatusArchived ...
	CampaignStatusArchived CampaignStatus = "archived"
)

// IsValid ...
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusActive,
		CampaignStatusEnded, CampaignStatusArchived:
		return true
	default:
		return false
	}
}

// CampaignType ...
type CampaignType string

const (
	// CampaignTypeTeam ...
	CampaignTypeTeam CampaignType = "team"

	// CampaignTypeSales ...
	CampaignTypeSales CampaignType = "sales"
)

// EditPolicy governs whether a participant may resubmit after the first
// successful submission.
type EditPolicy string

const (
	// EditPolicyOnce allows exactly one submission.
	EditPolicyOnce EditPolicy = "once"

	// EditPolicyMultiple allows resubmitting while the campaign is open.
	EditPolicyMultiple EditPolicy = "multiple"

	// EditPolicyUntilEnd allows resubmitting until the end date. Behaves the
	// same as EditPolicyMultiple since the open check already enforces the
	// end date.
	EditPolicyUntilEnd EditPolicy = "until_end"
)

// ColorConfig ...
type ColorConfig string

const (
	// ColorConfigAll ...
	ColorConfigAll ColorConfig = "all"

	// ColorConfigSpecific ...
	ColorConfigSpecific ColorConfig = "specific"
)

// AllowedColorList parses the comma separated allow-list. Empty when the
// campaign accepts all colors.
func (c *Campaign) AllowedColorList() []string {
	if c.ColorConfig != ColorConfigSpecific || !c.AllowedColors.Valid {
		return nil
	}
	var result []string
	for _, part := range strings.Split(c.AllowedColors.String, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// ColorAllowed ...
func (c *Campaign) ColorAllowed(color string) bool {
	if c.ColorConfig != ColorConfigSpecific {
		return true
	}
	for _, allowed := range c.AllowedColorList() {
		if strings.EqualFold(allowed, color) {
			return true
		}
	}
	return false
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignProduct associates a catalog item with a campaign.
type CampaignProduct struct {
	ID           int64     `db:"id"`
	CampaignID   int64     `db:"campaign_id"`
	ProductID    int64     `db:"product_id"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
}
