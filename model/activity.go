package model

import (
	"database/sql"
	"time"
)

// Activity is one audit trail entry.
type Activity struct {
	ID int64 `db:"id"`

	Action      string         `db:"action"`
	ActionType  ActivityType   `db:"action_type"`
	Description string         `db:"description"`
	CampaignID  sql.NullInt64  `db:"campaign_id"`
	UserID      sql.NullInt64  `db:"user_id"`
	Metadata    sql.NullString `db:"metadata"`

	CreatedAt time.Time `db:"created_at"`
}

// ActivityType ...
type ActivityType string

const (
	// ActivityTypeCampaign ...
	ActivityTypeCampaign ActivityType = "campaign"

	// ActivityTypeParticipant ...
	ActivityTypeParticipant ActivityType = "participant"

	// ActivityTypeResponse ...
	ActivityTypeResponse ActivityType = "response"

	// ActivityTypeSystem ...
	ActivityTypeSystem ActivityType = "system"
)
