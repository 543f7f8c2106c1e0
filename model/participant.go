package model

import (
	"database/sql"
	"time"
)

// Participant is a user's membership in a campaign. Status is a denormalized
// projection of the response ledger and is write-owned by the submission
// service.
type Participant struct {
	ID         int64 `db:"id"`
	CampaignID int64 `db:"campaign_id"`
	UserID     int64 `db:"user_id"`

	Email  string            `db:"email"`
	Status ParticipantStatus `db:"status"`

	InvitedAt   time.Time    `db:"invited_at"`
	SubmittedAt sql.NullTime `db:"submitted_at"`

	ResponseCount   int  `db:"response_count"`
	DismissedBanner bool `db:"dismissed_banner"`
}

// ParticipantStatus ...
type ParticipantStatus string

const (
	// ParticipantStatusInvited ...
	ParticipantStatusInvited ParticipantStatus = "invited"

	// ParticipantStatusSubmitted ...
	ParticipantStatusSubmitted ParticipantStatus = "submitted"
)

// NullParticipant ...
type NullParticipant struct {
	Valid       bool
	Participant Participant
}
