// Package event is the typed event/observer seam of the core. Services emit
// event structs after their transactions commit; subscribers (audit log,
// notifier bridge) register against the dispatcher. Publishing is
// fire-and-forget: a failing subscriber never affects the emitting operation.
package event

import "time"

// Type ...
type Type string

const (
	// TypeCampaignCreated ...
	TypeCampaignCreated Type = "campaign_created"

	// TypeCampaignUpdated ...
	TypeCampaignUpdated Type = "campaign_updated"

	// TypeCampaignDeleted ...
	TypeCampaignDeleted Type = "campaign_deleted"

	// TypeCampaignStatusChanged ...
	TypeCampaignStatusChanged Type = "campaign_status_changed"

	// TypeParticipantInvited ...
	TypeParticipantInvited Type = "participant_invited"

	// TypeParticipantRemoved ...
	TypeParticipantRemoved Type = "participant_removed"

	// TypeSubmissionCompleted ...
	TypeSubmissionCompleted Type = "submission_completed"

	// TypeResponseDeleted ...
	TypeResponseDeleted Type = "response_deleted"

	// TypeReminderDue ...
	TypeReminderDue Type = "reminder_due"
)

// Event ...
type Event interface {
	EventType() Type
}

// CampaignCreated ...
type CampaignCreated struct {
	CampaignID int64
	CreatorID  int64
	Name       string
}

// EventType ...
func (CampaignCreated) EventType() Type { return TypeCampaignCreated }

// CampaignUpdated ...
type CampaignUpdated struct {
	CampaignID int64
	ActorID    int64
}

// EventType ...
func (CampaignUpdated) EventType() Type { return TypeCampaignUpdated }

// CampaignDeleted ...
type CampaignDeleted struct {
	CampaignID int64
	Name       string
	ActorID    int64
}

// EventType ...
func (CampaignDeleted) EventType() Type { return TypeCampaignDeleted }

// CampaignStatusChanged ...
type CampaignStatusChanged struct {
	CampaignID int64
	OldStatus  string
	NewStatus  string
}

// EventType ...
func (CampaignStatusChanged) EventType() Type { return TypeCampaignStatusChanged }

// ParticipantInvited ...
type ParticipantInvited struct {
	CampaignID int64
	UserID     int64
	Email      string
}

// EventType ...
func (ParticipantInvited) EventType() Type { return TypeParticipantInvited }

// ParticipantRemoved ...
type ParticipantRemoved struct {
	CampaignID int64
	UserID     int64
	ActorID    int64
}

// EventType ...
func (ParticipantRemoved) EventType() Type { return TypeParticipantRemoved }

// SubmissionCompleted carries what the notifier needs for a confirmation
// message.
type SubmissionCompleted struct {
	CampaignID int64
	UserID     int64
	Version    int
	ItemCount  int

	// EditedBy is non-zero when a manager submitted on behalf of the
	// participant.
	EditedBy int64

	SubmittedAt time.Time
}

// EventType ...
func (SubmissionCompleted) EventType() Type { return TypeSubmissionCompleted }

// ResponseDeleted ...
type ResponseDeleted struct {
	CampaignID   int64
	TargetUserID int64
	ActorID      int64
	RowsRemoved  int64
}

// EventType ...
func (ResponseDeleted) EventType() Type { return TypeResponseDeleted }

// ReminderDue fires once per pending participant when a campaign enters its
// reminder window.
type ReminderDue struct {
	CampaignID int64
	UserID     int64
	Email      string
	EndDate    time.Time
}

// EventType ...
func (ReminderDue) EventType() Type { return TypeReminderDue }
