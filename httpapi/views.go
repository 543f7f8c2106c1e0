package httpapi

import (
	"database/sql"
	"time"

	"github.com/tapp-eng/campaign-core/model"
)

// View types keep sql.Null* wrappers out of the wire format.

type campaignView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Type   string `json:"type"`
	Status string `json:"status"`

	CreatorID  int64  `json:"creator_id"`
	Department string `json:"department,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Notes       string `json:"notes,omitempty"`
	Description string `json:"description,omitempty"`

	SelectionLimit int    `json:"selection_limit"`
	SelectionMin   int    `json:"selection_min"`
	EditPolicy     string `json:"edit_policy"`

	AskColor      bool   `json:"ask_color"`
	ColorConfig   string `json:"color_config"`
	AllowedColors string `json:"allowed_colors,omitempty"`
	AskSize       bool   `json:"ask_size"`
	AskQuantity   bool   `json:"ask_quantity"`
	MinQuantity   int    `json:"min_quantity"`
	MaxQuantity   int    `json:"max_quantity"`

	SendInvitation   bool `json:"send_invitation"`
	SendConfirmation bool `json:"send_confirmation"`
	SendReminder     bool `json:"send_reminder"`
	ReminderHours    int  `json:"reminder_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCampaignView(campaign model.Campaign) campaignView {
	return campaignView{
		ID:     campaign.ID,
		Name:   campaign.Name,
		Slug:   campaign.Slug,
		Type:   string(campaign.Type),
		Status: string(campaign.Status),

		CreatorID:  campaign.CreatorID,
		Department: campaign.Department.String,

		StartDate: campaign.StartDate,
		EndDate:   campaign.EndDate,

		Notes:       campaign.Notes.String,
		Description: campaign.Description.String,

		SelectionLimit: campaign.SelectionLimit,
		SelectionMin:   campaign.SelectionMin,
		EditPolicy:     string(campaign.EditPolicy),

		AskColor:      campaign.AskColor,
		ColorConfig:   string(campaign.ColorConfig),
		AllowedColors: campaign.AllowedColors.String,
		AskSize:       campaign.AskSize,
		AskQuantity:   campaign.AskQuantity,
		MinQuantity:   campaign.MinQuantity,
		MaxQuantity:   campaign.MaxQuantity,

		SendInvitation:   campaign.SendInvitation,
		SendConfirmation: campaign.SendConfirmation,
		SendReminder:     campaign.SendReminder,
		ReminderHours:    campaign.ReminderHours,

		CreatedAt: campaign.CreatedAt,
		UpdatedAt: campaign.UpdatedAt,
	}
}

type participantView struct {
	CampaignID int64  `json:"campaign_id"`
	UserID     int64  `json:"user_id"`
	Email      string `json:"email"`
	Status     string `json:"status"`

	InvitedAt   time.Time  `json:"invited_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`

	ResponseCount   int  `json:"response_count"`
	DismissedBanner bool `json:"dismissed_banner"`
}

func toParticipantView(participant model.Participant) participantView {
	return participantView{
		CampaignID:      participant.CampaignID,
		UserID:          participant.UserID,
		Email:           participant.Email,
		Status:          string(participant.Status),
		InvitedAt:       participant.InvitedAt,
		SubmittedAt:     nullTimePtr(participant.SubmittedAt),
		ResponseCount:   participant.ResponseCount,
		DismissedBanner: participant.DismissedBanner,
	}
}

type responseLineView struct {
	ProductID int64  `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`

	Version   int       `json:"version"`
	IsLatest  bool      `json:"is_latest"`
	EditedBy  int64     `json:"edited_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponseLineView(line model.Response) responseLineView {
	return responseLineView{
		ProductID: line.ProductID,
		VariantID: line.VariantID,
		Color:     line.Color.String,
		Size:      line.Size.String,
		Quantity:  line.Quantity,
		Version:   line.Version,
		IsLatest:  line.IsLatest,
		EditedBy:  line.EditedBy.Int64,
		CreatedAt: line.CreatedAt,
	}
}

func toResponseLineViews(lines []model.Response) []responseLineView {
	result := make([]responseLineView, 0, len(lines))
	for _, line := range lines {
		result = append(result, toResponseLineView(line))
	}
	return result
}

type campaignResponseView struct {
	UserID int64 `json:"user_id"`
	responseLineView
}

func toCampaignResponseViews(lines []model.Response) []campaignResponseView {
	result := make([]campaignResponseView, 0, len(lines))
	for _, line := range lines {
		result = append(result, campaignResponseView{
			UserID:           line.UserID,
			responseLineView: toResponseLineView(line),
		})
	}
	return result
}

type versionView struct {
	Version   int                `json:"version"`
	CreatedAt time.Time          `json:"created_at"`
	EditedBy  int64              `json:"edited_by,omitempty"`
	Lines     []responseLineView `json:"lines"`
}

func toVersionViews(versions []model.ResponseVersion) []versionView {
	result := make([]versionView, 0, len(versions))
	for _, version := range versions {
		result = append(result, versionView{
			Version:   version.Version,
			CreatedAt: version.CreatedAt,
			EditedBy:  version.EditedBy.Int64,
			Lines:     toResponseLineViews(version.Lines),
		})
	}
	return result
}

type productTotalView struct {
	ProductID     int64  `json:"product_id"`
	VariantID     int64  `json:"variant_id"`
	Color         string `json:"color,omitempty"`
	Size          string `json:"size,omitempty"`
	TotalQuantity int64  `json:"total_quantity"`
	UserCount     int64  `json:"user_count"`
}

func toProductTotalViews(totals []model.ProductTotal) []productTotalView {
	result := make([]productTotalView, 0, len(totals))
	for _, total := range totals {
		result = append(result, productTotalView{
			ProductID:     total.ProductID,
			VariantID:     total.VariantID,
			Color:         total.Color.String,
			Size:          total.Size.String,
			TotalQuantity: total.TotalQuantity,
			UserCount:     total.UserCount,
		})
	}
	return result
}

type activityView struct {
	ID          int64     `json:"id"`
	Action      string    `json:"action"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	CampaignID  int64     `json:"campaign_id,omitempty"`
	UserID      int64     `json:"user_id,omitempty"`
	Metadata    string    `json:"metadata,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toActivityViews(activities []model.Activity) []activityView {
	result := make([]activityView, 0, len(activities))
	for _, activity := range activities {
		result = append(result, activityView{
			ID:          activity.ID,
			Action:      activity.Action,
			ActionType:  string(activity.ActionType),
			Description: activity.Description,
			CampaignID:  activity.CampaignID.Int64,
			UserID:      activity.UserID.Int64,
			Metadata:    activity.Metadata.String,
			CreatedAt:   activity.CreatedAt,
		})
	}
	return result
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
