package model

// CampaignDefaults holds the organization level defaults applied when a
// campaign is created without explicit values.
type CampaignDefaults struct {
	Type           CampaignType
	SelectionLimit int
	SelectionMin   int
	EditPolicy     EditPolicy
	AskColor       bool
	ColorConfig    ColorConfig
	AskSize        bool
	AskQuantity    bool
	MinQuantity    int
	MaxQuantity    int

	SendInvitation   bool
	SendConfirmation bool
	SendReminder     bool
	ReminderHours    int
}

// DefaultCampaignDefaults ...
func DefaultCampaignDefaults() CampaignDefaults {
	return CampaignDefaults{
		Type:           CampaignTypeTeam,
		SelectionLimit: 1,
		SelectionMin:   0,
		EditPolicy:     EditPolicyOnce,
		AskColor:       true,
		ColorConfig:    ColorConfigAll,
		AskSize:        true,
		AskQuantity:    true,
		MinQuantity:    1,
		MaxQuantity:    10,

		SendInvitation:   true,
		SendConfirmation: true,
		SendReminder:     true,
		ReminderHours:    24,
	}
}
