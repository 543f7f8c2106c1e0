package notify

import (
	"context"

	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/repository"
)

// Bridge subscribes to core events and forwards the ones that should reach
// participants to the Notifier, honoring the campaign's email toggles.
type Bridge struct {
	provider  repository.Provider
	campaigns repository.Campaign
	notifier  Notifier
}

var _ event.Subscriber = &Bridge{}

// NewBridge ...
func NewBridge(provider repository.Provider, campaigns repository.Campaign, notifier Notifier) *Bridge {
	return &Bridge{
		provider:  provider,
		campaigns: campaigns,
		notifier:  notifier,
	}
}

func (b *Bridge) toggles(ctx context.Context, campaignID int64) (invitation, confirmation, reminder bool, err error) {
	nullCampaign, err := b.campaigns.Get(b.provider.Readonly(ctx), campaignID)
	if err != nil || !nullCampaign.Valid {
		return false, false, false, err
	}
	campaign := nullCampaign.Campaign
	return campaign.SendInvitation, campaign.SendConfirmation, campaign.SendReminder, nil
}

// HandleEvent ...
func (b *Bridge) HandleEvent(ctx context.Context, e event.Event) error {
	switch ev := e.(type) {
	case event.ParticipantInvited:
		invitation, _, _, err := b.toggles(ctx, ev.CampaignID)
		if err != nil || !invitation {
			return err
		}
		return b.notifier.Notify(ctx, string(e.EventType()), ev.CampaignID, ev.UserID,
			map[string]interface{}{"email": ev.Email})

	case event.SubmissionCompleted:
		_, confirmation, _, err := b.toggles(ctx, ev.CampaignID)
		if err != nil || !confirmation {
			return err
		}
		return b.notifier.Notify(ctx, string(e.EventType()), ev.CampaignID, ev.UserID,
			map[string]interface{}{
				"version":    ev.Version,
				"item_count": ev.ItemCount,
			})

	case event.ReminderDue:
		_, _, reminder, err := b.toggles(ctx, ev.CampaignID)
		if err != nil || !reminder {
			return err
		}
		return b.notifier.Notify(ctx, string(e.EventType()), ev.CampaignID, ev.UserID,
			map[string]interface{}{
				"email":    ev.Email,
				"end_date": ev.EndDate,
			})

	default:
		return nil
	}
}
