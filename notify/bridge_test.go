package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/repository"
)

type providerStub struct{}

func (providerStub) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (providerStub) Readonly(ctx context.Context) context.Context { return ctx }

type bridgeTest struct {
	campaigns *repository.CampaignMock
	notifier  *NotifierMock

	bridge *Bridge
}

func newBridgeTest() *bridgeTest {
	bt := &bridgeTest{
		campaigns: &repository.CampaignMock{},
		notifier:  &NotifierMock{},
	}
	bt.notifier.NotifyFunc = func(
		ctx context.Context, eventType string, campaignID, userID int64,
		payload map[string]interface{},
	) error {
		return nil
	}
	bt.bridge = NewBridge(providerStub{}, bt.campaigns, bt.notifier)
	return bt
}

func (bt *bridgeTest) stubCampaign(invitation, confirmation, reminder bool) {
	bt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{
			Valid: true,
			Campaign: model.Campaign{
				ID:               campaignID,
				SendInvitation:   invitation,
				SendConfirmation: confirmation,
				SendReminder:     reminder,
			},
		}, nil
	}
}

func TestBridge_Invitation(t *testing.T) {
	bt := newBridgeTest()
	bt.stubCampaign(true, true, true)

	err := bt.bridge.HandleEvent(context.Background(), event.ParticipantInvited{
		CampaignID: 21, UserID: 9, Email: "a@example.com",
	})
	assert.Equal(t, nil, err)

	notifies := bt.notifier.NotifyCalls()
	assert.Equal(t, 1, len(notifies))
	assert.Equal(t, string(event.TypeParticipantInvited), notifies[0].EventType)
	assert.Equal(t, int64(21), notifies[0].CampaignID)
	assert.Equal(t, int64(9), notifies[0].UserID)
	assert.Equal(t, "a@example.com", notifies[0].Payload["email"])
}

func TestBridge_Invitation_Toggle_Off(t *testing.T) {
	bt := newBridgeTest()
	bt.stubCampaign(false, true, true)

	err := bt.bridge.HandleEvent(context.Background(), event.ParticipantInvited{
		CampaignID: 21, UserID: 9, Email: "a@example.com",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(bt.notifier.NotifyCalls()))
}

func TestBridge_Confirmation(t *testing.T) {
	bt := newBridgeTest()
	bt.stubCampaign(true, true, true)

	err := bt.bridge.HandleEvent(context.Background(), event.SubmissionCompleted{
		CampaignID: 21, UserID: 9, Version: 2, ItemCount: 3,
	})
	assert.Equal(t, nil, err)

	notifies := bt.notifier.NotifyCalls()
	assert.Equal(t, 1, len(notifies))
	assert.Equal(t, 2, notifies[0].Payload["version"])
	assert.Equal(t, 3, notifies[0].Payload["item_count"])
}

func TestBridge_Confirmation_Toggle_Off(t *testing.T) {
	bt := newBridgeTest()
	bt.stubCampaign(true, false, true)

	err := bt.bridge.HandleEvent(context.Background(), event.SubmissionCompleted{
		CampaignID: 21, UserID: 9, Version: 2, ItemCount: 3,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(bt.notifier.NotifyCalls()))
}

func TestBridge_Reminder(t *testing.T) {
	bt := newBridgeTest()
	bt.stubCampaign(true, true, true)

	err := bt.bridge.HandleEvent(context.Background(), event.ReminderDue{
		CampaignID: 21, UserID: 9, Email: "a@example.com",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(bt.notifier.NotifyCalls()))
}

func TestBridge_Unknown_Campaign(t *testing.T) {
	bt := newBridgeTest()
	bt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	err := bt.bridge.HandleEvent(context.Background(), event.ReminderDue{
		CampaignID: 21, UserID: 9,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(bt.notifier.NotifyCalls()))
}

func TestBridge_Ignores_Other_Events(t *testing.T) {
	bt := newBridgeTest()

	err := bt.bridge.HandleEvent(context.Background(), event.CampaignDeleted{CampaignID: 21})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(bt.campaigns.GetCalls()))
	assert.Equal(t, 0, len(bt.notifier.NotifyCalls()))
}

func TestLogNotifier(t *testing.T) {
	notifier := NewLogNotifier(zap.NewNop())
	err := notifier.Notify(context.Background(), "reminder_due", 21, 9,
		map[string]interface{}{"email": "a@example.com"})
	assert.Equal(t, nil, err)
}
