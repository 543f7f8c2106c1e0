package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/repository"
)

func newContext() context.Context {
	return context.Background()
}

type providerStub struct{}

func (providerStub) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (providerStub) Readonly(ctx context.Context) context.Context { return ctx }

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type lifecycleTest struct {
	campaigns    *repository.CampaignMock
	participants *repository.ParticipantMock
	clk          *clock.ClockMock
	publisher    *event.PublisherMock

	service *Service
}

func newLifecycleTest() *lifecycleTest {
	lt := &lifecycleTest{
		campaigns:    &repository.CampaignMock{},
		participants: &repository.ParticipantMock{},
		clk:          &clock.ClockMock{},
		publisher:    &event.PublisherMock{},
	}
	lt.clk.NowFunc = func() time.Time {
		return newTime("2026-03-10T12:00:00Z")
	}
	lt.publisher.PublishFunc = func(ctx context.Context, e event.Event) {}

	lt.service = NewService(providerStub{}, lt.campaigns, lt.participants,
		lt.clk, lt.publisher, zap.NewNop())
	return lt
}

func campaignWith(status model.CampaignStatus) model.Campaign {
	return model.Campaign{
		ID:        31,
		Name:      "Winter Gear",
		Status:    status,
		StartDate: newTime("2026-03-01T00:00:00Z"),
		EndDate:   newTime("2026-03-31T00:00:00Z"),
	}
}

func TestIsOpenForSubmission(t *testing.T) {
	now := newTime("2026-03-10T12:00:00Z")

	assert.Equal(t, true, IsOpenForSubmission(campaignWith(model.CampaignStatusActive), now))

	// status gates even when the window matches
	assert.Equal(t, false, IsOpenForSubmission(campaignWith(model.CampaignStatusScheduled), now))
	assert.Equal(t, false, IsOpenForSubmission(campaignWith(model.CampaignStatusEnded), now))

	// end date is exclusive, start date inclusive
	campaign := campaignWith(model.CampaignStatusActive)
	assert.Equal(t, true, IsOpenForSubmission(campaign, campaign.StartDate))
	assert.Equal(t, false, IsOpenForSubmission(campaign, campaign.EndDate))

	assert.Equal(t, false, IsOpenForSubmission(campaign, newTime("2026-02-28T00:00:00Z")))
	assert.Equal(t, false, IsOpenForSubmission(campaign, newTime("2026-04-01T00:00:00Z")))
}

func TestService_IsOpen__Not_Found(t *testing.T) {
	lt := newLifecycleTest()
	lt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	_, err := lt.service.IsOpen(newContext(), 31)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestService_Schedule(t *testing.T) {
	lt := newLifecycleTest()
	lt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: campaignWith(model.CampaignStatusDraft)}, nil
	}
	lt.campaigns.UpdateStatusFunc = func(ctx context.Context, campaignID int64, status model.CampaignStatus) error {
		return nil
	}

	err := lt.service.Schedule(newContext(), 31)
	assert.Equal(t, nil, err)

	updates := lt.campaigns.UpdateStatusCalls()
	assert.Equal(t, 1, len(updates))
	assert.Equal(t, model.CampaignStatusScheduled, updates[0].Status)

	published := lt.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	changed := published[0].E.(event.CampaignStatusChanged)
	assert.Equal(t, "draft", changed.OldStatus)
	assert.Equal(t, "scheduled", changed.NewStatus)
}

func TestService_Schedule__Wrong_Status(t *testing.T) {
	lt := newLifecycleTest()
	lt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: campaignWith(model.CampaignStatusActive)}, nil
	}

	err := lt.service.Schedule(newContext(), 31)
	assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, 0, len(lt.campaigns.UpdateStatusCalls()))
}

func TestService_Archive__Requires_Ended(t *testing.T) {
	lt := newLifecycleTest()
	lt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: campaignWith(model.CampaignStatusActive)}, nil
	}

	err := lt.service.Archive(newContext(), 31)
	assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))
}

func TestService_Tick__Activates_And_Ends(t *testing.T) {
	lt := newLifecycleTest()

	due := campaignWith(model.CampaignStatusScheduled)
	ending := campaignWith(model.CampaignStatusActive)
	ending.ID = 32

	lt.campaigns.ListDueToStartFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return []model.Campaign{due}, nil
	}
	lt.campaigns.ListDueToEndFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return []model.Campaign{ending}, nil
	}
	lt.campaigns.ListDueReminderFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}
	lt.campaigns.UpdateStatusFunc = func(ctx context.Context, campaignID int64, status model.CampaignStatus) error {
		return nil
	}

	err := lt.service.Tick(newContext())
	assert.Equal(t, nil, err)

	updates := lt.campaigns.UpdateStatusCalls()
	assert.Equal(t, 2, len(updates))
	assert.Equal(t, int64(31), updates[0].CampaignID)
	assert.Equal(t, model.CampaignStatusActive, updates[0].Status)
	assert.Equal(t, int64(32), updates[1].CampaignID)
	assert.Equal(t, model.CampaignStatusEnded, updates[1].Status)
}

func TestService_Tick__Nothing_Due(t *testing.T) {
	lt := newLifecycleTest()
	lt.campaigns.ListDueToStartFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}
	lt.campaigns.ListDueToEndFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}
	lt.campaigns.ListDueReminderFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}

	err := lt.service.Tick(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(lt.campaigns.UpdateStatusCalls()))
	assert.Equal(t, 0, len(lt.publisher.PublishCalls()))
}

func TestService_Tick__Reminder_Fanout(t *testing.T) {
	lt := newLifecycleTest()

	reminding := campaignWith(model.CampaignStatusActive)
	reminding.SendReminder = true
	reminding.ReminderHours = 24

	lt.campaigns.ListDueToStartFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}
	lt.campaigns.ListDueToEndFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return nil, nil
	}
	lt.campaigns.ListDueReminderFunc = func(ctx context.Context, now time.Time) ([]model.Campaign, error) {
		return []model.Campaign{reminding}, nil
	}
	lt.campaigns.SetReminderSentFunc = func(ctx context.Context, campaignID int64, sentAt time.Time) error {
		return nil
	}
	lt.participants.ListFunc = func(
		ctx context.Context, campaignID int64, status model.ParticipantStatus,
		limit, offset int,
	) ([]model.Participant, error) {
		assert.Equal(t, model.ParticipantStatusInvited, status)
		return []model.Participant{
			{CampaignID: 31, UserID: 1, Email: "a@example.com"},
			{CampaignID: 31, UserID: 2, Email: "b@example.com"},
		}, nil
	}

	err := lt.service.Tick(newContext())
	assert.Equal(t, nil, err)

	// reminder window is marked before fan-out so a crash cannot double-send
	assert.Equal(t, 1, len(lt.campaigns.SetReminderSentCalls()))

	published := lt.publisher.PublishCalls()
	assert.Equal(t, 2, len(published))
	first := published[0].E.(event.ReminderDue)
	assert.Equal(t, int64(1), first.UserID)
	assert.Equal(t, "a@example.com", first.Email)
}
