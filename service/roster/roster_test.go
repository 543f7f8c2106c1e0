package roster

import (
	"context"
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

type rosterTest struct {
	campaigns    *repository.CampaignMock
	participants *repository.ParticipantMock
	responses    *repository.ResponseMock
	clk          *clock.ClockMock
	publisher    *event.PublisherMock

	service *Service
}

func newRosterTest() *rosterTest {
	rt := &rosterTest{
		campaigns:    &repository.CampaignMock{},
		participants: &repository.ParticipantMock{},
		responses:    &repository.ResponseMock{},
		clk:          &clock.ClockMock{},
		publisher:    &event.PublisherMock{},
	}
	rt.clk.NowFunc = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	rt.publisher.PublishFunc = func(ctx context.Context, e event.Event) {}
	rt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: model.Campaign{ID: campaignID}}, nil
	}

	rt.service = NewService(providerStub{}, rt.campaigns, rt.participants,
		rt.responses, rt.clk, rt.publisher, zap.NewNop())
	return rt
}

func TestService_InviteOne(t *testing.T) {
	rt := newRosterTest()
	rt.participants.InsertFunc = func(ctx context.Context, participant model.Participant) (bool, error) {
		return true, nil
	}

	err := rt.service.InviteOne(newContext(), 21, Invite{UserID: 9, Email: "user@example.com"})
	assert.Equal(t, nil, err)

	inserts := rt.participants.InsertCalls()
	assert.Equal(t, 1, len(inserts))
	assert.Equal(t, "user@example.com", inserts[0].Participant.Email)
	assert.Equal(t, model.ParticipantStatusInvited, inserts[0].Participant.Status)
	assert.Equal(t, rt.clk.NowFunc(), inserts[0].Participant.InvitedAt)

	published := rt.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	invited := published[0].E.(event.ParticipantInvited)
	assert.Equal(t, int64(9), invited.UserID)
}

func TestService_InviteOne__Idempotent(t *testing.T) {
	rt := newRosterTest()
	rt.participants.InsertFunc = func(ctx context.Context, participant model.Participant) (bool, error) {
		return false, nil
	}

	err := rt.service.InviteOne(newContext(), 21, Invite{UserID: 9, Email: "user@example.com"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(rt.publisher.PublishCalls()))
}

func TestService_InviteOne__Campaign_Missing(t *testing.T) {
	rt := newRosterTest()
	rt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	err := rt.service.InviteOne(newContext(), 21, Invite{UserID: 9})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestService_InviteMany__Counts_New_Rows(t *testing.T) {
	rt := newRosterTest()
	rt.participants.InsertFunc = func(ctx context.Context, participant model.Participant) (bool, error) {
		return participant.UserID != 2, nil
	}

	added, err := rt.service.InviteMany(newContext(), 21, []Invite{
		{UserID: 1, Email: "a@example.com"},
		{UserID: 2, Email: "b@example.com"},
		{UserID: 3, Email: "c@example.com"},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, len(rt.publisher.PublishCalls()))
}

func TestService_Remove__Cascades_Ledger(t *testing.T) {
	rt := newRosterTest()
	rt.participants.DeleteFunc = func(ctx context.Context, campaignID, userID int64) (bool, error) {
		return true, nil
	}
	rt.responses.DeleteAllFunc = func(ctx context.Context, campaignID, userID int64) (int64, error) {
		return 4, nil
	}

	err := rt.service.Remove(newContext(), 21, 9, 500)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(rt.responses.DeleteAllCalls()))

	published := rt.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	removed := published[0].E.(event.ParticipantRemoved)
	assert.Equal(t, int64(9), removed.UserID)
	assert.Equal(t, int64(500), removed.ActorID)
}

func TestService_Remove__Not_A_Participant(t *testing.T) {
	rt := newRosterTest()
	rt.participants.DeleteFunc = func(ctx context.Context, campaignID, userID int64) (bool, error) {
		return false, nil
	}

	err := rt.service.Remove(newContext(), 21, 9, 500)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, 0, len(rt.responses.DeleteAllCalls()))
	assert.Equal(t, 0, len(rt.publisher.PublishCalls()))
}

func TestService_IsParticipant(t *testing.T) {
	rt := newRosterTest()
	rt.participants.GetFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return model.NullParticipant{Valid: userID == 9}, nil
	}

	ok, err := rt.service.IsParticipant(newContext(), 21, 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, ok)

	ok, err = rt.service.IsParticipant(newContext(), 21, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, ok)
}

func TestService_List__Default_Limit(t *testing.T) {
	rt := newRosterTest()
	rt.participants.ListFunc = func(
		ctx context.Context, campaignID int64, status model.ParticipantStatus,
		limit, offset int,
	) ([]model.Participant, error) {
		assert.Equal(t, 100, limit)
		return nil, nil
	}

	_, err := rt.service.List(newContext(), 21, "", 0, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(rt.participants.ListCalls()))
}
