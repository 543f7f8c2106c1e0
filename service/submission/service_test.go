package submission

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/catalog"
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

type serviceTest struct {
	campaigns    *repository.CampaignMock
	participants *repository.ParticipantMock
	responses    *repository.ResponseMock
	cat          *catalog.Memory
	clk          *clock.ClockMock
	publisher    *event.PublisherMock

	service *Service
}

func newServiceTest() *serviceTest {
	st := &serviceTest{
		campaigns:    &repository.CampaignMock{},
		participants: &repository.ParticipantMock{},
		responses:    &repository.ResponseMock{},
		cat:          catalog.NewMemory(),
		clk:          &clock.ClockMock{},
		publisher:    &event.PublisherMock{},
	}
	st.clk.NowFunc = func() time.Time {
		return newTime("2026-03-10T12:00:00Z")
	}
	st.publisher.PublishFunc = func(ctx context.Context, e event.Event) {}

	st.cat.Put(catalog.Product{ID: 71, Name: "Team Jacket", Purchasable: true})
	st.cat.Put(catalog.Product{ID: 72, Name: "Cap", Purchasable: true})

	st.service = NewService(providerStub{}, st.campaigns, st.participants,
		st.responses, st.cat, st.clk, st.publisher, zap.NewNop())
	st.service.retryBackoff = time.Millisecond
	return st
}

func (st *serviceTest) stubCampaign(campaign model.Campaign) {
	st.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: campaign}, nil
	}
}

func (st *serviceTest) stubParticipant(participant model.Participant) {
	found := model.NullParticipant{Valid: true, Participant: participant}
	st.participants.GetFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return found, nil
	}
	st.participants.GetForUpdateFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return found, nil
	}
}

func (st *serviceTest) stubAppend(currentVersion int) {
	st.responses.GetLatestVersionFunc = func(ctx context.Context, campaignID, userID int64) (int, error) {
		return currentVersion, nil
	}
	st.responses.MarkNotLatestFunc = func(ctx context.Context, campaignID, userID int64) error {
		return nil
	}
	st.responses.InsertLinesFunc = func(ctx context.Context, lines []model.Response) error {
		return nil
	}
	st.participants.UpdateStatusFunc = func(
		ctx context.Context, campaignID, userID int64,
		status model.ParticipantStatus, submittedAt sql.NullTime,
	) error {
		return nil
	}
	st.participants.IncrementResponseCountFunc = func(ctx context.Context, campaignID, userID int64) error {
		return nil
	}
}

func openCampaign() model.Campaign {
	return model.Campaign{
		ID:     21,
		Name:   "Spring Kit",
		Status: model.CampaignStatusActive,

		StartDate: newTime("2026-03-01T00:00:00Z"),
		EndDate:   newTime("2026-03-31T00:00:00Z"),

		SelectionLimit: 3,
		SelectionMin:   1,
		EditPolicy:     model.EditPolicyMultiple,

		ColorConfig: model.ColorConfigAll,
		AskQuantity: true,
		MinQuantity: 1,
		MaxQuantity: 5,
	}
}

func invitedParticipant() model.Participant {
	return model.Participant{
		CampaignID: 21,
		UserID:     9,
		Email:      "user@example.com",
		Status:     model.ParticipantStatusInvited,
	}
}

func TestService_Submit__Roster_Update_Failure_Propagates(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.stubParticipant(invitedParticipant())
	st.stubAppend(0)
	st.participants.UpdateStatusFunc = func(
		ctx context.Context, campaignID, userID int64,
		status model.ParticipantStatus, submittedAt sql.NullTime,
	) error {
		return errors.New("connection reset")
	}

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 2},
	})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(st.publisher.PublishCalls()))
}

func TestService_Submit__First_Version(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.stubParticipant(invitedParticipant())
	st.stubAppend(0)

	version, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 2},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, version)

	assert.Equal(t, 0, len(st.responses.MarkNotLatestCalls()))

	inserted := st.responses.InsertLinesCalls()
	assert.Equal(t, 1, len(inserted))
	assert.Equal(t, 1, len(inserted[0].Lines))
	assert.Equal(t, 1, inserted[0].Lines[0].Version)
	assert.Equal(t, true, inserted[0].Lines[0].IsLatest)
	assert.Equal(t, 2, inserted[0].Lines[0].Quantity)

	updates := st.participants.UpdateStatusCalls()
	assert.Equal(t, 1, len(updates))
	assert.Equal(t, model.ParticipantStatusSubmitted, updates[0].Status)
	assert.Equal(t, true, updates[0].SubmittedAt.Valid)

	assert.Equal(t, 1, len(st.participants.IncrementResponseCountCalls()))

	published := st.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	completed := published[0].E.(event.SubmissionCompleted)
	assert.Equal(t, int64(21), completed.CampaignID)
	assert.Equal(t, int64(9), completed.UserID)
	assert.Equal(t, 1, completed.Version)
}

func TestService_Submit__Campaign_Not_Found(t *testing.T) {
	st := newServiceTest()
	st.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{{ProductID: 71}})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestService_Submit__Status_Active_But_Window_Passed(t *testing.T) {
	st := newServiceTest()
	campaign := openCampaign()
	campaign.EndDate = newTime("2026-03-05T00:00:00Z")
	st.stubCampaign(campaign)

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{{ProductID: 71}})
	assert.Equal(t, apperror.KindCampaignNotActive, apperror.KindOf(err))
}

func TestService_Submit__Status_Not_Active(t *testing.T) {
	st := newServiceTest()
	campaign := openCampaign()
	campaign.Status = model.CampaignStatusScheduled
	st.stubCampaign(campaign)

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{{ProductID: 71}})
	assert.Equal(t, apperror.KindCampaignNotActive, apperror.KindOf(err))
}

func TestService_Submit__Not_A_Participant(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.participants.GetFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return model.NullParticipant{}, nil
	}

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{{ProductID: 71}})
	assert.Equal(t, apperror.KindNotAParticipant, apperror.KindOf(err))
}

func TestService_Submit__Edit_Policy_Once__Already_Submitted(t *testing.T) {
	st := newServiceTest()
	campaign := openCampaign()
	campaign.EditPolicy = model.EditPolicyOnce
	st.stubCampaign(campaign)

	participant := invitedParticipant()
	participant.Status = model.ParticipantStatusSubmitted
	participant.ResponseCount = 1
	st.stubParticipant(participant)

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{{ProductID: 71}})
	assert.Equal(t, apperror.KindEditNotAllowed, apperror.KindOf(err))
}

func TestService_Submit__Resubmit_Appends_Version(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())

	participant := invitedParticipant()
	participant.Status = model.ParticipantStatusSubmitted
	participant.ResponseCount = 1
	st.stubParticipant(participant)
	st.stubAppend(1)

	version, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 72, Quantity: 1},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, 1, len(st.responses.MarkNotLatestCalls()))
}

func TestService_Submit__Version_Continues_After_Wipe(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())

	// delete_response wiped the ledger but response_count kept the sequence
	participant := invitedParticipant()
	participant.Status = model.ParticipantStatusInvited
	participant.ResponseCount = 3
	st.stubParticipant(participant)
	st.stubAppend(0)

	version, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 1},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, version)
	assert.Equal(t, 0, len(st.responses.MarkNotLatestCalls()))
}

func TestService_Submit__Busy_Then_Success(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.stubParticipant(invitedParticipant())
	st.stubAppend(0)

	calls := 0
	found := model.NullParticipant{Valid: true, Participant: invitedParticipant()}
	st.participants.GetForUpdateFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		calls++
		if calls <= 2 {
			return model.NullParticipant{}, apperror.New(apperror.KindBusy, "participant row is locked")
		}
		return found, nil
	}

	version, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 1},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, version)
	assert.Equal(t, 3, calls)
}

func TestService_Submit__Busy_Exhausts_Retries(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.stubParticipant(invitedParticipant())

	st.participants.GetForUpdateFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return model.NullParticipant{}, apperror.New(apperror.KindBusy, "participant row is locked")
	}

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 1},
	})
	assert.Equal(t, apperror.KindBusy, apperror.KindOf(err))
	assert.Equal(t, 3, len(st.participants.GetForUpdateCalls()))
	assert.Equal(t, 0, len(st.publisher.PublishCalls()))
}

func TestService_Submit__Policy_Rechecked_Under_Lock(t *testing.T) {
	st := newServiceTest()
	campaign := openCampaign()
	campaign.EditPolicy = model.EditPolicyOnce
	st.stubCampaign(campaign)

	// pre-check sees invited, the lock read sees a concurrent submission
	st.participants.GetFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return model.NullParticipant{Valid: true, Participant: invitedParticipant()}, nil
	}
	submitted := invitedParticipant()
	submitted.Status = model.ParticipantStatusSubmitted
	submitted.ResponseCount = 1
	st.participants.GetForUpdateFunc = func(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
		return model.NullParticipant{Valid: true, Participant: submitted}, nil
	}

	_, err := st.service.Submit(newContext(), 21, 9, []LineItem{
		{ProductID: 71, Quantity: 1},
	})
	assert.Equal(t, apperror.KindEditNotAllowed, apperror.KindOf(err))
}

func TestService_SubmitOnBehalf__Skips_Gate_And_Policy(t *testing.T) {
	st := newServiceTest()
	campaign := openCampaign()
	campaign.Status = model.CampaignStatusEnded
	campaign.EditPolicy = model.EditPolicyOnce
	st.stubCampaign(campaign)

	participant := invitedParticipant()
	participant.Status = model.ParticipantStatusSubmitted
	participant.ResponseCount = 2
	st.stubParticipant(participant)
	st.stubAppend(2)

	version, err := st.service.SubmitOnBehalf(newContext(), 21, 9, 500, []LineItem{
		{ProductID: 71, Quantity: 1},
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, version)

	inserted := st.responses.InsertLinesCalls()
	assert.Equal(t, 1, len(inserted))
	assert.Equal(t, sql.NullInt64{Valid: true, Int64: 500}, inserted[0].Lines[0].EditedBy)
}

func TestService_SubmitOnBehalf__Selection_Rules_Still_Apply(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())
	st.stubParticipant(invitedParticipant())

	_, err := st.service.SubmitOnBehalf(newContext(), 21, 9, 500, nil)
	assert.Equal(t, apperror.KindSelectionInvalid, apperror.KindOf(err))
	assert.Equal(t, apperror.ReasonTooFewItems, apperror.ReasonOf(err))
}

func TestService_DeleteResponse__Not_Authorized(t *testing.T) {
	st := newServiceTest()

	err := st.service.DeleteResponse(newContext(), 21, 9, 500, false)
	assert.Equal(t, true, errors.Is(err, ErrNotAuthorized))
}

func TestService_DeleteResponse__Wipes_And_Reverts_Status(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())

	participant := invitedParticipant()
	participant.Status = model.ParticipantStatusSubmitted
	participant.ResponseCount = 2
	st.stubParticipant(participant)

	st.responses.DeleteAllFunc = func(ctx context.Context, campaignID, userID int64) (int64, error) {
		return 5, nil
	}
	st.participants.UpdateStatusFunc = func(
		ctx context.Context, campaignID, userID int64,
		status model.ParticipantStatus, submittedAt sql.NullTime,
	) error {
		return nil
	}

	err := st.service.DeleteResponse(newContext(), 21, 9, 500, true)
	assert.Equal(t, nil, err)

	updates := st.participants.UpdateStatusCalls()
	assert.Equal(t, 1, len(updates))
	assert.Equal(t, model.ParticipantStatusInvited, updates[0].Status)
	assert.Equal(t, false, updates[0].SubmittedAt.Valid)

	published := st.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	deleted := published[0].E.(event.ResponseDeleted)
	assert.Equal(t, int64(500), deleted.ActorID)
	assert.Equal(t, int64(5), deleted.RowsRemoved)
}

func TestService_GetAllVersions__Groups_By_Version(t *testing.T) {
	st := newServiceTest()
	st.stubCampaign(openCampaign())

	st.responses.SelectAllFunc = func(ctx context.Context, campaignID, userID int64) ([]model.Response, error) {
		return []model.Response{
			{Version: 2, ProductID: 71, CreatedAt: newTime("2026-03-09T10:00:00Z")},
			{Version: 2, ProductID: 72, CreatedAt: newTime("2026-03-09T10:00:00Z")},
			{Version: 1, ProductID: 71, CreatedAt: newTime("2026-03-08T10:00:00Z")},
		}, nil
	}

	versions, err := st.service.GetAllVersions(newContext(), 21, 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(versions))
	assert.Equal(t, 2, versions[0].Version)
	assert.Equal(t, 2, len(versions[0].Lines))
	assert.Equal(t, 1, versions[1].Version)
	assert.Equal(t, 1, len(versions[1].Lines))
}
