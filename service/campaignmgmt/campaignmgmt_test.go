package campaignmgmt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
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

type mgmtTest struct {
	campaigns    *repository.CampaignMock
	participants *repository.ParticipantMock
	responses    *repository.ResponseMock
	activities   *repository.ActivityMock
	publisher    *event.PublisherMock

	service *Service
}

func newMgmtTest() *mgmtTest {
	mt := &mgmtTest{
		campaigns:    &repository.CampaignMock{},
		participants: &repository.ParticipantMock{},
		responses:    &repository.ResponseMock{},
		activities:   &repository.ActivityMock{},
		publisher:    &event.PublisherMock{},
	}
	mt.publisher.PublishFunc = func(ctx context.Context, e event.Event) {}
	mt.campaigns.SlugExistsFunc = func(ctx context.Context, slug string) (bool, error) {
		return false, nil
	}
	mt.campaigns.InsertFunc = func(ctx context.Context, campaign model.Campaign) (int64, error) {
		return 41, nil
	}
	mt.campaigns.SetProductsFunc = func(ctx context.Context, campaignID int64, productIDs []int64) error {
		return nil
	}

	mt.service = NewService(providerStub{}, mt.campaigns, mt.participants,
		mt.responses, mt.activities, model.DefaultCampaignDefaults(),
		mt.publisher, zap.NewNop())
	return mt
}

func validInput() Input {
	return Input{
		Name:      "Spring Kit 2026",
		CreatorID: 500,
		StartDate: newTime("2026-03-01T00:00:00Z"),
		EndDate:   newTime("2026-03-31T00:00:00Z"),
	}
}

func TestService_Create__Applies_Defaults(t *testing.T) {
	mt := newMgmtTest()

	campaign, err := mt.service.Create(newContext(), validInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(41), campaign.ID)
	assert.Equal(t, "spring-kit-2026", campaign.Slug)
	assert.Equal(t, model.CampaignStatusDraft, campaign.Status)
	assert.Equal(t, 1, campaign.SelectionLimit)
	assert.Equal(t, model.EditPolicyOnce, campaign.EditPolicy)
	assert.Equal(t, 1, campaign.MinQuantity)
	assert.Equal(t, 10, campaign.MaxQuantity)
	assert.Equal(t, 24, campaign.ReminderHours)

	published := mt.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	created := published[0].E.(event.CampaignCreated)
	assert.Equal(t, int64(41), created.CampaignID)
	assert.Equal(t, int64(500), created.CreatorID)
}

func TestService_Create__Slug_Collision(t *testing.T) {
	mt := newMgmtTest()
	mt.campaigns.SlugExistsFunc = func(ctx context.Context, slug string) (bool, error) {
		return slug == "spring-kit-2026", nil
	}

	campaign, err := mt.service.Create(newContext(), validInput())
	assert.Equal(t, nil, err)
	assert.Equal(t, "spring-kit-2026-1", campaign.Slug)
}

func TestService_Create__Products_Attached(t *testing.T) {
	mt := newMgmtTest()

	input := validInput()
	input.ProductIDs = []int64{71, 72}

	_, err := mt.service.Create(newContext(), input)
	assert.Equal(t, nil, err)

	sets := mt.campaigns.SetProductsCalls()
	assert.Equal(t, 1, len(sets))
	assert.Equal(t, []int64{71, 72}, sets[0].ProductIDs)
}

func TestService_Create__Missing_Name(t *testing.T) {
	mt := newMgmtTest()

	input := validInput()
	input.Name = ""

	_, err := mt.service.Create(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrInvalidCampaign))
}

func TestService_Create__Inverted_Dates(t *testing.T) {
	mt := newMgmtTest()

	input := validInput()
	input.StartDate, input.EndDate = input.EndDate, input.StartDate

	_, err := mt.service.Create(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrInvalidCampaign))
}

func TestService_Create__Min_Above_Limit(t *testing.T) {
	mt := newMgmtTest()

	input := validInput()
	input.SelectionLimit = 2
	input.SelectionMin = 3

	_, err := mt.service.Create(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrInvalidCampaign))
}

func TestService_Update__Slug_Immutable_After_Publish(t *testing.T) {
	mt := newMgmtTest()
	existing := model.Campaign{
		ID:     41,
		Slug:   "spring-kit-2026",
		Status: model.CampaignStatusActive,
	}
	mt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: existing}, nil
	}

	input := validInput()
	input.Slug = "renamed"

	err := mt.service.Update(newContext(), 41, 500, input)
	assert.Equal(t, true, errors.Is(err, ErrSlugImmutable))
}

func TestService_Update__Slug_Changeable_In_Draft(t *testing.T) {
	mt := newMgmtTest()
	existing := model.Campaign{
		ID:     41,
		Slug:   "spring-kit-2026",
		Status: model.CampaignStatusDraft,
	}
	mt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: existing}, nil
	}
	mt.campaigns.UpdateFunc = func(ctx context.Context, campaign model.Campaign) error {
		return nil
	}

	input := validInput()
	input.Slug = "renamed"

	err := mt.service.Update(newContext(), 41, 500, input)
	assert.Equal(t, nil, err)

	updates := mt.campaigns.UpdateCalls()
	assert.Equal(t, 1, len(updates))
	assert.Equal(t, "renamed", updates[0].Campaign.Slug)
}

func TestService_Delete__Cascades(t *testing.T) {
	mt := newMgmtTest()
	mt.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: model.Campaign{ID: 41, Name: "Spring Kit"}}, nil
	}
	mt.responses.DeleteByCampaignFunc = func(ctx context.Context, campaignID int64) error { return nil }
	mt.participants.DeleteByCampaignFunc = func(ctx context.Context, campaignID int64) error { return nil }
	mt.activities.DeleteByCampaignFunc = func(ctx context.Context, campaignID int64) error { return nil }
	mt.campaigns.DeleteFunc = func(ctx context.Context, campaignID int64) error { return nil }

	err := mt.service.Delete(newContext(), 41, 500)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(mt.responses.DeleteByCampaignCalls()))
	assert.Equal(t, 1, len(mt.participants.DeleteByCampaignCalls()))
	assert.Equal(t, 1, len(mt.activities.DeleteByCampaignCalls()))
	assert.Equal(t, 1, len(mt.campaigns.DeleteCalls()))

	published := mt.publisher.PublishCalls()
	assert.Equal(t, 1, len(published))
	deleted := published[0].E.(event.CampaignDeleted)
	assert.Equal(t, "Spring Kit", deleted.Name)
}
