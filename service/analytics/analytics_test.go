package analytics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
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

type analyticsTest struct {
	campaigns    *repository.CampaignMock
	participants *repository.ParticipantMock
	responses    *repository.ResponseMock
	clk          *clock.ClockMock

	service *Service
}

func newAnalyticsTest() *analyticsTest {
	at := &analyticsTest{
		campaigns:    &repository.CampaignMock{},
		participants: &repository.ParticipantMock{},
		responses:    &repository.ResponseMock{},
		clk:          &clock.ClockMock{},
	}
	at.clk.NowFunc = func() time.Time {
		return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	at.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: model.Campaign{
			ID:        campaignID,
			Status:    model.CampaignStatusActive,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		}}, nil
	}
	at.participants.StatsFunc = func(ctx context.Context, campaignID int64) (repository.ParticipantStats, error) {
		return repository.ParticipantStats{TotalInvited: 3, TotalSubmitted: 2, PendingCount: 1}, nil
	}
	at.responses.SumLatestQuantityFunc = func(ctx context.Context, campaignID int64) (int64, error) {
		return 7, nil
	}
	at.participants.AvgResponseHoursFunc = func(ctx context.Context, campaignID int64) (sql.NullFloat64, error) {
		return sql.NullFloat64{Valid: true, Float64: 5.4321}, nil
	}

	at.service = NewService(providerStub{}, at.campaigns, at.participants,
		at.responses, at.clk, zap.NewNop())
	return at
}

func TestParticipationRate_Rounding(t *testing.T) {
	assert.Equal(t, "66.67", participationRate(2, 3).String())
	assert.Equal(t, "100", participationRate(3, 3).String())
	assert.Equal(t, "0", participationRate(0, 5).String())
	assert.Equal(t, "0", participationRate(0, 0).String())
}

func TestService_Stats(t *testing.T) {
	at := newAnalyticsTest()

	stats, err := at.service.Stats(newContext(), 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), stats.TotalInvited)
	assert.Equal(t, int64(2), stats.TotalSubmitted)
	assert.Equal(t, int64(1), stats.PendingCount)
	assert.Equal(t, int64(7), stats.TotalItems)
	assert.Equal(t, true, stats.IsOpen)
	assert.Equal(t, "66.67", stats.ParticipationRate.String())
	assert.Equal(t, true, stats.AvgResponseKnown)
	assert.Equal(t, "5.43", stats.AvgResponseHours.String())
}

func TestService_Stats__No_Submissions_Yet(t *testing.T) {
	at := newAnalyticsTest()
	at.participants.StatsFunc = func(ctx context.Context, campaignID int64) (repository.ParticipantStats, error) {
		return repository.ParticipantStats{}, nil
	}
	at.responses.SumLatestQuantityFunc = func(ctx context.Context, campaignID int64) (int64, error) {
		return 0, nil
	}
	at.participants.AvgResponseHoursFunc = func(ctx context.Context, campaignID int64) (sql.NullFloat64, error) {
		return sql.NullFloat64{}, nil
	}

	stats, err := at.service.Stats(newContext(), 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, decimal.Zero, stats.ParticipationRate)
	assert.Equal(t, false, stats.AvgResponseKnown)
}

func TestService_Stats__Not_Found(t *testing.T) {
	at := newAnalyticsTest()
	at.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	_, err := at.service.Stats(newContext(), 21)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestService_ListResponses(t *testing.T) {
	at := newAnalyticsTest()
	at.responses.SelectByCampaignFunc = func(
		ctx context.Context, campaignID int64, latestOnly bool,
	) ([]model.Response, error) {
		assert.Equal(t, true, latestOnly)
		return []model.Response{
			{UserID: 9, ProductID: 71, Quantity: 2, Version: 2, IsLatest: true},
			{UserID: 10, ProductID: 71, Quantity: 1, Version: 1, IsLatest: true},
		}, nil
	}

	responses, err := at.service.ListResponses(newContext(), 21, true)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(responses))
	assert.Equal(t, int64(9), responses[0].UserID)
}

func TestService_ListResponses__Not_Found(t *testing.T) {
	at := newAnalyticsTest()
	at.campaigns.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	_, err := at.service.ListResponses(newContext(), 21, false)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Equal(t, 0, len(at.responses.SelectByCampaignCalls()))
}

func TestService_ProductSummary(t *testing.T) {
	at := newAnalyticsTest()
	at.responses.AggregateByProductFunc = func(ctx context.Context, campaignID int64) ([]model.ProductTotal, error) {
		return []model.ProductTotal{
			{ProductID: 71, TotalQuantity: 5, UserCount: 2},
		}, nil
	}

	totals, err := at.service.ProductSummary(newContext(), 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(totals))
	assert.Equal(t, int64(5), totals[0].TotalQuantity)
}
