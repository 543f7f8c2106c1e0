// Package analytics computes read-only reporting over the roster and the
// latest ledger versions.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
)

// CampaignStats is the roster and volume breakdown of one campaign.
// ParticipationRate is a percentage rounded to two decimals, zero when
// nobody was invited.
type CampaignStats struct {
	CampaignID     int64
	Status         model.CampaignStatus
	IsOpen         bool
	TotalInvited   int64
	TotalSubmitted int64
	PendingCount   int64

	ParticipationRate decimal.Decimal
	TotalItems        int64

	AvgResponseHours decimal.Decimal
	AvgResponseKnown bool

	GeneratedAt time.Time
}

//go:generate moq -rm -out analytics_mocks.go . IService

// IService ...
type IService interface {
	Stats(ctx context.Context, campaignID int64) (CampaignStats, error)
	ProductSummary(ctx context.Context, campaignID int64) ([]model.ProductTotal, error)
	ListResponses(ctx context.Context, campaignID int64, latestOnly bool) ([]model.Response, error)
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaigns    repository.Campaign
	participants repository.Participant
	responses    repository.Response
	clk          clock.Clock
	logger       *zap.Logger
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaigns repository.Campaign,
	participants repository.Participant,
	responses repository.Response,
	clk clock.Clock,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaigns:    campaigns,
		participants: participants,
		responses:    responses,
		clk:          clk,
		logger:       logger,
	}
}

// Stats aggregates the roster counts and the latest-version item volume.
// Totals only count is_latest rows, so superseded versions never inflate
// the numbers.
func (s *Service) Stats(ctx context.Context, campaignID int64) (CampaignStats, error) {
	readonlyCtx := s.provider.Readonly(ctx)

	nullCampaign, err := s.campaigns.Get(readonlyCtx, campaignID)
	if err != nil {
		return CampaignStats{}, err
	}
	if !nullCampaign.Valid {
		return CampaignStats{}, apperror.Newf(apperror.KindNotFound,
			"campaign %d not found", campaignID)
	}
	campaign := nullCampaign.Campaign

	rosterStats, err := s.participants.Stats(readonlyCtx, campaignID)
	if err != nil {
		return CampaignStats{}, err
	}
	totalItems, err := s.responses.SumLatestQuantity(readonlyCtx, campaignID)
	if err != nil {
		return CampaignStats{}, err
	}
	avgHours, err := s.participants.AvgResponseHours(readonlyCtx, campaignID)
	if err != nil {
		return CampaignStats{}, err
	}

	now := s.clk.Now()
	stats := CampaignStats{
		CampaignID:     campaignID,
		Status:         campaign.Status,
		IsOpen:         lifecycle.IsOpenForSubmission(campaign, now),
		TotalInvited:   rosterStats.TotalInvited,
		TotalSubmitted: rosterStats.TotalSubmitted,
		PendingCount:   rosterStats.PendingCount,
		TotalItems:     totalItems,
		GeneratedAt:    now,
	}
	stats.ParticipationRate = participationRate(rosterStats.TotalSubmitted, rosterStats.TotalInvited)
	if avgHours.Valid {
		stats.AvgResponseKnown = true
		stats.AvgResponseHours = decimal.NewFromFloat(avgHours.Float64).Round(2)
	}
	return stats, nil
}

// ProductSummary groups the latest versions by product, variant, color and
// size with summed quantities.
func (s *Service) ProductSummary(ctx context.Context, campaignID int64) ([]model.ProductTotal, error) {
	readonlyCtx := s.provider.Readonly(ctx)

	nullCampaign, err := s.campaigns.Get(readonlyCtx, campaignID)
	if err != nil {
		return nil, err
	}
	if !nullCampaign.Valid {
		return nil, apperror.Newf(apperror.KindNotFound,
			"campaign %d not found", campaignID)
	}
	return s.responses.AggregateByProduct(readonlyCtx, campaignID)
}

// ListResponses returns the campaign's ledger rows, restricted to the
// latest version of every pair when latestOnly is set.
func (s *Service) ListResponses(ctx context.Context, campaignID int64, latestOnly bool) ([]model.Response, error) {
	readonlyCtx := s.provider.Readonly(ctx)

	nullCampaign, err := s.campaigns.Get(readonlyCtx, campaignID)
	if err != nil {
		return nil, err
	}
	if !nullCampaign.Valid {
		return nil, apperror.Newf(apperror.KindNotFound,
			"campaign %d not found", campaignID)
	}
	return s.responses.SelectByCampaign(readonlyCtx, campaignID, latestOnly)
}

func participationRate(submitted, invited int64) decimal.Decimal {
	if invited == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(submitted).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(invited)).
		Round(2)
}
