// Package lifecycle is the single source of truth for the campaign status
// state machine and for "is this campaign accepting submissions right now".
package lifecycle

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/repository"
)

// ErrInvalidTransition when an explicit admin action does not apply to the
// campaign's current status.
var ErrInvalidTransition = errors.New("invalid campaign status transition")

//go:generate moq -rm -out lifecycle_mocks.go . IService

// IService ...
type IService interface {
	IsOpen(ctx context.Context, campaignID int64) (bool, error)
	Schedule(ctx context.Context, campaignID int64) error
	EndNow(ctx context.Context, campaignID int64) error
	Archive(ctx context.Context, campaignID int64) error
	Tick(ctx context.Context) error
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaigns    repository.Campaign
	participants repository.Participant
	clk          clock.Clock
	publisher    event.Publisher
	logger       *zap.Logger
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaigns repository.Campaign,
	participants repository.Participant,
	clk clock.Clock,
	publisher event.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaigns:    campaigns,
		participants: participants,
		clk:          clk,
		publisher:    publisher,
		logger:       logger,
	}
}

// IsOpenForSubmission is the authoritative time based check. Status is only
// a hint kept fresh by the tick; the window bounds decide.
func IsOpenForSubmission(campaign model.Campaign, now time.Time) bool {
	if campaign.Status != model.CampaignStatusActive {
		return false
	}
	return !now.Before(campaign.StartDate) && now.Before(campaign.EndDate)
}

// IsOpen ...
func (s *Service) IsOpen(ctx context.Context, campaignID int64) (bool, error) {
	nullCampaign, err := s.campaigns.Get(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return false, err
	}
	if !nullCampaign.Valid {
		return false, apperror.Newf(apperror.KindNotFound, "campaign %d not found", campaignID)
	}
	return IsOpenForSubmission(nullCampaign.Campaign, s.clk.Now()), nil
}

// Schedule moves draft -> scheduled.
func (s *Service) Schedule(ctx context.Context, campaignID int64) error {
	return s.explicitTransition(ctx, campaignID,
		model.CampaignStatusDraft, model.CampaignStatusScheduled)
}

// EndNow moves active -> ended ahead of the end date.
func (s *Service) EndNow(ctx context.Context, campaignID int64) error {
	return s.explicitTransition(ctx, campaignID,
		model.CampaignStatusActive, model.CampaignStatusEnded)
}

// Archive moves ended -> archived, the terminal state.
func (s *Service) Archive(ctx context.Context, campaignID int64) error {
	return s.explicitTransition(ctx, campaignID,
		model.CampaignStatusEnded, model.CampaignStatusArchived)
}

func (s *Service) explicitTransition(
	ctx context.Context, campaignID int64,
	from, to model.CampaignStatus,
) error {
	nullCampaign, err := s.campaigns.Get(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return err
	}
	if !nullCampaign.Valid {
		return apperror.Newf(apperror.KindNotFound, "campaign %d not found", campaignID)
	}
	campaign := nullCampaign.Campaign
	if campaign.Status != from {
		return ErrInvalidTransition
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.campaigns.UpdateStatus(ctx, campaignID, to)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, event.CampaignStatusChanged{
		CampaignID: campaignID,
		OldStatus:  string(from),
		NewStatus:  string(to),
	})
	return nil
}

// Tick runs the time driven transitions. Idempotent: due lists are selected
// by status, so an already transitioned campaign is simply not picked up
// again.
func (s *Service) Tick(ctx context.Context) error {
	now := s.clk.Now()

	if err := s.activateDue(ctx, now); err != nil {
		return err
	}
	if err := s.endDue(ctx, now); err != nil {
		return err
	}
	return s.remindDue(ctx, now)
}

func (s *Service) activateDue(ctx context.Context, now time.Time) error {
	due, err := s.campaigns.ListDueToStart(s.provider.Readonly(ctx), now)
	if err != nil {
		return err
	}
	for _, campaign := range due {
		if err := s.autoTransition(ctx, campaign, model.CampaignStatusActive); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) endDue(ctx context.Context, now time.Time) error {
	due, err := s.campaigns.ListDueToEnd(s.provider.Readonly(ctx), now)
	if err != nil {
		return err
	}
	for _, campaign := range due {
		if err := s.autoTransition(ctx, campaign, model.CampaignStatusEnded); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) autoTransition(
	ctx context.Context, campaign model.Campaign, to model.CampaignStatus,
) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.campaigns.UpdateStatus(ctx, campaign.ID, to)
	})
	if err != nil {
		return err
	}

	s.logger.Info("campaign auto transition",
		zap.Int64("campaign_id", campaign.ID),
		zap.String("from", string(campaign.Status)),
		zap.String("to", string(to)),
	)
	s.publisher.Publish(ctx, event.CampaignStatusChanged{
		CampaignID: campaign.ID,
		OldStatus:  string(campaign.Status),
		NewStatus:  string(to),
	})
	return nil
}

func (s *Service) remindDue(ctx context.Context, now time.Time) error {
	due, err := s.campaigns.ListDueReminder(s.provider.Readonly(ctx), now)
	if err != nil {
		return err
	}

	for _, campaign := range due {
		pending, err := s.participants.List(s.provider.Readonly(ctx),
			campaign.ID, model.ParticipantStatusInvited, reminderBatchLimit, 0)
		if err != nil {
			return err
		}

		err = s.provider.Transact(ctx, func(ctx context.Context) error {
			return s.campaigns.SetReminderSent(ctx, campaign.ID, now)
		})
		if err != nil {
			return err
		}

		for _, participant := range pending {
			s.publisher.Publish(ctx, event.ReminderDue{
				CampaignID: campaign.ID,
				UserID:     participant.UserID,
				Email:      participant.Email,
				EndDate:    campaign.EndDate,
			})
		}
	}
	return nil
}

const reminderBatchLimit = 10000

// RunTicker drives Tick until the context is cancelled.
func (s *Service) RunTicker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				s.logger.Error("lifecycle tick failed", zap.Error(err))
			}
		}
	}
}
