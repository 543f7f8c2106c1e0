// Package roster manages campaign membership and its denormalized status
// view. The status/submitted_at fields themselves are write-owned by the
// submission service.
package roster

import (
	"context"

	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/repository"
)

// Invite is one invitation input: the email is snapshotted on the
// participant row at invite time.
type Invite struct {
	UserID int64
	Email  string
}

//go:generate moq -rm -out roster_mocks.go . IService

// IService ...
type IService interface {
	InviteOne(ctx context.Context, campaignID int64, invite Invite) error
	InviteMany(ctx context.Context, campaignID int64, invites []Invite) (int, error)
	Remove(ctx context.Context, campaignID, userID, actorID int64) error
	IsParticipant(ctx context.Context, campaignID, userID int64) (bool, error)
	Get(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error)
	List(ctx context.Context, campaignID int64, status model.ParticipantStatus,
		limit, offset int) ([]model.Participant, error)
	DismissBanner(ctx context.Context, campaignID, userID int64) error
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaigns    repository.Campaign
	participants repository.Participant
	responses    repository.Response
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
	responses repository.Response,
	clk clock.Clock,
	publisher event.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaigns:    campaigns,
		participants: participants,
		responses:    responses,
		clk:          clk,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *Service) requireCampaign(ctx context.Context, campaignID int64) error {
	nullCampaign, err := s.campaigns.Get(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return err
	}
	if !nullCampaign.Valid {
		return apperror.Newf(apperror.KindNotFound, "campaign %d not found", campaignID)
	}
	return nil
}

// InviteOne is idempotent: inviting an existing participant succeeds without
// touching the row, and emits no duplicate event.
func (s *Service) InviteOne(ctx context.Context, campaignID int64, invite Invite) error {
	if err := s.requireCampaign(ctx, campaignID); err != nil {
		return err
	}

	var inserted bool
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = s.participants.Insert(ctx, model.Participant{
			CampaignID: campaignID,
			UserID:     invite.UserID,
			Email:      invite.Email,
			Status:     model.ParticipantStatusInvited,
			InvitedAt:  s.clk.Now(),
		})
		return err
	})
	if err != nil {
		return err
	}

	if inserted {
		s.publisher.Publish(ctx, event.ParticipantInvited{
			CampaignID: campaignID,
			UserID:     invite.UserID,
			Email:      invite.Email,
		})
	}
	return nil
}

// InviteMany returns how many invitations created new rows.
func (s *Service) InviteMany(ctx context.Context, campaignID int64, invites []Invite) (int, error) {
	if err := s.requireCampaign(ctx, campaignID); err != nil {
		return 0, err
	}

	added := 0
	for _, invite := range invites {
		var inserted bool
		err := s.provider.Transact(ctx, func(ctx context.Context) error {
			var err error
			inserted, err = s.participants.Insert(ctx, model.Participant{
				CampaignID: campaignID,
				UserID:     invite.UserID,
				Email:      invite.Email,
				Status:     model.ParticipantStatusInvited,
				InvitedAt:  s.clk.Now(),
			})
			return err
		})
		if err != nil {
			return added, err
		}
		if inserted {
			added++
			s.publisher.Publish(ctx, event.ParticipantInvited{
				CampaignID: campaignID,
				UserID:     invite.UserID,
				Email:      invite.Email,
			})
		}
	}
	return added, nil
}

// Remove deletes the participant row and cascades the deletion of the
// pair's ledger rows. Destructive and irreversible.
func (s *Service) Remove(ctx context.Context, campaignID, userID, actorID int64) error {
	if err := s.requireCampaign(ctx, campaignID); err != nil {
		return err
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		removed, err := s.participants.Delete(ctx, campaignID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return apperror.Newf(apperror.KindNotFound,
				"user %d is not a participant of campaign %d", userID, campaignID)
		}
		_, err = s.responses.DeleteAll(ctx, campaignID, userID)
		return err
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, event.ParticipantRemoved{
		CampaignID: campaignID,
		UserID:     userID,
		ActorID:    actorID,
	})
	return nil
}

// IsParticipant ...
func (s *Service) IsParticipant(ctx context.Context, campaignID, userID int64) (bool, error) {
	nullParticipant, err := s.participants.Get(s.provider.Readonly(ctx), campaignID, userID)
	if err != nil {
		return false, err
	}
	return nullParticipant.Valid, nil
}

// Get ...
func (s *Service) Get(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
	return s.participants.Get(s.provider.Readonly(ctx), campaignID, userID)
}

// List ...
func (s *Service) List(
	ctx context.Context, campaignID int64, status model.ParticipantStatus,
	limit, offset int,
) ([]model.Participant, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.participants.List(s.provider.Readonly(ctx), campaignID, status, limit, offset)
}

// DismissBanner ...
func (s *Service) DismissBanner(ctx context.Context, campaignID, userID int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.participants.DismissBanner(ctx, campaignID, userID)
	})
}
