// Package submission orchestrates the submit path: lifecycle gate, roster
// membership, edit policy, selection validation, and the atomic
// ledger-append plus roster update.
package submission

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/catalog"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/clock"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
)

// ErrNotAuthorized when a privileged operation arrives without the
// pre-checked authorization flag.
var ErrNotAuthorized = errors.New("operation requires manager authorization")

// LineItem is one selection in a submission attempt.
type LineItem struct {
	ProductID int64
	VariantID int64
	Color     string
	Size      string
	Quantity  int
}

//go:generate moq -rm -out submission_mocks.go . IService

// IService ...
type IService interface {
	Submit(ctx context.Context, campaignID, actorID int64, lines []LineItem) (int, error)
	SubmitOnBehalf(ctx context.Context, campaignID, targetUserID, managerID int64,
		lines []LineItem) (int, error)
	DeleteResponse(ctx context.Context, campaignID, targetUserID, actorID int64,
		authorized bool) error
	GetLatestResponse(ctx context.Context, campaignID, userID int64) ([]model.Response, error)
	GetAllVersions(ctx context.Context, campaignID, userID int64) ([]model.ResponseVersion, error)
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaigns    repository.Campaign
	participants repository.Participant
	responses    repository.Response
	cat          catalog.Catalog
	clk          clock.Clock
	publisher    event.Publisher
	logger       *zap.Logger

	retryAttempts int
	retryBackoff  time.Duration
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaigns repository.Campaign,
	participants repository.Participant,
	responses repository.Response,
	cat catalog.Catalog,
	clk clock.Clock,
	publisher event.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaigns:    campaigns,
		participants: participants,
		responses:    responses,
		cat:          cat,
		clk:          clk,
		publisher:    publisher,
		logger:       logger,

		retryAttempts: 3,
		retryBackoff:  50 * time.Millisecond,
	}
}

// Submit validates the attempt and appends a new version. Returns the
// version number written.
func (s *Service) Submit(
	ctx context.Context, campaignID, actorID int64, lines []LineItem,
) (int, error) {
	version, err := s.submit(ctx, campaignID, actorID, 0, lines)
	observeSubmit(err)
	return version, err
}

// SubmitOnBehalf lets a manager write a participant's selections. The
// lifecycle gate and edit policy are not applied: authorization was resolved
// by the caller and managers correct submissions after the window closes.
// Selection rules still hold.
func (s *Service) SubmitOnBehalf(
	ctx context.Context, campaignID, targetUserID, managerID int64, lines []LineItem,
) (int, error) {
	version, err := s.submitOnBehalf(ctx, campaignID, targetUserID, managerID, lines)
	observeSubmit(err)
	return version, err
}

func (s *Service) submit(
	ctx context.Context, campaignID, actorID, editedBy int64, lines []LineItem,
) (int, error) {
	ctx, span := otel.Tracer("submission").Start(ctx, "submission.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("campaign.id", campaignID),
		attribute.Int64("actor.id", actorID),
		attribute.Int("line_count", len(lines)),
	)

	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}

	now := s.clk.Now()
	if !lifecycle.IsOpenForSubmission(campaign, now) {
		return 0, apperror.Newf(apperror.KindCampaignNotActive,
			"campaign %d is not open for submission", campaignID)
	}

	nullParticipant, err := s.participants.Get(s.provider.Readonly(ctx), campaignID, actorID)
	if err != nil {
		return 0, err
	}
	if !nullParticipant.Valid {
		return 0, apperror.Newf(apperror.KindNotAParticipant,
			"user %d is not a participant of campaign %d", actorID, campaignID)
	}

	if err := checkEditPolicy(campaign, nullParticipant.Participant); err != nil {
		return 0, err
	}

	rows, err := s.validateSelections(ctx, campaign, actorID, editedBy, lines)
	if err != nil {
		return 0, err
	}

	return s.appendWithRetry(ctx, campaign, actorID, rows, now, true)
}

func (s *Service) submitOnBehalf(
	ctx context.Context, campaignID, targetUserID, managerID int64, lines []LineItem,
) (int, error) {
	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}

	nullParticipant, err := s.participants.Get(s.provider.Readonly(ctx), campaignID, targetUserID)
	if err != nil {
		return 0, err
	}
	if !nullParticipant.Valid {
		return 0, apperror.Newf(apperror.KindNotAParticipant,
			"user %d is not a participant of campaign %d", targetUserID, campaignID)
	}

	rows, err := s.validateSelections(ctx, campaign, targetUserID, managerID, lines)
	if err != nil {
		return 0, err
	}

	return s.appendWithRetry(ctx, campaign, targetUserID, rows, s.clk.Now(), false)
}

func (s *Service) getCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	nullCampaign, err := s.campaigns.Get(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, apperror.Newf(apperror.KindNotFound,
			"campaign %d not found", campaignID)
	}
	return nullCampaign.Campaign, nil
}

// checkEditPolicy assumes the campaign is open: until_end and multiple both
// reduce to "still open", which the caller already verified.
func checkEditPolicy(campaign model.Campaign, participant model.Participant) error {
	if participant.Status != model.ParticipantStatusSubmitted {
		return nil
	}
	switch campaign.EditPolicy {
	case model.EditPolicyOnce:
		return apperror.New(apperror.KindEditNotAllowed,
			"this campaign allows a single submission")
	case model.EditPolicyMultiple, model.EditPolicyUntilEnd:
		return nil
	default:
		return apperror.Newf(apperror.KindEditNotAllowed,
			"unknown edit policy %q", campaign.EditPolicy)
	}
}

// appendWithRetry serializes on the participant row and retries bounded
// times on lock contention before surfacing Busy.
func (s *Service) appendWithRetry(
	ctx context.Context, campaign model.Campaign, userID int64,
	rows []model.Response, now time.Time, enforcePolicy bool,
) (int, error) {
	var version int
	for attempt := 1; ; attempt++ {
		err := s.provider.Transact(ctx, func(ctx context.Context) error {
			var err error
			version, err = s.appendVersion(ctx, campaign, userID, rows, now, enforcePolicy)
			return err
		})
		if err == nil {
			break
		}
		if apperror.Is(err, apperror.KindBusy) && attempt < s.retryAttempts {
			s.logger.Warn("submission lock contention, retrying",
				zap.Int64("campaign_id", campaign.ID),
				zap.Int64("user_id", userID),
				zap.Int("attempt", attempt),
			)
			time.Sleep(time.Duration(attempt) * s.retryBackoff)
			continue
		}
		return 0, err
	}

	s.publisher.Publish(ctx, event.SubmissionCompleted{
		CampaignID:  campaign.ID,
		UserID:      userID,
		Version:     version,
		ItemCount:   len(rows),
		EditedBy:    editedByOf(rows),
		SubmittedAt: now,
	})
	return version, nil
}

func editedByOf(rows []model.Response) int64 {
	if len(rows) == 0 || !rows[0].EditedBy.Valid {
		return 0
	}
	return rows[0].EditedBy.Int64
}

// appendVersion runs inside one transaction. The participant row lock
// serializes concurrent submissions of the same pair; no cross pair locking.
func (s *Service) appendVersion(
	ctx context.Context, campaign model.Campaign, userID int64,
	rows []model.Response, now time.Time, enforcePolicy bool,
) (int, error) {
	nullParticipant, err := s.participants.GetForUpdate(ctx, campaign.ID, userID)
	if err != nil {
		return 0, err
	}
	if !nullParticipant.Valid {
		return 0, apperror.Newf(apperror.KindNotAParticipant,
			"user %d is not a participant of campaign %d", userID, campaign.ID)
	}

	// Re-check under the lock: a concurrent first submission may have
	// landed between the readonly pre-check and here.
	if enforcePolicy {
		if err := checkEditPolicy(campaign, nullParticipant.Participant); err != nil {
			return 0, err
		}
	}

	current, err := s.responses.GetLatestVersion(ctx, campaign.ID, userID)
	if err != nil {
		return 0, err
	}
	// response_count is monotonic and survives a manager wipe, so version
	// numbers are never reused after delete_response.
	if nullParticipant.Participant.ResponseCount > current {
		current = nullParticipant.Participant.ResponseCount
	}
	version := current + 1

	if current > 0 {
		if err := s.responses.MarkNotLatest(ctx, campaign.ID, userID); err != nil {
			return 0, err
		}
	}

	for i := range rows {
		rows[i].Version = version
		rows[i].IsLatest = true
	}
	if err := s.responses.InsertLines(ctx, rows); err != nil {
		return 0, err
	}

	submittedAt := sql.NullTime{Valid: true, Time: now}
	err = s.participants.UpdateStatus(ctx, campaign.ID, userID,
		model.ParticipantStatusSubmitted, submittedAt)
	if err != nil {
		return 0, err
	}
	if err := s.participants.IncrementResponseCount(ctx, campaign.ID, userID); err != nil {
		return 0, err
	}

	return version, nil
}

// DeleteResponse is the privileged manager action: wipes every version of
// the pair and reverts the roster status to invited. The participant's
// response_count is left untouched so a later submission continues the
// version sequence instead of restarting at 1.
func (s *Service) DeleteResponse(
	ctx context.Context, campaignID, targetUserID, actorID int64, authorized bool,
) error {
	if !authorized {
		return ErrNotAuthorized
	}

	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return err
	}

	var removed int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullParticipant, err := s.participants.GetForUpdate(ctx, campaignID, targetUserID)
		if err != nil {
			return err
		}
		if !nullParticipant.Valid {
			return apperror.Newf(apperror.KindNotFound,
				"user %d is not a participant of campaign %d", targetUserID, campaignID)
		}

		removed, err = s.responses.DeleteAll(ctx, campaignID, targetUserID)
		if err != nil {
			return err
		}
		return s.participants.UpdateStatus(ctx, campaignID, targetUserID,
			model.ParticipantStatusInvited, sql.NullTime{})
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, event.ResponseDeleted{
		CampaignID:   campaignID,
		TargetUserID: targetUserID,
		ActorID:      actorID,
		RowsRemoved:  removed,
	})
	return nil
}

// GetLatestResponse returns the current line items, empty when the pair has
// never submitted or the response was deleted.
func (s *Service) GetLatestResponse(ctx context.Context, campaignID, userID int64) ([]model.Response, error) {
	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.responses.SelectLatest(s.provider.Readonly(ctx), campaignID, userID)
}

// GetAllVersions groups the full history by version, newest first.
func (s *Service) GetAllVersions(ctx context.Context, campaignID, userID int64) ([]model.ResponseVersion, error) {
	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	rows, err := s.responses.SelectAll(s.provider.Readonly(ctx), campaignID, userID)
	if err != nil {
		return nil, err
	}

	var result []model.ResponseVersion
	for _, row := range rows {
		if len(result) == 0 || result[len(result)-1].Version != row.Version {
			result = append(result, model.ResponseVersion{
				Version:   row.Version,
				CreatedAt: row.CreatedAt,
				EditedBy:  row.EditedBy,
			})
		}
		last := len(result) - 1
		result[last].Lines = append(result[last].Lines, row)
	}
	return result, nil
}
