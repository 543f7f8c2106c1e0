// Package campaignmgmt covers the manager side of campaign definitions:
// create/update/delete, the product list, and slug allocation. Status moves
// live in service/lifecycle.
package campaignmgmt

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/repository"
)

// ErrInvalidCampaign for rejected campaign definitions.
var ErrInvalidCampaign = errors.New("invalid campaign definition")

// ErrSlugImmutable once the campaign left draft.
var ErrSlugImmutable = errors.New("slug cannot change after publish")

// Input is the manager supplied campaign definition. Zero values fall back
// to the configured defaults.
type Input struct {
	Name string
	Slug string
	Type model.CampaignType

	CreatorID  int64
	Department string

	StartDate time.Time
	EndDate   time.Time

	Notes       string
	Description string

	SelectionLimit int
	SelectionMin   int
	EditPolicy     model.EditPolicy

	AskColor      *bool
	ColorConfig   model.ColorConfig
	AllowedColors string
	AskSize       *bool
	AskQuantity   *bool
	MinQuantity   int
	MaxQuantity   int

	SendInvitation   *bool
	SendConfirmation *bool
	SendReminder     *bool
	ReminderHours    int

	ProductIDs []int64
}

//go:generate moq -rm -out campaignmgmt_mocks.go . IService

// IService ...
type IService interface {
	Create(ctx context.Context, input Input) (model.Campaign, error)
	Update(ctx context.Context, campaignID, actorID int64, input Input) error
	Delete(ctx context.Context, campaignID, actorID int64) error
	Get(ctx context.Context, campaignID int64) (model.Campaign, error)
	GetBySlug(ctx context.Context, slug string) (model.Campaign, error)
	SetProducts(ctx context.Context, campaignID int64, productIDs []int64) error
	GetProducts(ctx context.Context, campaignID int64) ([]model.CampaignProduct, error)
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaigns    repository.Campaign
	participants repository.Participant
	responses    repository.Response
	activities   repository.Activity
	defaults     model.CampaignDefaults
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
	activities repository.Activity,
	defaults model.CampaignDefaults,
	publisher event.Publisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:     provider,
		campaigns:    campaigns,
		participants: participants,
		responses:    responses,
		activities:   activities,
		defaults:     defaults,
		publisher:    publisher,
		logger:       logger,
	}
}

func (s *Service) buildCampaign(input Input) (model.Campaign, error) {
	if input.Name == "" {
		return model.Campaign{}, fmt.Errorf("%w: name is required", ErrInvalidCampaign)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() ||
		!input.StartDate.Before(input.EndDate) {
		return model.Campaign{}, fmt.Errorf("%w: start date must be before end date", ErrInvalidCampaign)
	}

	defaults := s.defaults
	campaign := model.Campaign{
		Name:   input.Name,
		Type:   defaults.Type,
		Status: model.CampaignStatusDraft,

		CreatorID:  input.CreatorID,
		Department: nullString(input.Department),

		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),

		Notes:       nullString(input.Notes),
		Description: nullString(input.Description),

		SelectionLimit: defaults.SelectionLimit,
		SelectionMin:   defaults.SelectionMin,
		EditPolicy:     defaults.EditPolicy,

		AskColor:      boolOr(input.AskColor, defaults.AskColor),
		ColorConfig:   defaults.ColorConfig,
		AllowedColors: nullString(input.AllowedColors),
		AskSize:       boolOr(input.AskSize, defaults.AskSize),
		AskQuantity:   boolOr(input.AskQuantity, defaults.AskQuantity),
		MinQuantity:   defaults.MinQuantity,
		MaxQuantity:   defaults.MaxQuantity,

		SendInvitation:   boolOr(input.SendInvitation, defaults.SendInvitation),
		SendConfirmation: boolOr(input.SendConfirmation, defaults.SendConfirmation),
		SendReminder:     boolOr(input.SendReminder, defaults.SendReminder),
		ReminderHours:    defaults.ReminderHours,
	}

	if input.Type != "" {
		campaign.Type = input.Type
	}
	if input.SelectionLimit > 0 {
		campaign.SelectionLimit = input.SelectionLimit
	}
	if input.SelectionMin > 0 {
		campaign.SelectionMin = input.SelectionMin
	}
	if input.EditPolicy != "" {
		campaign.EditPolicy = input.EditPolicy
	}
	if input.ColorConfig != "" {
		campaign.ColorConfig = input.ColorConfig
	}
	if input.MinQuantity > 0 {
		campaign.MinQuantity = input.MinQuantity
	}
	if input.MaxQuantity > 0 {
		campaign.MaxQuantity = input.MaxQuantity
	}
	if input.ReminderHours > 0 {
		campaign.ReminderHours = input.ReminderHours
	}

	if campaign.SelectionMin > campaign.SelectionLimit {
		return model.Campaign{}, fmt.Errorf("%w: selection minimum exceeds the limit", ErrInvalidCampaign)
	}
	if campaign.MinQuantity > campaign.MaxQuantity {
		return model.Campaign{}, fmt.Errorf("%w: quantity bounds are inverted", ErrInvalidCampaign)
	}
	return campaign, nil
}

// Create allocates a unique slug, writes the campaign in draft status and
// attaches the product list.
func (s *Service) Create(ctx context.Context, input Input) (model.Campaign, error) {
	campaign, err := s.buildCampaign(input)
	if err != nil {
		return model.Campaign{}, err
	}

	base := input.Slug
	if base == "" {
		base = Slugify(input.Name)
	}
	slug, err := uniqueSlug(s.provider.Readonly(ctx), s.campaigns, base)
	if err != nil {
		return model.Campaign{}, err
	}
	campaign.Slug = slug

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		campaignID, err := s.campaigns.Insert(ctx, campaign)
		if err != nil {
			return err
		}
		campaign.ID = campaignID
		if len(input.ProductIDs) > 0 {
			return s.campaigns.SetProducts(ctx, campaignID, input.ProductIDs)
		}
		return nil
	})
	if err != nil {
		return model.Campaign{}, err
	}

	s.publisher.Publish(ctx, event.CampaignCreated{
		CampaignID: campaign.ID,
		CreatorID:  campaign.CreatorID,
		Name:       campaign.Name,
	})
	return campaign, nil
}

// Update rewrites the mutable fields. The slug is immutable once the
// campaign left draft.
func (s *Service) Update(ctx context.Context, campaignID, actorID int64, input Input) error {
	existing, err := s.Get(ctx, campaignID)
	if err != nil {
		return err
	}

	updated, err := s.buildCampaign(input)
	if err != nil {
		return err
	}
	updated.ID = campaignID
	updated.Status = existing.Status
	updated.CreatorID = existing.CreatorID

	updated.Slug = existing.Slug
	if input.Slug != "" && input.Slug != existing.Slug {
		if existing.Status != model.CampaignStatusDraft {
			return ErrSlugImmutable
		}
		slug, err := uniqueSlug(s.provider.Readonly(ctx), s.campaigns, input.Slug)
		if err != nil {
			return err
		}
		updated.Slug = slug
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.campaigns.Update(ctx, updated); err != nil {
			return err
		}
		if input.ProductIDs != nil {
			return s.campaigns.SetProducts(ctx, campaignID, input.ProductIDs)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, event.CampaignUpdated{
		CampaignID: campaignID,
		ActorID:    actorID,
	})
	return nil
}

// Delete removes the campaign and cascades products, roster, ledger and
// activity rows.
func (s *Service) Delete(ctx context.Context, campaignID, actorID int64) error {
	existing, err := s.Get(ctx, campaignID)
	if err != nil {
		return err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.responses.DeleteByCampaign(ctx, campaignID); err != nil {
			return err
		}
		if err := s.participants.DeleteByCampaign(ctx, campaignID); err != nil {
			return err
		}
		if err := s.activities.DeleteByCampaign(ctx, campaignID); err != nil {
			return err
		}
		return s.campaigns.Delete(ctx, campaignID)
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, event.CampaignDeleted{
		CampaignID: campaignID,
		Name:       existing.Name,
		ActorID:    actorID,
	})
	return nil
}

// Get ...
func (s *Service) Get(ctx context.Context, campaignID int64) (model.Campaign, error) {
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

// GetBySlug ...
func (s *Service) GetBySlug(ctx context.Context, slug string) (model.Campaign, error) {
	nullCampaign, err := s.campaigns.GetBySlug(s.provider.Readonly(ctx), slug)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, apperror.Newf(apperror.KindNotFound,
			"campaign %q not found", slug)
	}
	return nullCampaign.Campaign, nil
}

// SetProducts ...
func (s *Service) SetProducts(ctx context.Context, campaignID int64, productIDs []int64) error {
	if _, err := s.Get(ctx, campaignID); err != nil {
		return err
	}
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.campaigns.SetProducts(ctx, campaignID, productIDs)
	})
}

// GetProducts ...
func (s *Service) GetProducts(ctx context.Context, campaignID int64) ([]model.CampaignProduct, error) {
	if _, err := s.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.campaigns.GetProducts(s.provider.Readonly(ctx), campaignID)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: s}
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
