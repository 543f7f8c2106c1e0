package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/twmb/murmur3"

	"github.com/tapp-eng/campaign-core/model"
)

//go:generate moq -rm -out campaign_mocks.go . Campaign

// Campaign is the storage of campaign definitions and their product lists.
type Campaign interface {
	Insert(ctx context.Context, campaign model.Campaign) (int64, error)
	Update(ctx context.Context, campaign model.Campaign) error
	UpdateStatus(ctx context.Context, campaignID int64, status model.CampaignStatus) error
	Delete(ctx context.Context, campaignID int64) error

	Get(ctx context.Context, campaignID int64) (model.NullCampaign, error)
	GetBySlug(ctx context.Context, slug string) (model.NullCampaign, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	SetProducts(ctx context.Context, campaignID int64, productIDs []int64) error
	GetProducts(ctx context.Context, campaignID int64) ([]model.CampaignProduct, error)

	ListDueToStart(ctx context.Context, now time.Time) ([]model.Campaign, error)
	ListDueToEnd(ctx context.Context, now time.Time) ([]model.Campaign, error)
	ListDueReminder(ctx context.Context, now time.Time) ([]model.Campaign, error)
	SetReminderSent(ctx context.Context, campaignID int64, sentAt time.Time) error
}

// SlugHash computes the indexed hash column for slug lookups.
func SlugHash(slug string) uint32 {
	return murmur3.Sum32([]byte(slug))
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `
id, name, slug, slug_hash, type, status, creator_id, department,
start_date, end_date, notes, description,
selection_limit, selection_min, edit_policy,
ask_color, color_config, allowed_colors, ask_size, ask_quantity,
min_quantity, max_quantity,
send_invitation, send_confirmation, send_reminder, reminder_hours, reminder_sent_at,
created_at, updated_at
`

// Insert ...
func (c *campaignImpl) Insert(ctx context.Context, campaign model.Campaign) (int64, error) {
	campaign.SlugHash = SlugHash(campaign.Slug)
	query := `
INSERT INTO campaign (
	name, slug, slug_hash, type, status, creator_id, department,
	start_date, end_date, notes, description,
	selection_limit, selection_min, edit_policy,
	ask_color, color_config, allowed_colors, ask_size, ask_quantity,
	min_quantity, max_quantity,
	send_invitation, send_confirmation, send_reminder, reminder_hours
) VALUES (
	:name, :slug, :slug_hash, :type, :status, :creator_id, :department,
	:start_date, :end_date, :notes, :description,
	:selection_limit, :selection_min, :edit_policy,
	:ask_color, :color_config, :allowed_colors, :ask_size, :ask_quantity,
	:min_quantity, :max_quantity,
	:send_invitation, :send_confirmation, :send_reminder, :reminder_hours
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Update ...
func (c *campaignImpl) Update(ctx context.Context, campaign model.Campaign) error {
	campaign.SlugHash = SlugHash(campaign.Slug)
	query := `
UPDATE campaign
SET name = :name, slug = :slug, slug_hash = :slug_hash, type = :type,
	department = :department,
	start_date = :start_date, end_date = :end_date,
	notes = :notes, description = :description,
	selection_limit = :selection_limit, selection_min = :selection_min,
	edit_policy = :edit_policy,
	ask_color = :ask_color, color_config = :color_config,
	allowed_colors = :allowed_colors, ask_size = :ask_size,
	ask_quantity = :ask_quantity,
	min_quantity = :min_quantity, max_quantity = :max_quantity,
	send_invitation = :send_invitation, send_confirmation = :send_confirmation,
	send_reminder = :send_reminder, reminder_hours = :reminder_hours
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// UpdateStatus ...
func (c *campaignImpl) UpdateStatus(
	ctx context.Context, campaignID int64, status model.CampaignStatus,
) error {
	query := `UPDATE campaign SET status = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, campaignID)
	return err
}

// Delete removes the campaign together with its product associations.
// Participant and response rows are removed by the caller.
func (c *campaignImpl) Delete(ctx context.Context, campaignID int64) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM campaign_product WHERE campaign_id = ?`, campaignID)
	if err != nil {
		return err
	}
	_, err = GetTx(ctx).ExecContext(ctx, `DELETE FROM campaign WHERE id = ?`, campaignID)
	return err
}

// Get ...
func (c *campaignImpl) Get(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE id = ?`
	var campaign model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &campaign, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: campaign}, nil
}

// GetBySlug looks up by the hash column first, then the slug itself, so the
// index stays small for arbitrary length slugs.
func (c *campaignImpl) GetBySlug(ctx context.Context, slug string) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE slug_hash = ? AND slug = ?`
	var campaign model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &campaign, query, SlugHash(slug), slug)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: campaign}, nil
}

// SlugExists ...
func (c *campaignImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT COUNT(*) FROM campaign WHERE slug_hash = ? AND slug = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, SlugHash(slug), slug)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetProducts replaces the whole product list.
func (c *campaignImpl) SetProducts(ctx context.Context, campaignID int64, productIDs []int64) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM campaign_product WHERE campaign_id = ?`, campaignID)
	if err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	products := make([]model.CampaignProduct, 0, len(productIDs))
	for index, productID := range productIDs {
		products = append(products, model.CampaignProduct{
			CampaignID:   campaignID,
			ProductID:    productID,
			DisplayOrder: index,
		})
	}
	query := `
INSERT INTO campaign_product (campaign_id, product_id, display_order)
VALUES (:campaign_id, :product_id, :display_order)
`
	_, err = GetTx(ctx).NamedExecContext(ctx, query, products)
	return err
}

// GetProducts ...
func (c *campaignImpl) GetProducts(ctx context.Context, campaignID int64) ([]model.CampaignProduct, error) {
	query := `
SELECT id, campaign_id, product_id, display_order, created_at
FROM campaign_product
WHERE campaign_id = ?
ORDER BY display_order ASC
`
	var result []model.CampaignProduct
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// ListDueToStart ...
func (c *campaignImpl) ListDueToStart(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE status = ? AND start_date <= ?`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusScheduled, now)
	return result, err
}

// ListDueToEnd ...
func (c *campaignImpl) ListDueToEnd(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE status = ? AND end_date <= ?`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusActive, now)
	return result, err
}

// ListDueReminder finds active campaigns ending within their reminder window
// that have not been reminded yet.
func (c *campaignImpl) ListDueReminder(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
FROM campaign
WHERE status = ?
	AND send_reminder = 1
	AND reminder_sent_at IS NULL
	AND end_date > ?
	AND end_date <= DATE_ADD(?, INTERVAL reminder_hours HOUR)
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusActive, now, now)
	return result, err
}

// SetReminderSent ...
func (c *campaignImpl) SetReminderSent(ctx context.Context, campaignID int64, sentAt time.Time) error {
	query := `UPDATE campaign SET reminder_sent_at = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, sentAt, campaignID)
	return err
}
