package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tapp-eng/campaign-core/model"
)

//go:generate moq -rm -out response_mocks.go . Response

// Response is the append-only versioned ledger of submitted selections.
// Line rows are immutable once written; only the is_latest flag moves to the
// newest version at write time.
type Response interface {
	// GetLatestVersion returns 0 when the pair has never submitted. Runs on
	// the transaction so the read is covered by the participant row lock.
	GetLatestVersion(ctx context.Context, campaignID, userID int64) (int, error)

	MarkNotLatest(ctx context.Context, campaignID, userID int64) error
	InsertLines(ctx context.Context, lines []model.Response) error

	SelectLatest(ctx context.Context, campaignID, userID int64) ([]model.Response, error)
	SelectAll(ctx context.Context, campaignID, userID int64) ([]model.Response, error)
	SelectByCampaign(ctx context.Context, campaignID int64, latestOnly bool) ([]model.Response, error)

	// DeleteAll wipes every version of the pair and returns the number of
	// rows removed.
	DeleteAll(ctx context.Context, campaignID, userID int64) (int64, error)
	DeleteByCampaign(ctx context.Context, campaignID int64) error

	AggregateByProduct(ctx context.Context, campaignID int64) ([]model.ProductTotal, error)
	SumLatestQuantity(ctx context.Context, campaignID int64) (int64, error)
}

type responseImpl struct {
}

// NewResponse ...
func NewResponse() Response {
	return &responseImpl{}
}

const responseColumns = `
id, campaign_id, user_id, product_id, variant_id, color, size, quantity,
version, is_latest, edited_by, created_at
`

// GetLatestVersion ...
func (r *responseImpl) GetLatestVersion(ctx context.Context, campaignID, userID int64) (int, error) {
	query := `
SELECT COALESCE(MAX(version), 0)
FROM response
WHERE campaign_id = ? AND user_id = ?
`
	var version int
	err := GetTx(ctx).GetContext(ctx, &version, query, campaignID, userID)
	return version, err
}

// MarkNotLatest ...
func (r *responseImpl) MarkNotLatest(ctx context.Context, campaignID, userID int64) error {
	query := `
UPDATE response SET is_latest = 0
WHERE campaign_id = ? AND user_id = ? AND is_latest = 1
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID, userID)
	return err
}

// InsertLines writes all line items of one version in a single statement.
func (r *responseImpl) InsertLines(ctx context.Context, lines []model.Response) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
INSERT INTO response (
	campaign_id, user_id, product_id, variant_id, color, size, quantity,
	version, is_latest, edited_by
) VALUES (
	:campaign_id, :user_id, :product_id, :variant_id, :color, :size, :quantity,
	:version, :is_latest, :edited_by
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, lines)
	return err
}

// SelectLatest ...
func (r *responseImpl) SelectLatest(ctx context.Context, campaignID, userID int64) ([]model.Response, error) {
	query := `SELECT ` + responseColumns + `
FROM response
WHERE campaign_id = ? AND user_id = ? AND is_latest = 1
ORDER BY id
`
	var result []model.Response
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, userID)
	return result, err
}

// SelectAll returns every version, newest first.
func (r *responseImpl) SelectAll(ctx context.Context, campaignID, userID int64) ([]model.Response, error) {
	query := `SELECT ` + responseColumns + `
FROM response
WHERE campaign_id = ? AND user_id = ?
ORDER BY version DESC, id ASC
`
	var result []model.Response
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, userID)
	return result, err
}

// SelectByCampaign ...
func (r *responseImpl) SelectByCampaign(
	ctx context.Context, campaignID int64, latestOnly bool,
) ([]model.Response, error) {
	query := `SELECT ` + responseColumns + ` FROM response WHERE campaign_id = ?`
	if latestOnly {
		query += ` AND is_latest = 1`
	}
	query += ` ORDER BY user_id, version DESC, id ASC`

	var result []model.Response
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// DeleteAll ...
func (r *responseImpl) DeleteAll(ctx context.Context, campaignID, userID int64) (int64, error) {
	query := `DELETE FROM response WHERE campaign_id = ? AND user_id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, campaignID, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteByCampaign ...
func (r *responseImpl) DeleteByCampaign(ctx context.Context, campaignID int64) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM response WHERE campaign_id = ?`, campaignID)
	return err
}

// AggregateByProduct scans latest rows only.
func (r *responseImpl) AggregateByProduct(ctx context.Context, campaignID int64) ([]model.ProductTotal, error) {
	query := `
SELECT
	product_id, variant_id, color, size,
	SUM(quantity) AS total_quantity,
	COUNT(DISTINCT user_id) AS user_count
FROM response
WHERE campaign_id = ? AND is_latest = 1
GROUP BY product_id, variant_id, color, size
ORDER BY product_id, variant_id, color, size
`
	var result []model.ProductTotal
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// SumLatestQuantity ...
func (r *responseImpl) SumLatestQuantity(ctx context.Context, campaignID int64) (int64, error) {
	query := `
SELECT COALESCE(SUM(quantity), 0)
FROM response
WHERE campaign_id = ? AND is_latest = 1
`
	var total int64
	err := GetReadonly(ctx).GetContext(ctx, &total, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return total, err
}
