package repository

import (
	"context"
	"time"

	"github.com/tapp-eng/campaign-core/model"
)

//go:generate moq -rm -out activity_mocks.go . Activity

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	Action     string
	ActionType model.ActivityType
	CampaignID int64
	UserID     int64

	Limit  int
	Offset int
}

// Activity is the storage of the audit trail.
type Activity interface {
	Insert(ctx context.Context, activity model.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error)
	Count(ctx context.Context, filter ActivityFilter) (int64, error)

	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteByCampaign(ctx context.Context, campaignID int64) error
}

type activityImpl struct {
}

// NewActivity ...
func NewActivity() Activity {
	return &activityImpl{}
}

// Insert ...
func (a *activityImpl) Insert(ctx context.Context, activity model.Activity) error {
	query := `
INSERT INTO activity (action, action_type, description, campaign_id, user_id, metadata)
VALUES (:action, :action_type, :description, :campaign_id, :user_id, :metadata)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, activity)
	return err
}

func (f ActivityFilter) whereClause() (string, []interface{}) {
	where := ` WHERE 1 = 1`
	var args []interface{}
	if f.Action != "" {
		where += ` AND action = ?`
		args = append(args, f.Action)
	}
	if f.ActionType != "" {
		where += ` AND action_type = ?`
		args = append(args, f.ActionType)
	}
	if f.CampaignID != 0 {
		where += ` AND campaign_id = ?`
		args = append(args, f.CampaignID)
	}
	if f.UserID != 0 {
		where += ` AND user_id = ?`
		args = append(args, f.UserID)
	}
	return where, args
}

// List ...
func (a *activityImpl) List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error) {
	where, args := filter.whereClause()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
SELECT id, action, action_type, description, campaign_id, user_id, metadata, created_at
FROM activity` + where + ` ORDER BY id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, filter.Offset)

	var result []model.Activity
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// Count ...
func (a *activityImpl) Count(ctx context.Context, filter ActivityFilter) (int64, error) {
	where, args := filter.whereClause()
	query := `SELECT COUNT(*) FROM activity` + where

	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, args...)
	return count, err
}

// DeleteOlderThan implements log retention.
func (a *activityImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM activity WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DeleteByCampaign ...
func (a *activityImpl) DeleteByCampaign(ctx context.Context, campaignID int64) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM activity WHERE campaign_id = ?`, campaignID)
	return err
}
