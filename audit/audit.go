// Package audit records core events into the activity trail.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/event"
	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/repository"
)

// Subscriber persists one activity row per audited event.
type Subscriber struct {
	provider   repository.Provider
	activities repository.Activity
	logger     *zap.Logger
}

var _ event.Subscriber = &Subscriber{}

// NewSubscriber ...
func NewSubscriber(provider repository.Provider, activities repository.Activity, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		provider:   provider,
		activities: activities,
		logger:     logger,
	}
}

func nullInt64(n int64) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Valid: true, Int64: n}
}

func metadata(v interface{}) sql.NullString {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: string(data)}
}

// HandleEvent ...
func (s *Subscriber) HandleEvent(ctx context.Context, e event.Event) error {
	activity, ok := s.toActivity(e)
	if !ok {
		return nil
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.activities.Insert(ctx, activity)
	})
	if err != nil {
		return err
	}

	s.logger.Info("audit",
		zap.String("action", activity.Action),
		zap.String("action_type", string(activity.ActionType)),
		zap.Int64("campaign_id", activity.CampaignID.Int64),
		zap.Int64("user_id", activity.UserID.Int64),
	)
	return nil
}

func (s *Subscriber) toActivity(e event.Event) (model.Activity, bool) {
	switch ev := e.(type) {
	case event.CampaignCreated:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeCampaign,
			Description: fmt.Sprintf("Campaign %q created", ev.Name),
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.CreatorID),
		}, true

	case event.CampaignUpdated:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeCampaign,
			Description: "Campaign updated",
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.ActorID),
		}, true

	case event.CampaignDeleted:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeCampaign,
			Description: fmt.Sprintf("Campaign %q deleted", ev.Name),
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.ActorID),
		}, true

	case event.CampaignStatusChanged:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeCampaign,
			Description: fmt.Sprintf("Status changed from %s to %s", ev.OldStatus, ev.NewStatus),
			CampaignID:  nullInt64(ev.CampaignID),
			Metadata: metadata(map[string]string{
				"old_status": ev.OldStatus,
				"new_status": ev.NewStatus,
			}),
		}, true

	case event.ParticipantInvited:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeParticipant,
			Description: "Participant invited",
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.UserID),
		}, true

	case event.ParticipantRemoved:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeParticipant,
			Description: "Participant removed",
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.UserID),
			Metadata:    metadata(map[string]int64{"removed_by": ev.ActorID}),
		}, true

	case event.SubmissionCompleted:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeResponse,
			Description: fmt.Sprintf("Submitted version %d with %d items", ev.Version, ev.ItemCount),
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.UserID),
			Metadata: metadata(map[string]interface{}{
				"version":    ev.Version,
				"item_count": ev.ItemCount,
				"edited_by":  ev.EditedBy,
			}),
		}, true

	case event.ResponseDeleted:
		return model.Activity{
			Action:      string(e.EventType()),
			ActionType:  model.ActivityTypeResponse,
			Description: "Response deleted by manager",
			CampaignID:  nullInt64(ev.CampaignID),
			UserID:      nullInt64(ev.TargetUserID),
			Metadata: metadata(map[string]int64{
				"deleted_by":   ev.ActorID,
				"rows_removed": ev.RowsRemoved,
			}),
		}, true

	default:
		return model.Activity{}, false
	}
}

// Cleanup removes activity rows older than the retention window.
func (s *Subscriber) Cleanup(ctx context.Context, retention time.Duration, now time.Time) (int64, error) {
	var removed int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.activities.DeleteOlderThan(ctx, now.Add(-retention))
		return err
	})
	return removed, err
}

// RunRetention runs Cleanup once per interval until the context is canceled.
func (s *Subscriber) RunRetention(ctx context.Context, interval, retention time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.Cleanup(ctx, retention, time.Now())
			if err != nil {
				s.logger.Error("activity retention cleanup", zap.Error(err))
				continue
			}
			if removed > 0 {
				s.logger.Info("activity retention cleanup",
					zap.Int64("removed", removed))
			}
		}
	}
}
