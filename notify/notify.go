// Package notify holds the Notifier collaborator contract and its
// implementations. Notifications are fire-and-forget: a failure here never
// rolls back the operation that triggered it.
package notify

import (
	"context"

	"go.uber.org/zap"
)

//go:generate moq -rm -out notify_mocks.go . Notifier

// Notifier delivers a message about a campaign event to a user.
type Notifier interface {
	Notify(ctx context.Context, eventType string, campaignID, userID int64,
		payload map[string]interface{}) error
}

// LogNotifier writes notifications to the log. The default when no broker is
// configured.
type LogNotifier struct {
	logger *zap.Logger
}

var _ Notifier = &LogNotifier{}

// NewLogNotifier ...
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify ...
func (n *LogNotifier) Notify(
	_ context.Context, eventType string, campaignID, userID int64,
	payload map[string]interface{},
) error {
	n.logger.Info("notify",
		zap.String("event_type", eventType),
		zap.Int64("campaign_id", campaignID),
		zap.Int64("user_id", userID),
		zap.Any("payload", payload),
	)
	return nil
}
