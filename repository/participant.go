package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tapp-eng/campaign-core/model"
)

//go:generate moq -rm -out participant_mocks.go . Participant

// ParticipantStats is the denormalized roster breakdown of one campaign.
type ParticipantStats struct {
	TotalInvited   int64 `db:"total_invited"`
	TotalSubmitted int64 `db:"total_submitted"`
	PendingCount   int64 `db:"pending_count"`
}

// Participant is the storage of campaign membership rows.
type Participant interface {
	// Insert is idempotent on the (campaign_id, user_id) unique key and
	// reports whether a new row was actually created.
	Insert(ctx context.Context, participant model.Participant) (bool, error)

	Get(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error)

	// GetForUpdate locks the participant row for the duration of the
	// enclosing transaction. Returns a Busy error when the row is already
	// locked by a concurrent submission.
	GetForUpdate(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error)

	List(ctx context.Context, campaignID int64, status model.ParticipantStatus,
		limit, offset int) ([]model.Participant, error)

	UpdateStatus(ctx context.Context, campaignID, userID int64,
		status model.ParticipantStatus, submittedAt sql.NullTime) error
	IncrementResponseCount(ctx context.Context, campaignID, userID int64) error
	DismissBanner(ctx context.Context, campaignID, userID int64) error

	Delete(ctx context.Context, campaignID, userID int64) (bool, error)
	DeleteByCampaign(ctx context.Context, campaignID int64) error

	Stats(ctx context.Context, campaignID int64) (ParticipantStats, error)
	AvgResponseHours(ctx context.Context, campaignID int64) (sql.NullFloat64, error)
}

type participantImpl struct {
}

// NewParticipant ...
func NewParticipant() Participant {
	return &participantImpl{}
}

const participantColumns = `
id, campaign_id, user_id, email, status,
invited_at, submitted_at, response_count, dismissed_banner
`

// Insert ...
func (p *participantImpl) Insert(ctx context.Context, participant model.Participant) (bool, error) {
	query := `
INSERT IGNORE INTO participant (campaign_id, user_id, email, status, invited_at)
VALUES (:campaign_id, :user_id, :email, :status, :invited_at)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, participant)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Get ...
func (p *participantImpl) Get(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
	query := `SELECT ` + participantColumns + `
FROM participant WHERE campaign_id = ? AND user_id = ?`
	var participant model.Participant
	err := GetReadonly(ctx).GetContext(ctx, &participant, query, campaignID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullParticipant{}, nil
	}
	if err != nil {
		return model.NullParticipant{}, err
	}
	return model.NullParticipant{Valid: true, Participant: participant}, nil
}

// GetForUpdate serializes concurrent submissions of the same pair. NOWAIT
// keeps the interactive caller from queueing behind a held lock.
func (p *participantImpl) GetForUpdate(ctx context.Context, campaignID, userID int64) (model.NullParticipant, error) {
	query := `SELECT ` + participantColumns + `
FROM participant WHERE campaign_id = ? AND user_id = ? FOR UPDATE NOWAIT`
	var participant model.Participant
	err := GetTx(ctx).GetContext(ctx, &participant, query, campaignID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullParticipant{}, nil
	}
	if err != nil {
		return model.NullParticipant{}, mapLockError(err)
	}
	return model.NullParticipant{Valid: true, Participant: participant}, nil
}

// List ...
func (p *participantImpl) List(
	ctx context.Context, campaignID int64, status model.ParticipantStatus,
	limit, offset int,
) ([]model.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participant WHERE campaign_id = ?`
	args := []interface{}{campaignID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var result []model.Participant
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// UpdateStatus ...
func (p *participantImpl) UpdateStatus(
	ctx context.Context, campaignID, userID int64,
	status model.ParticipantStatus, submittedAt sql.NullTime,
) error {
	query := `
UPDATE participant SET status = ?, submitted_at = ?
WHERE campaign_id = ? AND user_id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, submittedAt, campaignID, userID)
	return err
}

// IncrementResponseCount ...
func (p *participantImpl) IncrementResponseCount(ctx context.Context, campaignID, userID int64) error {
	query := `
UPDATE participant SET response_count = response_count + 1
WHERE campaign_id = ? AND user_id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID, userID)
	return err
}

// DismissBanner ...
func (p *participantImpl) DismissBanner(ctx context.Context, campaignID, userID int64) error {
	query := `
UPDATE participant SET dismissed_banner = 1
WHERE campaign_id = ? AND user_id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID, userID)
	return err
}

// Delete ...
func (p *participantImpl) Delete(ctx context.Context, campaignID, userID int64) (bool, error) {
	query := `DELETE FROM participant WHERE campaign_id = ? AND user_id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, campaignID, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByCampaign ...
func (p *participantImpl) DeleteByCampaign(ctx context.Context, campaignID int64) error {
	_, err := GetTx(ctx).ExecContext(ctx,
		`DELETE FROM participant WHERE campaign_id = ?`, campaignID)
	return err
}

// Stats ...
func (p *participantImpl) Stats(ctx context.Context, campaignID int64) (ParticipantStats, error) {
	query := `
SELECT
	COUNT(*) AS total_invited,
	COALESCE(SUM(CASE WHEN status = 'submitted' THEN 1 ELSE 0 END), 0) AS total_submitted,
	COALESCE(SUM(CASE WHEN status <> 'submitted' THEN 1 ELSE 0 END), 0) AS pending_count
FROM participant
WHERE campaign_id = ?
`
	var stats ParticipantStats
	err := GetReadonly(ctx).GetContext(ctx, &stats, query, campaignID)
	return stats, err
}

// AvgResponseHours is the mean hours between the invitation and the first
// submission, over participants who submitted.
func (p *participantImpl) AvgResponseHours(ctx context.Context, campaignID int64) (sql.NullFloat64, error) {
	query := `
SELECT AVG(TIMESTAMPDIFF(HOUR, invited_at, submitted_at))
FROM participant
WHERE campaign_id = ? AND submitted_at IS NOT NULL
`
	var avg sql.NullFloat64
	err := GetReadonly(ctx).GetContext(ctx, &avg, query, campaignID)
	return avg, err
}
