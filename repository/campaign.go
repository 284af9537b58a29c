package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
)

// Campaign ...
type Campaign interface {
	GetByID(ctx context.Context, campaignID int64) (model.NullCampaign, error)

	// BeginSend moves a campaign into the sending status and stamps
	// sent_at, only when its current status allows starting a run.
	// Returns false when the row was not in a sendable status, which
	// also makes it the row-level single-flight gate.
	BeginSend(ctx context.Context, campaignID int64, now time.Time) (bool, error)

	// FinishSend writes the terminal status and counters of one
	// dispatch run.
	FinishSend(
		ctx context.Context, campaignID int64,
		status model.CampaignStatus, sentCount int64, now time.Time,
	) error

	UpdateStatus(ctx context.Context, campaignID int64, status model.CampaignStatus) error
	Upsert(ctx context.Context, campaign model.Campaign) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// GetByID ...
func (c *campaignImpl) GetByID(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := `
SELECT id, name, type, status, template_content_sid,
	variables, variable_bindings, lead_ids,
	target_count, sent_count, last_sent_at, sent_at,
	created_at, updated_at
FROM campaign
WHERE id = ?
`
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{Valid: true, Campaign: result}, nil
}

// BeginSend ...
func (c *campaignImpl) BeginSend(
	ctx context.Context, campaignID int64, now time.Time,
) (bool, error) {
	query := `
UPDATE campaign
SET status = ?, sent_at = ?, updated_at = ?
WHERE id = ? AND status IN (?, ?, ?)
`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		model.CampaignStatusSending, now, now, campaignID,
		model.CampaignStatusDraft, model.CampaignStatusScheduled, model.CampaignStatusPaused,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FinishSend ...
func (c *campaignImpl) FinishSend(
	ctx context.Context, campaignID int64,
	status model.CampaignStatus, sentCount int64, now time.Time,
) error {
	query := `
UPDATE campaign
SET status = ?, sent_count = ?, last_sent_at = ?, updated_at = ?
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, sentCount, now, now, campaignID)
	return err
}

// UpdateStatus ...
func (c *campaignImpl) UpdateStatus(
	ctx context.Context, campaignID int64, status model.CampaignStatus,
) error {
	query := `UPDATE campaign SET status = ?, updated_at = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, time.Now(), campaignID)
	return err
}

// Upsert ...
func (c *campaignImpl) Upsert(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, name, type, status, template_content_sid,
	variables, variable_bindings, lead_ids,
	target_count, sent_count, last_sent_at, sent_at
) VALUES (
	:id, :name, :type, :status, :template_content_sid,
	:variables, :variable_bindings, :lead_ids,
	:target_count, :sent_count, :last_sent_at, :sent_at
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	type = NEW.type,
	status = NEW.status,
	template_content_sid = NEW.template_content_sid,

	variables = NEW.variables,
	variable_bindings = NEW.variable_bindings,
	lead_ids = NEW.lead_ids,

	target_count = NEW.target_count,
	sent_count = NEW.sent_count,
	last_sent_at = NEW.last_sent_at,
	sent_at = NEW.sent_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}
