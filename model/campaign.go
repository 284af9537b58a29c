package model

import (
	"database/sql"
	"strings"
	"time"
)

// Campaign ...
type Campaign struct {
	ID     int64          `db:"id" json:"id"`
	Name   string         `db:"name" json:"name"`
	Type   CampaignType   `db:"type" json:"type"`
	Status CampaignStatus `db:"status" json:"status"`

	TemplateContentSid string `db:"template_content_sid" json:"template_content_sid"`

	Variables        JSONMap    `db:"variables" json:"variables"`
	VariableBindings JSONMap    `db:"variable_bindings" json:"variable_bindings"`
	LeadIDs          StringList `db:"lead_ids" json:"lead_ids"`

	TargetCount int64 `db:"target_count" json:"target_count"`
	SentCount   int64 `db:"sent_count" json:"sent_count"`

	LastSentAt sql.NullTime `db:"last_sent_at" json:"last_sent_at"`
	SentAt     sql.NullTime `db:"sent_at" json:"sent_at"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignType ...
type CampaignType string

const (
	// CampaignTypeBroadcast ...
	CampaignTypeBroadcast CampaignType = "broadcast"

	// CampaignTypeDrip ...
	CampaignTypeDrip CampaignType = "drip"

	// CampaignTypeTrigger ...
	CampaignTypeTrigger CampaignType = "trigger"
)

// CampaignStatus ...
type CampaignStatus string

const (
	// CampaignStatusDraft ...
	CampaignStatusDraft CampaignStatus = "draft"

	// CampaignStatusScheduled ...
	CampaignStatusScheduled CampaignStatus = "scheduled"

	// CampaignStatusSending ...
	CampaignStatusSending CampaignStatus = "sending"

	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = "active"

	// CampaignStatusPaused ...
	CampaignStatusPaused CampaignStatus = "paused"

	// CampaignStatusCompleted ...
	CampaignStatusCompleted CampaignStatus = "completed"
)

// NormalizeStatus is the single place status strings are canonicalized
// before comparison
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalized ...
func (s CampaignStatus) Normalized() CampaignStatus {
	return CampaignStatus(NormalizeStatus(string(s)))
}
