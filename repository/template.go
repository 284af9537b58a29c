package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
)

// Template ...
type Template interface {
	GetBySid(ctx context.Context, contentSid string) (model.NullTemplate, error)
	ListSids(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, template model.Template) error
	UpdateStatus(ctx context.Context, contentSid string, status string) error
}

type templateImpl struct {
}

// NewTemplate ...
func NewTemplate() Template {
	return &templateImpl{}
}

// GetBySid ...
func (t *templateImpl) GetBySid(ctx context.Context, contentSid string) (model.NullTemplate, error) {
	query := `
SELECT content_sid, friendly_name, status, body, variables, created_at, updated_at
FROM template
WHERE content_sid = ?
`
	var result model.Template
	err := GetReadonly(ctx).GetContext(ctx, &result, query, contentSid)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullTemplate{}, nil
	}
	if err != nil {
		return model.NullTemplate{}, err
	}
	return model.NullTemplate{Valid: true, Template: result}, nil
}

// ListSids ...
func (t *templateImpl) ListSids(ctx context.Context) ([]string, error) {
	query := `SELECT content_sid FROM template ORDER BY content_sid`
	var result []string
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// Upsert ...
func (t *templateImpl) Upsert(ctx context.Context, template model.Template) error {
	query := `
INSERT INTO template (
	content_sid, friendly_name, status, body, variables
) VALUES (
	:content_sid, :friendly_name, :status, :body, :variables
) AS NEW
ON DUPLICATE KEY UPDATE
	friendly_name = NEW.friendly_name,
	status = NEW.status,
	body = NEW.body,
	variables = NEW.variables
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, template)
	return err
}

// UpdateStatus ...
func (t *templateImpl) UpdateStatus(ctx context.Context, contentSid string, status string) error {
	query := `UPDATE template SET status = ?, updated_at = ? WHERE content_sid = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, time.Now(), contentSid)
	return err
}
