package repository

import (
	"context"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
	"github.com/jmoiron/sqlx"
)

// Lead ...
type Lead interface {
	// GetByIDs returns the leads found among ids, preserving the input
	// order. IDs with no matching row are silently dropped.
	GetByIDs(ctx context.Context, ids []string) ([]model.Lead, error)

	Upsert(ctx context.Context, lead model.Lead) error
}

type leadImpl struct {
}

// NewLead ...
func NewLead() Lead {
	return &leadImpl{}
}

// GetByIDs ...
func (l *leadImpl) GetByIDs(ctx context.Context, ids []string) ([]model.Lead, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, phone, name, email, company, attrs, created_at, updated_at
FROM lead
WHERE id IN (?)
`, ids)
	if err != nil {
		return nil, err
	}

	var rows []model.Lead
	err = GetReadonly(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Lead, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	result := make([]model.Lead, 0, len(rows))
	for _, id := range ids {
		lead, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, lead)
	}
	return result, nil
}

// Upsert ...
func (l *leadImpl) Upsert(ctx context.Context, lead model.Lead) error {
	query := `
INSERT INTO lead (
	id, phone, name, email, company, attrs
) VALUES (
	:id, :phone, :name, :email, :company, :attrs
) AS NEW
ON DUPLICATE KEY UPDATE
	phone = NEW.phone,
	name = NEW.name,
	email = NEW.email,
	company = NEW.company,
	attrs = NEW.attrs
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, lead)
	return err
}
