package model

import "time"

// TemplateStatusApproved is the only status value that authorizes use
// of a template in a campaign
const TemplateStatusApproved = "approved"

// Template is the locally cached registry entry for an outbound
// message template. The status is owned by the external approval
// authority and only changes through a refresh.
type Template struct {
	ContentSid   string  `db:"content_sid" json:"content_sid"`
	FriendlyName string  `db:"friendly_name" json:"friendly_name"`
	Status       string  `db:"status" json:"status"`
	Body         string  `db:"body" json:"body"`
	Variables    JSONMap `db:"variables" json:"variables"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NullTemplate ...
type NullTemplate struct {
	Valid    bool
	Template Template
}

// Approved ...
func (t Template) Approved() bool {
	return NormalizeStatus(t.Status) == TemplateStatusApproved
}
