package model

import "time"

// MessageRoleAssistant marks outbound messages sent on behalf of the
// business
const MessageRoleAssistant = "assistant"

// Message is one entry in a lead's conversation history
type Message struct {
	ID        int64      `db:"id" json:"id"`
	LeadPhone string     `db:"lead_phone" json:"lead_phone"`
	Role      string     `db:"role" json:"role"`
	Content   string     `db:"content" json:"content"`
	Tags      StringList `db:"tags" json:"tags"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
