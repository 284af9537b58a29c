package model

import "time"

// Lead ...
type Lead struct {
	ID      string  `db:"id" json:"id"`
	Phone   string  `db:"phone" json:"phone"`
	Name    string  `db:"name" json:"name"`
	Email   string  `db:"email" json:"email"`
	Company string  `db:"company" json:"company"`
	Attrs   AttrMap `db:"attrs" json:"attrs"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Record flattens the lead into a generic record for field-path
// lookup. Typed columns win over same-named keys in attrs.
func (l Lead) Record() map[string]interface{} {
	record := make(map[string]interface{}, len(l.Attrs)+5)
	for k, v := range l.Attrs {
		record[k] = v
	}
	record["id"] = l.ID
	record["phone"] = l.Phone
	record["name"] = l.Name
	record["email"] = l.Email
	record["company"] = l.Company
	return record
}
