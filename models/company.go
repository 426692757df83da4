package models

import (
	"fmt"
	"strings"
	"time"
)

type MobileEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// Company is the letterhead printed on every report page.
type Company struct {
	ID        int64         `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string        `json:"name" bson:"name" db:"name"`
	Address   string        `json:"address" bson:"address" db:"address"`
	City      string        `json:"city" bson:"city" db:"city"`
	State     string        `json:"state" bson:"state" db:"state"`
	Pincode   string        `json:"pincode" bson:"pincode" db:"pincode"`
	GSTIN     string        `json:"gstin" bson:"gstin" db:"gstin"`
	Footnote  string        `json:"footnote" bson:"footnote" db:"footnote"`
	Mobile    []MobileEntry `json:"mobile" bson:"mobile" db:"mobile"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at" db:"created_at"`
}

// Contacts formats the phone list as "number(label), number(label)".
func (c *Company) Contacts() string {
	if c == nil {
		return ""
	}
	parts := make([]string, len(c.Mobile))
	for i, m := range c.Mobile {
		parts[i] = fmt.Sprintf("%s(%s)", m.Number, m.Label)
	}
	return strings.Join(parts, ", ")
}
