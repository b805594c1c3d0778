package entities

import "time"

// InviteCode lets one manager join a workshop. It is consumed once and
// never becomes redeemable again.
type InviteCode struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	WorkshopID string     `json:"workshop_id"`
	CreatedBy  string     `json:"created_by"`
	Active     bool       `json:"is_active"`
	UsedBy     string     `json:"used_by,omitempty"`
	UsedAt     *time.Time `json:"used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (c InviteCode) IsRedeemable() bool {
	return c.ID != "" && c.Active && c.UsedBy == ""
}
