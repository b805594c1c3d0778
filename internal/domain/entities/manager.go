package entities

import "time"

// ManagerBinding attaches a manager account to a workshop. Removal only
// clears Active; the row is kept so historical jobs stay attributable.
type ManagerBinding struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	WorkshopID  string          `json:"workshop_id"`
	JoinedAt    time.Time       `json:"joined_at"`
	Active      bool            `json:"is_active"`
	Permissions map[string]bool `json:"permissions"`
}

// ManagerView is a binding with the manager's public profile.
type ManagerView struct {
	ManagerBinding
	User *User `json:"user,omitempty"`
}
