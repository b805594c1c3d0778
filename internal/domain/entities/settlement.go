package entities

import "time"

// Settlement is cash handed over by a manager. JobIDs is informational and
// is not checked against existing jobs.
type Settlement struct {
	ID               string     `json:"id"`
	ManagerID        string     `json:"manager_id"`
	WorkshopID       string     `json:"workshop_id"`
	Amount           float64    `json:"amount"`
	JobIDs           []string   `json:"job_ids"`
	Notes            string     `json:"notes,omitempty"`
	SubmittedDate    time.Time  `json:"submitted_date"`
	ConfirmedByOwner bool       `json:"confirmed_by_owner"`
	ConfirmationDate *time.Time `json:"confirmation_date"`
}

type SettlementFilter struct {
	WorkshopID string
	ManagerID  string
	Confirmed  *bool
}

type SettlementView struct {
	Settlement
	ManagerName string `json:"manager_name,omitempty"`
}

func (f SettlementFilter) Matches(s Settlement) bool {
	if f.WorkshopID != "" && s.WorkshopID != f.WorkshopID {
		return false
	}
	if f.ManagerID != "" && s.ManagerID != f.ManagerID {
		return false
	}
	if f.Confirmed != nil && s.ConfirmedByOwner != *f.Confirmed {
		return false
	}
	return true
}
