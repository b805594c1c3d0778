package entities

import "time"

// Job is a repair order. WorkshopID and ManagerID are fixed at creation.
type Job struct {
	ID                    string     `json:"id"`
	WorkshopID            string     `json:"workshop_id"`
	ManagerID             string     `json:"manager_id"`
	CustomerName          string     `json:"customer_name"`
	Phone                 string     `json:"phone"`
	Address               string     `json:"address,omitempty"`
	CarModel              string     `json:"car_model"`
	VehicleNumber         string     `json:"vehicle_number"`
	WorkDescription       string     `json:"work_description"`
	EstimatedAmount       float64    `json:"estimated_amount"`
	AdvancePaid           float64    `json:"advance_paid"`
	PlannedCompletionDays int        `json:"planned_completion_days"`
	PartsRequired         string     `json:"parts_required,omitempty"`
	WorkerAssigned        string     `json:"worker_assigned,omitempty"`
	InternalNotes         string     `json:"internal_notes,omitempty"`
	Status                JobStatus  `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	CompletedAt           *time.Time `json:"completed_at"`
}

// JobFilter narrows job listings. Empty fields do not filter.
type JobFilter struct {
	WorkshopID string
	ManagerID  string
	Status     JobStatus
}

// JobSummary is a job enriched with its author name and payment totals.
type JobSummary struct {
	Job
	ManagerName     string  `json:"manager_name,omitempty"`
	TotalPaid       float64 `json:"total_paid"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// JobDetail adds the payments and the audit trail (newest first).
type JobDetail struct {
	JobSummary
	Payments []Payment   `json:"payments"`
	Updates  []JobUpdate `json:"updates"`
}

func (f JobFilter) Matches(j Job) bool {
	if f.WorkshopID != "" && j.WorkshopID != f.WorkshopID {
		return false
	}
	if f.ManagerID != "" && j.ManagerID != f.ManagerID {
		return false
	}
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	return true
}
