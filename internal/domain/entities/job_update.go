package entities

import "time"

type JobUpdateType string

const (
	JobUpdateCreated  JobUpdateType = "created"
	JobUpdateModified JobUpdateType = "modified"
	JobUpdatePayment  JobUpdateType = "payment"
)

// JobUpdate is an append-only audit entry of a job.
type JobUpdate struct {
	ID          string        `json:"id"`
	JobID       string        `json:"job_id"`
	UpdatedBy   string        `json:"updated_by"`
	UpdateType  JobUpdateType `json:"update_type"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
}
