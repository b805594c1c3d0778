package entities

import "strings"

// JobStatus is the lifecycle state of a repair job.
//
// Intended progression:
//
//	pending -> in_progress -> waiting_for_parts <-> in_progress -> completed
//	        -> delivered -> credit_pending -> closed
type JobStatus string

const (
	JobStatusPending         JobStatus = "pending"
	JobStatusInProgress      JobStatus = "in_progress"
	JobStatusWaitingForParts JobStatus = "waiting_for_parts"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusDelivered       JobStatus = "delivered"
	JobStatusCreditPending   JobStatus = "credit_pending"
	JobStatusClosed          JobStatus = "closed"
)

var AllJobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusInProgress,
	JobStatusWaitingForParts,
	JobStatusCompleted,
	JobStatusDelivered,
	JobStatusCreditPending,
	JobStatusClosed,
}

var jobStatusNext = map[JobStatus][]JobStatus{
	JobStatusPending:         {JobStatusInProgress},
	JobStatusInProgress:      {JobStatusWaitingForParts, JobStatusCompleted},
	JobStatusWaitingForParts: {JobStatusInProgress},
	JobStatusCompleted:       {JobStatusDelivered},
	JobStatusDelivered:       {JobStatusCreditPending, JobStatusClosed},
	JobStatusCreditPending:   {JobStatusClosed},
}

func ParseJobStatus(v string) (JobStatus, bool) {
	s := JobStatus(strings.ToLower(strings.TrimSpace(v)))
	return s, s.IsValid()
}

func (s JobStatus) IsValid() bool {
	for _, known := range AllJobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StampsCompletion reports whether entering s sets completed_at.
func (s JobStatus) StampsCompletion() bool {
	switch s {
	case JobStatusCompleted, JobStatusDelivered, JobStatusClosed:
		return true
	}
	return false
}

// IsAdjacent reports whether to directly follows s in the intended progression.
// Staying in the same state is always adjacent.
func (s JobStatus) IsAdjacent(to JobStatus) bool {
	if s == to {
		return true
	}
	for _, next := range jobStatusNext[s] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusPolicy decides which status changes are accepted.
type StatusPolicy string

const (
	// StatusPolicyPermissive accepts any known status from any other.
	StatusPolicyPermissive StatusPolicy = "permissive"
	// StatusPolicyStrict accepts only adjacent steps of the progression.
	StatusPolicyStrict StatusPolicy = "strict"
)

func ParseStatusPolicy(v string) (StatusPolicy, bool) {
	p := StatusPolicy(strings.ToLower(strings.TrimSpace(v)))
	switch p {
	case StatusPolicyPermissive, StatusPolicyStrict:
		return p, true
	case "":
		return StatusPolicyPermissive, true
	}
	return p, false
}

func (p StatusPolicy) Allows(from, to JobStatus) bool {
	if !to.IsValid() {
		return false
	}
	if p == StatusPolicyStrict {
		return from.IsAdjacent(to)
	}
	return true
}
