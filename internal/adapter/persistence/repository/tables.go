package repository

// Tables holds the physical table names. Every name carries the configured
// prefix so several environments can share one account.
type Tables struct {
	Users       string
	Workshops   string
	InviteCodes string
	Managers    string
	Jobs        string
	JobUpdates  string
	Payments    string
	Settlements string
}

const (
	emailIndex       = "email-index"
	ownerIndex       = "owner_id-index"
	workshopIndex    = "workshop_id-index"
	userIndex        = "user_id-index"
	managerIndex     = "manager_id-index"
	jobIndex         = "job_id-index"
	collectedByIndex = "collected_by-index"
)

func NewTables(prefix string) Tables {
	return Tables{
		Users:       prefix + "users",
		Workshops:   prefix + "workshops",
		InviteCodes: prefix + "invite_codes",
		Managers:    prefix + "managers",
		Jobs:        prefix + "jobs",
		JobUpdates:  prefix + "job_updates",
		Payments:    prefix + "payments",
		Settlements: prefix + "settlements",
	}
}
