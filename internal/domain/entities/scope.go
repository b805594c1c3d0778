package entities

// Scope is the caller's tenancy context, resolved once per operation.
//
// Owners resolve through workshop ownership, managers through their active
// binding. Workshop is nil when no workshop resolves.
type Scope struct {
	User     User
	Workshop *Workshop
	Binding  *ManagerBinding
}

func (s Scope) Role() Role {
	return s.User.Role
}

func (s Scope) UserID() string {
	return s.User.ID
}

func (s Scope) HasWorkshop() bool {
	return s.Workshop != nil && s.Workshop.ID != ""
}

func (s Scope) WorkshopID() string {
	if !s.HasWorkshop() {
		return ""
	}
	return s.Workshop.ID
}

// CanSeeJob applies the read rule for a single job: managers see what they
// authored, owners see their workshop's jobs.
func (s Scope) CanSeeJob(j Job) bool {
	switch s.Role() {
	case RoleManager:
		return j.ManagerID == s.UserID()
	case RoleOwner:
		return s.HasWorkshop() && j.WorkshopID == s.WorkshopID()
	}
	return false
}
