package entities

import "strings"

// Role is the closed set of account roles. Every authorization check
// switches over it and treats an unknown value as no access.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

func ParseRole(v string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	return r, r.IsValid()
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
