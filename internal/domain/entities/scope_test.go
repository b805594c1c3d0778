package entities

import "testing"

func TestScope_CanSeeJob(t *testing.T) {
	job := Job{ID: "j-1", WorkshopID: "w-1", ManagerID: "m-1"}

	owner := Scope{User: User{ID: "o-1", Role: RoleOwner}, Workshop: &Workshop{ID: "w-1"}}
	if !owner.CanSeeJob(job) {
		t.Fatalf("expected owner to see own workshop job")
	}

	otherOwner := Scope{User: User{ID: "o-2", Role: RoleOwner}, Workshop: &Workshop{ID: "w-2"}}
	if otherOwner.CanSeeJob(job) {
		t.Fatalf("expected foreign owner to be denied")
	}

	noWorkshop := Scope{User: User{ID: "o-3", Role: RoleOwner}}
	if noWorkshop.CanSeeJob(job) || noWorkshop.WorkshopID() != "" {
		t.Fatalf("expected owner without workshop to be denied")
	}

	author := Scope{User: User{ID: "m-1", Role: RoleManager}}
	if !author.CanSeeJob(job) {
		t.Fatalf("expected author to see job even without an active binding")
	}

	peer := Scope{User: User{ID: "m-2", Role: RoleManager}, Workshop: &Workshop{ID: "w-1"}}
	if peer.CanSeeJob(job) {
		t.Fatalf("expected peer manager to be denied")
	}

	unknown := Scope{User: User{ID: "x", Role: Role("admin")}, Workshop: &Workshop{ID: "w-1"}}
	if unknown.CanSeeJob(job) {
		t.Fatalf("expected unknown role to be denied")
	}
}
