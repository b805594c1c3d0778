package interfaces

import "errors"

// Store-level outcomes the use cases branch on. Reads report an absent
// record as a zero value with an empty ID.
var (
	// ErrNotFound is returned when a write targets a record that does not
	// exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique key (email, invite code,
	// workshop owner) is already taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInviteUnavailable is returned when an invite code stopped being
	// redeemable between the read and the registration write.
	ErrInviteUnavailable = errors.New("invite code no longer redeemable")
	// ErrUnboundedQuery is returned when a listing has no key to query by.
	ErrUnboundedQuery = errors.New("unbounded query")
)
