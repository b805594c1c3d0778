package usecase

import (
	"errors"
	"fmt"
)

// Error categories. Every error a use case returns on purpose wraps exactly
// one of them; anything else is a store fault.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrMissingFields          = fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	ErrInvalidRole            = fmt.Errorf("%w: invalid role", ErrInvalidInput)
	ErrInviteCodeRequired     = fmt.Errorf("%w: invite code required for managers", ErrInvalidInput)
	ErrInvalidInviteCode      = fmt.Errorf("%w: invalid or expired invite code", ErrInvalidInput)
	ErrInvalidStatus          = fmt.Errorf("%w: invalid job status", ErrInvalidInput)
	ErrStatusTransition       = fmt.Errorf("%w: status transition not allowed", ErrInvalidInput)
	ErrInvalidAmount          = fmt.Errorf("%w: invalid amount", ErrInvalidInput)
	ErrInvalidCredentials     = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	ErrInvalidSession         = fmt.Errorf("%w: invalid session", ErrUnauthenticated)
	ErrSessionExpired         = fmt.Errorf("%w: session expired", ErrUnauthenticated)
	ErrOwnerOnly              = fmt.Errorf("%w: only owners can perform this action", ErrForbidden)
	ErrManagerOnly            = fmt.Errorf("%w: only managers can perform this action", ErrForbidden)
	ErrAccessDenied           = fmt.Errorf("%w: access denied", ErrForbidden)
	ErrEmailAlreadyRegistered = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrWorkshopAlreadyExists  = fmt.Errorf("%w: owner already has a workshop", ErrConflict)
	ErrWorkshopNotFound       = fmt.Errorf("%w: workshop not found", ErrNotFound)
	ErrManagerRecordNotFound  = fmt.Errorf("%w: manager record not found", ErrNotFound)
	ErrManagerNotFound        = fmt.Errorf("%w: manager not found", ErrNotFound)
	ErrInviteCodeNotFound     = fmt.Errorf("%w: invite code not found", ErrNotFound)
	ErrJobNotFound            = fmt.Errorf("%w: job not found", ErrNotFound)
	ErrPaymentNotFound        = fmt.Errorf("%w: payment not found", ErrNotFound)
	ErrSettlementNotFound     = fmt.Errorf("%w: settlement not found", ErrNotFound)
)
