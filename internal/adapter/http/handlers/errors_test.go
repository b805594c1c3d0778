package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"workshop_jobs/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{usecase.ErrMissingFields, "MISSING_FIELDS", http.StatusBadRequest},
		{usecase.ErrInviteCodeRequired, "INVITE_CODE_REQUIRED", http.StatusBadRequest},
		{usecase.ErrStatusTransition, "INVALID_STATUS_TRANSITION", http.StatusBadRequest},
		{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{usecase.ErrSessionExpired, "SESSION_EXPIRED", http.StatusUnauthorized},
		{usecase.ErrOwnerOnly, "OWNER_ONLY", http.StatusForbidden},
		{usecase.ErrAccessDenied, "ACCESS_DENIED", http.StatusForbidden},
		{usecase.ErrEmailAlreadyRegistered, "EMAIL_ALREADY_REGISTERED", http.StatusConflict},
		{usecase.ErrJobNotFound, "JOB_NOT_FOUND", http.StatusNotFound},
		{fmt.Errorf("lookup: %w", usecase.ErrPaymentNotFound), "PAYMENT_NOT_FOUND", http.StatusNotFound},
		{fmt.Errorf("%w: odd", usecase.ErrConflict), "CONFLICT", http.StatusConflict},
		{errors.New("dynamodb timeout"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			appErr := mapError(tc.err)
			if appErr.Code != tc.code || appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %s/%d, got %s/%d", tc.code, tc.status, appErr.Code, appErr.HTTPStatus)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatalf("expected AppError to wrap the cause")
			}
		})
	}
}

func TestMapError_InvalidAmountWording(t *testing.T) {
	appErr := mapError(usecase.ErrInvalidAmount)
	if appErr.Code != "INVALID_AMOUNT" || appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected mapping %s/%d", appErr.Code, appErr.HTTPStatus)
	}
	if appErr.Message != "Invalid amount" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}
