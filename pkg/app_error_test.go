package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected AppError to unwrap cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	body := simple.ToHTTPError()
	if body.Code != "JOB_NOT_FOUND" || body.Message != "Job not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if simple.Error() != "JOB_NOT_FOUND: Job not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
