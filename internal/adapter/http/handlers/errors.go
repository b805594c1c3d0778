package handlers

import (
	"errors"
	"net/http"
	"workshop_jobs/internal/usecase"
	"workshop_jobs/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type errorCode struct {
	err     error
	code    string
	message string
	status  int
}

// Specific errors are matched first, then the category they wrap.
var errorCodes = []errorCode{
	{usecase.ErrMissingFields, "MISSING_FIELDS", "Missing required fields", http.StatusBadRequest},
	{usecase.ErrInvalidRole, "INVALID_ROLE", "Invalid role", http.StatusBadRequest},
	{usecase.ErrInviteCodeRequired, "INVITE_CODE_REQUIRED", "Invite code required for managers", http.StatusBadRequest},
	{usecase.ErrInvalidInviteCode, "INVALID_INVITE_CODE", "Invalid or expired invite code", http.StatusBadRequest},
	{usecase.ErrInvalidStatus, "INVALID_STATUS", "Invalid job status", http.StatusBadRequest},
	{usecase.ErrStatusTransition, "INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusBadRequest},
	{usecase.ErrInvalidAmount, "INVALID_AMOUNT", "Invalid amount", http.StatusBadRequest},
	{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized},
	{usecase.ErrSessionExpired, "SESSION_EXPIRED", "Session expired", http.StatusUnauthorized},
	{usecase.ErrInvalidSession, "INVALID_SESSION", "Invalid session", http.StatusUnauthorized},
	{usecase.ErrOwnerOnly, "OWNER_ONLY", "Only owners can perform this action", http.StatusForbidden},
	{usecase.ErrManagerOnly, "MANAGER_ONLY", "Only managers can perform this action", http.StatusForbidden},
	{usecase.ErrAccessDenied, "ACCESS_DENIED", "Access denied", http.StatusForbidden},
	{usecase.ErrEmailAlreadyRegistered, "EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict},
	{usecase.ErrWorkshopAlreadyExists, "WORKSHOP_ALREADY_EXISTS", "Owner already has a workshop", http.StatusConflict},
	{usecase.ErrWorkshopNotFound, "WORKSHOP_NOT_FOUND", "Workshop not found", http.StatusNotFound},
	{usecase.ErrManagerRecordNotFound, "MANAGER_RECORD_NOT_FOUND", "Manager record not found", http.StatusNotFound},
	{usecase.ErrManagerNotFound, "MANAGER_NOT_FOUND", "Manager not found", http.StatusNotFound},
	{usecase.ErrInviteCodeNotFound, "INVITE_CODE_NOT_FOUND", "Invite code not found", http.StatusNotFound},
	{usecase.ErrJobNotFound, "JOB_NOT_FOUND", "Job not found", http.StatusNotFound},
	{usecase.ErrPaymentNotFound, "PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound},
	{usecase.ErrSettlementNotFound, "SETTLEMENT_NOT_FOUND", "Settlement not found", http.StatusNotFound},

	{usecase.ErrInvalidInput, "INVALID_REQUEST", "Invalid request", http.StatusBadRequest},
	{usecase.ErrUnauthenticated, "UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized},
	{usecase.ErrForbidden, "FORBIDDEN", "Forbidden", http.StatusForbidden},
	{usecase.ErrNotFound, "NOT_FOUND", "Not found", http.StatusNotFound},
	{usecase.ErrConflict, "CONFLICT", "Conflict", http.StatusConflict},
}

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingBearer  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

func mapError(err error) *pkg.AppError {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return pkg.NewDomainError(ec.code, ec.message, err, ec.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// writeError aborts the request with the mapped error body. Server errors
// are logged with their cause; client errors are not.
func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).WithError(err).Error("[http][handler] request failed")
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidRequest(c *gin.Context) {
	c.AbortWithStatusJSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}
