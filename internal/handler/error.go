package handler

import (
	"net/http"

	"github.com/dukerupert/wardrobe/internal/domain"
	"github.com/dukerupert/wardrobe/internal/envelope"
	"github.com/dukerupert/wardrobe/internal/middleware"
	"github.com/dukerupert/wardrobe/internal/telemetry"
)

// validationMessage is the envelope message of a field validation failure.
const validationMessage = "error occurred"

// ErrorResponse writes err as an envelope. Internal errors are logged and
// sent to Sentry; clients only see a generic message for them.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidationError(err) {
		ValidationErrorResponse(w, r, err)
		return
	}

	code := domain.ErrorCode(err)
	status := envelope.StatusFor(code)
	logError(r, err, code, status)

	if status >= http.StatusInternalServerError {
		telemetry.CaptureErrorFromContext(r.Context(), err, map[string]any{
			"op":         domain.ErrorOp(err),
			"request_id": middleware.GetRequestID(r.Context()),
		})
	}

	Respond(w, r, status, domain.ErrorMessage(err), nil)
}

// ValidationErrorResponse writes the field failures of err under data.errors.
// Anything other than a ValidationError falls back to ErrorResponse.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	fields := domain.GetValidationFields(err)
	if fields == nil {
		ErrorResponse(w, r, err)
		return
	}

	logError(r, err, domain.EINVALID, http.StatusBadRequest)
	Respond(w, r, http.StatusBadRequest, validationMessage, map[string]any{
		"errors": fields,
	})
}

// NotFoundResponse answers 404 with message.
func NotFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	ErrorResponse(w, r, &domain.Error{Code: domain.ENOTFOUND, Message: message})
}

// BadRequestResponse answers 400 with message.
func BadRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	ErrorResponse(w, r, &domain.Error{Code: domain.EINVALID, Message: message})
}

// UnauthorizedResponse answers 401.
func UnauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.ErrAuthenticationRequired)
}

// ForbiddenResponse answers a failed permission check.
func ForbiddenResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.ErrPermissionDenied)
}

// InternalErrorResponse answers 500 for an unexpected failure.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ErrorResponse(w, r, domain.Internal(err, "", "unexpected error"))
}

func logError(r *http.Request, err error, code string, status int) {
	logger := middleware.GetLogger(r.Context())

	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}
	if reqID := middleware.GetRequestID(r.Context()); reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request failed", attrs...)
	}
}
