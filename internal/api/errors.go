package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/norsklab/norsk-api/internal/api/shared"
	"github.com/norsklab/norsk-api/internal/content"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/domain/quiz"
	"github.com/norsklab/norsk-api/internal/service/auth"
	"github.com/norsklab/norsk-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingClaims),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, content.ErrNoItems),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Transitions requested out of order.
	case errors.Is(err, quiz.ErrAnswerRequired),
		errors.Is(err, quiz.ErrBatchNotComplete),
		errors.Is(err, quiz.ErrNotInBatch):
		return http.StatusConflict

	case errors.Is(err, shared.ErrInvalidBody),
		errors.Is(err, quiz.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidLevel),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingClaims):
		return "Invalid token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Sign in required"

	case errors.Is(err, content.ErrNoItems):
		return "No items"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, quiz.ErrAnswerRequired):
		return "Answer the current item first"
	case errors.Is(err, quiz.ErrBatchNotComplete):
		return "Batch is not complete"
	case errors.Is(err, quiz.ErrNotInBatch):
		return "No batch in progress"
	case errors.Is(err, quiz.ErrInvalidState):
		return "Invalid session state"

	case errors.Is(err, domain.ErrInvalidLevel):
		return "Unknown level"
	case errors.Is(err, shared.ErrInvalidBody):
		return "Invalid request body"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError describes the first failed field without
// echoing the submitted value.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "required_without":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details. A non-empty fallback replaces the generic message for
// 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		msg = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
