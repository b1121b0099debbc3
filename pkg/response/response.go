// Package response maps tagged service errors to HTTP statuses and
// user-facing messages. Raw backend error text never reaches a response.
package response

import (
	"errors"
	"net/http"

	"poll-service/internal/ports/models"
)

const msgUnexpected = "Something went wrong."

// StatusOf maps a service error to its HTTP status code.
func StatusOf(err error) int {
	var e *models.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case models.KindValidation:
			return http.StatusBadRequest
		case models.KindAuthRequired:
			return http.StatusUnauthorized
		case models.KindNotFound:
			return http.StatusNotFound
		case models.KindBackend:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// MessageOf returns the error's fixed user-facing message, or a generic
// fallback for anything that is not a tagged service error.
func MessageOf(err error) string {
	var e *models.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return msgUnexpected
}
