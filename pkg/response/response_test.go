package response

import (
	"errors"
	"net/http"
	"testing"

	"poll-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"auth required", models.NewAuthRequiredError("Not authenticated"), http.StatusUnauthorized},
		{"not found", models.NewNotFoundError("Poll not found."), http.StatusNotFound},
		{"backend", models.NewBackendError("Failed to fetch polls."), http.StatusInternalServerError},
		{"untagged", errors.New("pq: boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestMessageOfHidesUntaggedCauses(t *testing.T) {
	assert.Equal(t, "Poll not found.", MessageOf(models.NewNotFoundError("Poll not found.")))
	assert.Equal(t, "Something went wrong.", MessageOf(errors.New("pq: relation polls does not exist")))
}
