package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	type payload struct {
		Rating int `validate:"min=1,max=5"`
	}
	validationErr := validator.New().Struct(payload{Rating: 9})

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"no error", nil, http.StatusOK},
		{"conflict", ErrConflict, http.StatusBadRequest},
		{"wrapped conflict", fmt.Errorf("create rating: %w", ErrConflict), http.StatusBadRequest},
		{"not found", fmt.Errorf("update rating: %w", ErrNotFound), http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"validation", validationErr, http.StatusBadRequest},
		{"invalid payload", ErrInvalidPayload, http.StatusBadRequest},
		{"hub stopped", fmt.Errorf("stats: %w", ErrHubStopped), http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
