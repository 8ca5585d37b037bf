package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("bad"), fiber.StatusForbidden},
		{"forbidden", NewForbiddenError("no"), fiber.StatusForbidden},
		{"unauthorized", NewUnauthorizedError("who"), fiber.StatusUnauthorized},
		{"not found", NewNotFoundError("Comment", 1), fiber.StatusNotFound},
		{"partial", NewPartialFailureError("delete comment", errors.New("x")), fiber.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("load: %w", NewNotFoundError("Post", 2)), fiber.StatusNotFound},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("db down")
	err := NewPartialFailureError("add comment", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "add comment partially applied: db down", err.Error())
	assert.True(t, IsNotFound(NewNotFoundError("Comment", 3)))
	assert.False(t, IsNotFound(cause))
}

func TestNotificationType_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, NotificationLike.Valid())
	assert.True(t, NotificationReply.Valid())
	assert.False(t, NotificationType("mention").Valid())
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/internal", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, NewInternalError(errors.New("secret dsn")))
	})
	app.Get("/partial", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusInternalServerError, NewPartialFailureError("delete comment", errors.New("step failed")))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/internal", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, CodeInternal, out.Code)
	assert.Empty(t, out.Details)

	resp, err = app.Test(httptest.NewRequest("GET", "/partial", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, CodePartialFailure, out.Code)
	assert.Equal(t, "step failed", out.Details)
}
