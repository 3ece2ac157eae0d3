package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "invalid argument",
			err:     fmt.Errorf("%w: name is required", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			message: "invalid argument: name is required",
		},
		{
			name:    "weak password",
			err:     fmt.Errorf("%w: password must be at least 8 characters", entities.ErrWeakPassword),
			status:  http.StatusBadRequest,
			message: "weak password: password must be at least 8 characters",
		},
		{
			name:    "invalid token",
			err:     entities.ErrInvalidToken,
			status:  http.StatusBadRequest,
			message: "invalid or expired token",
		},
		{
			name:    "expired token",
			err:     entities.ErrTokenExpired,
			status:  http.StatusBadRequest,
			message: "invalid or expired token",
		},
		{
			name:    "bad credentials",
			err:     entities.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			message: "invalid email or password",
		},
		{
			name:    "not found",
			err:     entities.ErrProjectNotFound,
			status:  http.StatusNotFound,
			message: "resource not found",
		},
		{
			name:    "email conflict",
			err:     entities.ErrEmailExists,
			status:  http.StatusConflict,
			message: "email already registered",
		},
		{
			name:    "member conflict",
			err:     entities.ErrMemberExists,
			status:  http.StatusConflict,
			message: "user is already a project member",
		},
		{
			name:    "unknown error is opaque",
			err:     fmt.Errorf("pq: connection refused"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body APIResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.False(t, body.Success)
			require.Equal(t, tt.message, body.Message)
		})
	}
}

func TestEnvelopeSuccess(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ok(c, "done", fiber.Map{"value": 1})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.Equal(t, "done", body.Message)
}
