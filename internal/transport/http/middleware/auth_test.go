package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/Pranshu-project/zyro/internal/auth"
	"github.com/Pranshu-project/zyro/internal/entities"
)

const testSecret = "test-secret"

func protectedApp(required entities.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{Authenticate(testSecret)}
	if required != "" {
		handlers = append(handlers, RequireRole(required))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": UserID(c), "role": Role(c)})
	})
	app.Get("/", handlers...)
	return app
}

func TestAuthenticateMissingHeader(t *testing.T) {
	app := protectedApp("")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticateBadToken(t *testing.T) {
	app := protectedApp("")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	app := protectedApp("")

	token, err := auth.GenerateJWT(7, entities.RoleEmployee, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleBlocksLowerRole(t *testing.T) {
	app := protectedApp(entities.RoleManager)

	token, err := auth.GenerateJWT(7, entities.RoleEmployee, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAdminEverywhere(t *testing.T) {
	app := protectedApp(entities.RoleManager)

	token, err := auth.GenerateJWT(1, entities.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}
