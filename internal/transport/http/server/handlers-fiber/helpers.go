package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/gofiber/fiber/v2"
)

// APIResponse is the common response envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *fiber.Ctx, message string, data any) error {
	return c.Status(http.StatusOK).JSON(APIResponse{Success: true, Message: message, Data: data})
}

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(http.StatusCreated).JSON(APIResponse{Success: true, Message: message, Data: data})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(APIResponse{Success: false, Message: message})
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrWeakPassword):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidToken), errors.Is(err, entities.ErrTokenExpired):
		status = http.StatusBadRequest
		msg = "invalid or expired token"
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = "invalid email or password"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrSprintNotFound),
		errors.Is(err, entities.ErrIssueNotFound):
		status = http.StatusNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
		msg = "email already registered"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		msg = "user is already a project member"
	}

	return c.Status(status).JSON(APIResponse{Success: false, Message: msg})
}
