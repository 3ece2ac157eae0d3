package handlers_fiber

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostLogin verifies credentials and returns an access token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse login body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	token, user, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("login failed", "error", err.Error())
		return writeError(c, err)
	}

	return ok(c, "Login successful", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

type createUserRequest struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  entities.Role `json:"role"`
}

// PostCreateUser invites a new account and triggers email dispatch.
// The raw token in the response mirrors the original API and is meant for
// non-production setups without a mail worker.
func (h *Handler) PostCreateUser(c *fiber.Ctx) error {
	var body createUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse create user body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	inv, err := h.uc.InviteUser(c.Context(), middleware.Role(c), body.Name, body.Email, body.Role)
	if err != nil {
		h.log.Errorw("failed to invite user", "error", err.Error())
		return writeError(c, err)
	}

	return created(c, "User "+inv.Email+" invited successfully", fiber.Map{
		"user_id":      inv.UserID,
		"invite_token": inv.RawToken,
	})
}

type verifyTokenRequest struct {
	RawToken string `json:"raw_token"`
}

// PostVerifyToken checks an invite token without consuming it.
func (h *Handler) PostVerifyToken(c *fiber.Ctx) error {
	var body verifyTokenRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse verify token body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	userID, err := h.uc.VerifyToken(c.Context(), body.RawToken)
	if err != nil {
		h.log.Errorw("token verification failed", "error", err.Error())
		return writeError(c, err)
	}

	return ok(c, "Token is valid", fiber.Map{"user_id": userID})
}

type updatePasswordRequest struct {
	RawToken    string `json:"raw_token"`
	NewPassword string `json:"new_password"`
}

// PostUpdatePassword consumes an invite token and activates the account.
func (h *Handler) PostUpdatePassword(c *fiber.Ctx) error {
	var body updatePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse update password body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	userID, err := h.uc.UpdatePassword(c.Context(), body.RawToken, body.NewPassword)
	if err != nil {
		h.log.Errorw("password update failed", "error", err.Error())
		return writeError(c, err)
	}

	return ok(c, "Password updated successfully", fiber.Map{"user_id": userID})
}

// GetUsers lists all accounts.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return ok(c, "Users retrieved successfully", fiber.Map{"users": users})
}

// GetUser returns one account.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	user, err := h.uc.User(c.Context(), userID)
	if err != nil {
		h.log.Errorw("failed to get user", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}
	return ok(c, "User retrieved successfully", fiber.Map{"user": user})
}

// DeleteUser removes an account.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.uc.DeleteUser(c.Context(), userID); err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error(), "user_id", userID)
		return writeError(c, err)
	}
	return ok(c, "User deleted successfully", nil)
}
