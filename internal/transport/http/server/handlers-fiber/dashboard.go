package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
)

// GetManagerDashboard returns cards, recent projects and recent issues for
// the authenticated manager. Sections that failed to load come back as
// zero-valued defaults rather than an error.
func (h *Handler) GetManagerDashboard(c *fiber.Ctx) error {
	dash, err := h.uc.ManagerDashboard(c.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to assemble manager dashboard", "error", err.Error())
		return writeError(c, err)
	}
	return ok(c, "Dashboard data retrieved successfully", dash)
}

// GetEmployeeDashboard returns the employee counters.
func (h *Handler) GetEmployeeDashboard(c *fiber.Ctx) error {
	dash, err := h.uc.EmployeeDashboard(c.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to assemble employee dashboard", "error", err.Error())
		return writeError(c, err)
	}
	return ok(c, "Dashboard data retrieved successfully", dash)
}
