package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
)

// RegisterRoutes attaches all API routes to the app.
func RegisterRoutes(app *fiber.App, h *Handler, jwtSecret string) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api/v1")

	// Public: login and the invite redemption flow.
	api.Post("/auth/login", h.PostLogin)
	api.Post("/users/verify-token", h.PostVerifyToken)
	api.Post("/users/update-password", h.PostUpdatePassword)

	authed := api.Group("", middleware.Authenticate(jwtSecret))

	users := authed.Group("/users")
	users.Post("", middleware.RequireRole(entities.RoleAdmin), h.PostCreateUser)
	users.Get("", middleware.RequireRole(entities.RoleManager), h.GetUsers)
	users.Get("/:id", h.GetUser)
	users.Delete("/:id", middleware.RequireRole(entities.RoleAdmin), h.DeleteUser)

	projects := authed.Group("/projects")
	projects.Post("", middleware.RequireRole(entities.RoleManager), h.PostCreateProject)
	projects.Get("", h.GetProjects)
	projects.Get("/:id", h.GetProject)
	projects.Patch("/:id/status", middleware.RequireRole(entities.RoleManager), h.PatchProjectStatus)
	projects.Post("/:id/members", middleware.RequireRole(entities.RoleManager), h.PostAddProjectMember)
	projects.Post("/:id/sprints", middleware.RequireRole(entities.RoleManager), h.PostCreateSprint)
	projects.Get("/:id/sprints", h.GetProjectSprints)

	sprints := authed.Group("/sprints")
	sprints.Get("/:id/issues", h.GetSprintIssues)

	issues := authed.Group("/issues")
	issues.Post("", h.PostCreateIssue)
	issues.Patch("/:id", h.PatchIssue)
	issues.Post("/:id/worklogs", h.PostAddWorkLog)
	issues.Get("/:id/worklogs", h.GetWorkLogs)

	dashboard := authed.Group("/dashboard")
	dashboard.Get("/manager", middleware.RequireRole(entities.RoleManager), h.GetManagerDashboard)
	dashboard.Get("/employee", h.GetEmployeeDashboard)
}
