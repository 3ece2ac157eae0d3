package handlers_fiber

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
)

type createProjectRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// PostCreateProject creates a project owned by the authenticated user.
func (h *Handler) PostCreateProject(c *fiber.Ctx) error {
	var body createProjectRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse create project body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	project, err := h.uc.CreateProject(c.Context(), entities.Project{
		Name:        body.Name,
		Description: body.Description,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
	}, middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return created(c, "Project created successfully", fiber.Map{"project": project})
}

// GetProjects lists projects visible to the authenticated user.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.uc.ProjectsForUser(c.Context(), middleware.UserID(c))
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err.Error())
		return writeError(c, err)
	}
	return ok(c, "Projects retrieved successfully", fiber.Map{"projects": projects})
}

// GetProject returns one project.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	projectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	project, err := h.uc.Project(c.Context(), projectID)
	if err != nil {
		h.log.Errorw("failed to get project", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return ok(c, "Project retrieved successfully", fiber.Map{"project": project})
}

type updateProjectStatusRequest struct {
	Status entities.ProjectStatus `json:"status"`
}

// PatchProjectStatus moves a project to a new lifecycle state.
func (h *Handler) PatchProjectStatus(c *fiber.Ctx) error {
	projectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var body updateProjectStatusRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse project status body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	project, err := h.uc.UpdateProjectStatus(c.Context(), projectID, body.Status)
	if err != nil {
		h.log.Errorw("failed to update project status", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return ok(c, "Project status updated successfully", fiber.Map{"project": project})
}

type addMemberRequest struct {
	UserID int64 `json:"user_id"`
}

// PostAddProjectMember adds a user to a project.
func (h *Handler) PostAddProjectMember(c *fiber.Ctx) error {
	projectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var body addMemberRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse add member body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	if err := h.uc.AddProjectMember(c.Context(), projectID, body.UserID); err != nil {
		h.log.Errorw("failed to add project member", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return created(c, "Member added successfully", nil)
}

type createSprintRequest struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// PostCreateSprint creates a sprint inside a project.
func (h *Handler) PostCreateSprint(c *fiber.Ctx) error {
	projectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var body createSprintRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse create sprint body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	sprint, err := h.uc.CreateSprint(c.Context(), entities.Sprint{
		Name:      body.Name,
		ProjectID: projectID,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		h.log.Errorw("failed to create sprint", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return created(c, "Sprint created successfully", fiber.Map{"sprint": sprint})
}

// GetProjectSprints lists sprints of a project.
func (h *Handler) GetProjectSprints(c *fiber.Ctx) error {
	projectID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	sprints, err := h.uc.SprintsByProject(c.Context(), projectID)
	if err != nil {
		h.log.Errorw("failed to list sprints", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return ok(c, "Sprints retrieved successfully", fiber.Map{"sprints": sprints})
}
