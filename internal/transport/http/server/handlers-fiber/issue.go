package handlers_fiber

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/internal/transport/http/middleware"
)

type createIssueRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	StoryPoint  int                `json:"story_point"`
	Priority    *entities.Priority `json:"priority"`
	Type        entities.IssueType `json:"type"`
	SprintID    *int64             `json:"sprint_id"`
	ProjectID   *int64             `json:"project_id"`
	AssignedTo  *int64             `json:"assigned_to"`
}

// PostCreateIssue creates an issue bound to a sprint or a project.
func (h *Handler) PostCreateIssue(c *fiber.Ctx) error {
	var body createIssueRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse create issue body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	assignedBy := middleware.UserID(c)
	issue, err := h.uc.CreateIssue(c.Context(), entities.Issue{
		Name:        body.Name,
		Description: body.Description,
		StoryPoint:  body.StoryPoint,
		Priority:    body.Priority,
		Type:        body.Type,
		SprintID:    body.SprintID,
		ProjectID:   body.ProjectID,
		AssignedTo:  body.AssignedTo,
		AssignedBy:  &assignedBy,
	})
	if err != nil {
		h.log.Errorw("failed to create issue", "error", err.Error())
		return writeError(c, err)
	}
	return created(c, "Issue created successfully", fiber.Map{"issue": issue})
}

// PatchIssue applies a partial update to an issue.
func (h *Handler) PatchIssue(c *fiber.Ctx) error {
	issueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	var body entities.IssueUpdate
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse update issue body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	issue, err := h.uc.UpdateIssue(c.Context(), issueID, body)
	if err != nil {
		h.log.Errorw("failed to update issue", "error", err.Error(), "issue_id", issueID)
		return writeError(c, err)
	}
	return ok(c, "Issue updated successfully", fiber.Map{"issue": issue})
}

// GetSprintIssues lists issues of a sprint.
func (h *Handler) GetSprintIssues(c *fiber.Ctx) error {
	sprintID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid sprint id")
	}

	issues, err := h.uc.IssuesBySprint(c.Context(), sprintID)
	if err != nil {
		h.log.Errorw("failed to list sprint issues", "error", err.Error(), "sprint_id", sprintID)
		return writeError(c, err)
	}
	return ok(c, "Issues retrieved successfully", fiber.Map{"issues": issues})
}

type addWorkLogRequest struct {
	Date        time.Time `json:"date"`
	HoursWorked float64   `json:"hours_worked"`
	Description string    `json:"description"`
}

// PostAddWorkLog records hours spent on an issue.
func (h *Handler) PostAddWorkLog(c *fiber.Ctx) error {
	issueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	var body addWorkLogRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse work log body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	log, err := h.uc.AddWorkLog(c.Context(), entities.WorkLog{
		IssueID:     issueID,
		Date:        body.Date,
		HoursWorked: body.HoursWorked,
		Description: body.Description,
	})
	if err != nil {
		h.log.Errorw("failed to add work log", "error", err.Error(), "issue_id", issueID)
		return writeError(c, err)
	}
	return created(c, "Work log added successfully", fiber.Map{"work_log": log})
}

// GetWorkLogs lists work logs of an issue.
func (h *Handler) GetWorkLogs(c *fiber.Ctx) error {
	issueID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid issue id")
	}

	logs, err := h.uc.WorkLogs(c.Context(), issueID)
	if err != nil {
		h.log.Errorw("failed to list work logs", "error", err.Error(), "issue_id", issueID)
		return writeError(c, err)
	}
	return ok(c, "Work logs retrieved successfully", fiber.Map{"work_logs": logs})
}
