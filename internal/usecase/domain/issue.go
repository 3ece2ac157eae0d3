// Package domain contains application services orchestrating domain logic by issue.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pranshu-project/zyro/internal/entities"
)

// CreateSprint creates a sprint in a project.
func (u *Usecase) CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprint.Name == "" || sprint.ProjectID <= 0 {
		return nil, fmt.Errorf("%w: sprint name and project id are required", entities.ErrInvalidArgument)
	}
	if sprint.Status == "" {
		sprint.Status = entities.SprintTodo
	}
	if sprint.SprintCode == "" {
		sprint.SprintCode = uuid.NewString()
	}
	return u.repo.CreateSprint(ctx, sprint)
}

// SprintsByProject lists the sprints of a project.
func (u *Usecase) SprintsByProject(ctx context.Context, projectID int64) ([]entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListSprintsByProject(ctx, projectID)
}

// CreateIssue creates an issue inside a sprint or directly under a project.
func (u *Usecase) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if issue.Name == "" {
		return nil, fmt.Errorf("%w: issue name is required", entities.ErrInvalidArgument)
	}
	if issue.SprintID == nil && issue.ProjectID == nil {
		return nil, fmt.Errorf("%w: issue needs a sprint or a project", entities.ErrInvalidArgument)
	}
	if issue.Status == "" {
		issue.Status = entities.IssueTodo
	}
	if issue.Type == "" {
		issue.Type = entities.TypeOther
	}
	return u.repo.CreateIssue(ctx, issue)
}

// UpdateIssue applies a partial update to an issue.
func (u *Usecase) UpdateIssue(ctx context.Context, issueID int64, upd entities.IssueUpdate) (*entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if issueID <= 0 {
		return nil, fmt.Errorf("%w: issue id is required", entities.ErrInvalidArgument)
	}

	updated, err := u.repo.UpdateIssue(ctx, issueID, upd)
	if err != nil {
		return nil, err
	}

	// Issue counts and recency feed both dashboards, drop the pages of the
	// users the row touches.
	if updated.AssignedTo != nil {
		u.cache.Invalidate(ctx, *updated.AssignedTo)
	}
	if updated.AssignedBy != nil {
		u.cache.Invalidate(ctx, *updated.AssignedBy)
	}
	return updated, nil
}

// IssuesBySprint lists the issues of a sprint.
func (u *Usecase) IssuesBySprint(ctx context.Context, sprintID int64) ([]entities.Issue, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID <= 0 {
		return nil, fmt.Errorf("%w: sprint id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListIssuesBySprint(ctx, sprintID)
}

// AddWorkLog records hours worked against an issue.
func (u *Usecase) AddWorkLog(ctx context.Context, log entities.WorkLog) (*entities.WorkLog, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if log.IssueID <= 0 {
		return nil, fmt.Errorf("%w: issue id is required", entities.ErrInvalidArgument)
	}
	if log.HoursWorked < 0 {
		return nil, fmt.Errorf("%w: hours worked cannot be negative", entities.ErrInvalidArgument)
	}
	if log.LogCode == "" {
		log.LogCode = uuid.NewString()
	}
	if log.Date.IsZero() {
		log.Date = time.Now()
	}
	return u.repo.AddWorkLog(ctx, log)
}

// WorkLogs lists the work logs of an issue.
func (u *Usecase) WorkLogs(ctx context.Context, issueID int64) ([]entities.WorkLog, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if issueID <= 0 {
		return nil, fmt.Errorf("%w: issue id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListWorkLogs(ctx, issueID)
}
