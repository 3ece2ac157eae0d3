// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"github.com/Pranshu-project/zyro/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	InviteUser(ctx context.Context, name, email string, role entities.Role, tokenHash string, expiresAt time.Time) (*entities.User, bool, error)
	UserCredentials(ctx context.Context, email string) (*entities.User, string, error)
	GetUser(ctx context.Context, userID int64) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// InviteInterface exposes invite-token operations.
type InviteInterface interface {
	GetInviteToken(ctx context.Context, tokenHash string) (*entities.InviteToken, error)
	ActivateUser(ctx context.Context, tokenID, userID int64, passwordHash string) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project, creatorID int64) (*entities.Project, error)
	GetProject(ctx context.Context, projectID int64) (*entities.Project, error)
	ListProjectsForUser(ctx context.Context, userID int64) ([]entities.Project, error)
	UpdateProjectStatus(ctx context.Context, projectID int64, status entities.ProjectStatus) (*entities.Project, error)
	AddProjectMember(ctx context.Context, projectID, userID int64) error
}

// SprintInterface exposes sprint operations.
type SprintInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error)
	ListSprintsByProject(ctx context.Context, projectID int64) ([]entities.Sprint, error)
}

// IssueInterface exposes issue and work-log operations.
type IssueInterface interface {
	CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error)
	UpdateIssue(ctx context.Context, issueID int64, upd entities.IssueUpdate) (*entities.Issue, error)
	ListIssuesBySprint(ctx context.Context, sprintID int64) ([]entities.Issue, error)
	AddWorkLog(ctx context.Context, log entities.WorkLog) (*entities.WorkLog, error)
	ListWorkLogs(ctx context.Context, issueID int64) ([]entities.WorkLog, error)
}

// DashboardInterface exposes the read-only aggregation queries.
type DashboardInterface interface {
	RecentProjects(ctx context.Context, userID int64, limit int) ([]entities.ProjectProgress, error)
	RecentIssues(ctx context.Context, userID int64, limit int) ([]entities.RecentIssue, error)
	ManagerCards(ctx context.Context, userID int64) (entities.ManagerCards, error)
	EmployeeDashboard(ctx context.Context, userID int64) (entities.EmployeeDashboard, error)
}

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	InviteInterface
	ProjectInterface
	SprintInterface
	IssueInterface
	DashboardInterface
}
