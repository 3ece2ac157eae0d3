package usecase

import (
	"context"

	"github.com/Pranshu-project/zyro/internal/entities"
)

// UserUsecaseInterface abstracts account and invite operations for delivery layer.
type UserUsecaseInterface interface {
	InviteUser(ctx context.Context, actor entities.Role, name, email string, role entities.Role) (*entities.Invitation, error)
	VerifyToken(ctx context.Context, rawToken string) (int64, error)
	UpdatePassword(ctx context.Context, rawToken, newPassword string) (int64, error)
	Login(ctx context.Context, email, password string) (string, *entities.User, error)
	User(ctx context.Context, userID int64) (*entities.User, error)
	Users(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, project entities.Project, creatorID int64) (*entities.Project, error)
	Project(ctx context.Context, projectID int64) (*entities.Project, error)
	ProjectsForUser(ctx context.Context, userID int64) ([]entities.Project, error)
	UpdateProjectStatus(ctx context.Context, projectID int64, status entities.ProjectStatus) (*entities.Project, error)
	AddProjectMember(ctx context.Context, projectID, userID int64) error
}

// SprintUsecaseInterface abstracts sprint operations.
type SprintUsecaseInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error)
	SprintsByProject(ctx context.Context, projectID int64) ([]entities.Sprint, error)
}

// IssueUsecaseInterface abstracts issue and work-log operations.
type IssueUsecaseInterface interface {
	CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error)
	UpdateIssue(ctx context.Context, issueID int64, upd entities.IssueUpdate) (*entities.Issue, error)
	IssuesBySprint(ctx context.Context, sprintID int64) ([]entities.Issue, error)
	AddWorkLog(ctx context.Context, log entities.WorkLog) (*entities.WorkLog, error)
	WorkLogs(ctx context.Context, issueID int64) ([]entities.WorkLog, error)
}

// DashboardUsecaseInterface abstracts dashboard assembly.
type DashboardUsecaseInterface interface {
	ManagerDashboard(ctx context.Context, userID int64) (entities.ManagerDashboard, error)
	EmployeeDashboard(ctx context.Context, userID int64) (entities.EmployeeDashboard, error)
}

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	ProjectUsecaseInterface
	SprintUsecaseInterface
	IssueUsecaseInterface
	DashboardUsecaseInterface
}
