// Package entities contains core business entities.
package entities

import "time"

// ProjectStats is the raw grouped aggregation row for one project.
type ProjectStats struct {
	ProjectID       int64
	ProjectName     string
	ProjectStatus   ProjectStatus
	TotalPoints     float64
	CompletedPoints float64
	TotalTask       int64
	TaskCompleted   int64
}

// ProjectProgress is one entry of the recent-projects dashboard section.
type ProjectProgress struct {
	ProjectID     int64  `json:"project_id"`
	ProjectName   string `json:"project_name"`
	TotalTask     int64  `json:"total_task"`
	TaskCompleted int64  `json:"task_completed"`
	Percentage    int    `json:"project_completion_percentage"`
}

// RecentIssue is one entry of the recent-issues dashboard section.
type RecentIssue struct {
	TaskID      int64  `json:"task_id"`
	TaskName    string `json:"task_name"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assigned_to"`
	HoursAgo    int64  `json:"hours_ago"`
}

// ManagerCards holds the four independent manager counters.
type ManagerCards struct {
	MyProjects    int64 `json:"my_projects"`
	ActiveIssues  int64 `json:"active_issues"`
	TeamMembers   int64 `json:"team_members"`
	ActiveSprints int64 `json:"active_sprints"`
}

// ManagerDashboard is the assembled manager dashboard payload.
type ManagerDashboard struct {
	Cards          ManagerCards      `json:"cards"`
	RecentProjects []ProjectProgress `json:"recent_projects"`
	RecentIssues   []RecentIssue     `json:"recent_issues"`
}

// EmployeeDashboard is the assembled employee dashboard payload.
type EmployeeDashboard struct {
	CriticalIssue int64 `json:"critical_issue"`
	ActiveIssue   int64 `json:"active_issue"`
	PendingIssue  int64 `json:"pending_issue"`
	TotalProject  int64 `json:"total_project"`
	UrgentIssue   int64 `json:"urgent_issue"`
}

// CompletionPercentage computes the displayed completion for a project.
// Zero when no points are in play; floored; held at 99 until the project
// itself is marked completed so the page never shows a premature 100%.
func CompletionPercentage(completedPoints, totalPoints float64, status ProjectStatus) int {
	if totalPoints <= 0 {
		return 0
	}
	pct := int(completedPoints / totalPoints * 100)
	if status != ProjectCompleted && pct > 99 {
		pct = 99
	}
	return pct
}

// HoursAgo returns full hours elapsed between updatedAt and now.
// Zero when updatedAt is unset or in the future.
func HoursAgo(now time.Time, updatedAt *time.Time) int64 {
	if updatedAt == nil {
		return 0
	}
	secs := int64(now.Sub(*updatedAt).Seconds())
	if secs <= 0 {
		return 0
	}
	return secs / 3600
}
