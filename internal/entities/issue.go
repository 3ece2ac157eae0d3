// Package entities contains core business entities.
package entities

import "time"

// IssueStatus enumerates issue lifecycle states.
type IssueStatus string

const (
	// IssueTodo marks a pending issue.
	IssueTodo IssueStatus = "todo"
	// IssueInProgress marks an issue being worked on.
	IssueInProgress IssueStatus = "in_progress"
	// IssueHold marks a blocked issue.
	IssueHold IssueStatus = "hold"
	// IssueCompleted marks a finished issue.
	IssueCompleted IssueStatus = "completed"
	// IssueCancelled marks an abandoned issue, excluded from progress math.
	IssueCancelled IssueStatus = "cancelled"
)

// Priority enumerates issue priorities.
type Priority string

const (
	// PriorityLow is the lowest priority.
	PriorityLow Priority = "low"
	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"
	// PriorityHigh is an elevated priority.
	PriorityHigh Priority = "high"
	// PriorityCritical is the highest priority.
	PriorityCritical Priority = "critical"
)

// IssueType enumerates issue kinds.
type IssueType string

const (
	// TypeBug marks a defect.
	TypeBug IssueType = "bug"
	// TypeFeature marks new functionality.
	TypeFeature IssueType = "feature"
	// TypeTask marks generic work.
	TypeTask IssueType = "task"
	// TypeOther is the default kind.
	TypeOther IssueType = "other"
)

// Issue is a domain model of a tracked work item.
type Issue struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	StoryPoint  int         `json:"story_point"`
	Status      IssueStatus `json:"status"`
	Priority    *Priority   `json:"priority,omitempty"`
	Description string      `json:"description,omitempty"`
	Type        IssueType   `json:"type"`
	SprintID    *int64      `json:"sprint_id,omitempty"`
	ProjectID   *int64      `json:"project_id,omitempty"`
	AssignedTo  *int64      `json:"assigned_to,omitempty"`
	AssignedBy  *int64      `json:"assigned_by,omitempty"`
	CreatedAt   *time.Time  `json:"created_at,omitempty"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// IssueUpdate carries the mutable issue fields; nil means unchanged.
type IssueUpdate struct {
	Name       *string      `json:"name,omitempty"`
	Status     *IssueStatus `json:"status,omitempty"`
	Priority   *Priority    `json:"priority,omitempty"`
	StoryPoint *int         `json:"story_point,omitempty"`
	AssignedTo *int64       `json:"assigned_to,omitempty"`
}

// WorkLog records hours spent on an issue.
type WorkLog struct {
	ID          int64      `json:"id"`
	IssueID     int64      `json:"issue_id"`
	LogCode     string     `json:"log_code"`
	Date        time.Time  `json:"date"`
	HoursWorked float64    `json:"hours_worked"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
