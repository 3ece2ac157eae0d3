// Package entities contains core business entities.
package entities

import "time"

// ProjectStatus enumerates project lifecycle states.
type ProjectStatus string

const (
	// ProjectActive marks a project in progress.
	ProjectActive ProjectStatus = "active"
	// ProjectInactive marks a project not yet started.
	ProjectInactive ProjectStatus = "inactive"
	// ProjectHold marks a paused project.
	ProjectHold ProjectStatus = "hold"
	// ProjectCompleted marks a project formally closed by its manager.
	ProjectCompleted ProjectStatus = "completed"
)

// Project is a domain model of a project.
type Project struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Status      ProjectStatus `json:"status"`
	CreatedBy   *int64        `json:"created_by,omitempty"`
	Description string        `json:"description,omitempty"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// ProjectMember links a user to a project.
type ProjectMember struct {
	ID        int64 `json:"id"`
	ProjectID int64 `json:"project_id"`
	UserID    int64 `json:"user_id"`
}
