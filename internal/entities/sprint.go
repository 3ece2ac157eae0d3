// Package entities contains core business entities.
package entities

import "time"

// SprintStatus enumerates sprint lifecycle states.
type SprintStatus string

const (
	// SprintTodo marks a sprint not yet started.
	SprintTodo SprintStatus = "todo"
	// SprintInProgress marks a running sprint.
	SprintInProgress SprintStatus = "in_progress"
	// SprintCompleted marks a finished sprint.
	SprintCompleted SprintStatus = "completed"
)

// Sprint is a time-boxed container of issues within a project.
type Sprint struct {
	ID         int64        `json:"id"`
	SprintCode string       `json:"sprint_code"`
	Name       string       `json:"name"`
	ProjectID  int64        `json:"project_id"`
	StartDate  *time.Time   `json:"start_date,omitempty"`
	EndDate    *time.Time   `json:"end_date,omitempty"`
	Status     SprintStatus `json:"status"`
	CreatedAt  *time.Time   `json:"created_at,omitempty"`
	UpdatedAt  *time.Time   `json:"updated_at,omitempty"`
}
