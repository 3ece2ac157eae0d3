package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	insertSprintQuery = `
INSERT INTO sprints (sprint_code, name, project_id, start_date, end_date, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, sprint_code, name, project_id, start_date, end_date, status, created_at, updated_at`

	sprintsByProjectQuery = `
SELECT id, sprint_code, name, project_id, start_date, end_date, status, created_at, updated_at
FROM sprints
WHERE project_id = $1
ORDER BY start_date NULLS LAST, id`
)

// CreateSprint inserts a sprint for a project.
func (p *Postgres) CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.db.QueryRow(ctx, insertSprintQuery,
		sprint.SprintCode, sprint.Name, sprint.ProjectID, sprint.StartDate, sprint.EndDate, sprint.Status).
		Scan(&s.ID, &s.SprintCode, &s.Name, &s.ProjectID, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("insert sprint: %w", err)
	}

	p.log.Infow("sprint created", "sprint_id", s.ID, "project_id", s.ProjectID)
	return &s, nil
}

// ListSprintsByProject returns the sprints of a project.
func (p *Postgres) ListSprintsByProject(ctx context.Context, projectID int64) ([]entities.Sprint, error) {
	rows, err := p.db.Query(ctx, sprintsByProjectQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sprints: %w", err)
	}
	defer rows.Close()

	sprints := make([]entities.Sprint, 0)
	for rows.Next() {
		var s entities.Sprint
		if err := rows.Scan(&s.ID, &s.SprintCode, &s.Name, &s.ProjectID, &s.StartDate, &s.EndDate, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sprint: %w", err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sprints: %w", err)
	}
	return sprints, nil
}
