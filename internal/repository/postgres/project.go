package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	insertProjectQuery = `
INSERT INTO projects (name, status, created_by, description, start_date, end_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, status, created_by, COALESCE(description, ''), start_date, end_date, created_at, updated_at`

	insertMemberQuery = `INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`

	projectByIDQuery = `
SELECT id, name, status, created_by, COALESCE(description, ''), start_date, end_date, created_at, updated_at
FROM projects
WHERE id = $1`

	projectsForUserQuery = `
SELECT p.id, p.name, p.status, p.created_by, COALESCE(p.description, ''), p.start_date, p.end_date, p.created_at, p.updated_at
FROM projects p
JOIN project_members pm ON pm.project_id = p.id
WHERE pm.user_id = $1
ORDER BY p.updated_at DESC`

	updateProjectStatusQuery = `
UPDATE projects
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, status, created_by, COALESCE(description, ''), start_date, end_date, created_at, updated_at`
)

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	err := row.Scan(&pr.ID, &pr.Name, &pr.Status, &pr.CreatedBy, &pr.Description,
		&pr.StartDate, &pr.EndDate, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreateProject inserts a project and enrolls the creator as its first member.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project, creatorID int64) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin project tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	created, err := scanProject(tx.QueryRow(ctx, insertProjectQuery,
		project.Name, project.Status, creatorID, project.Description, project.StartDate, project.EndDate))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, created.ID, creatorID); err != nil {
		return nil, fmt.Errorf("enroll creator: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit project tx: %w", err)
	}

	p.log.Infow("project created", "project_id", created.ID, "created_by", creatorID)
	return created, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID int64) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, projectByIDQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return pr, nil
}

// ListProjectsForUser returns projects the user is a member of, most recently
// updated first.
func (p *Postgres) ListProjectsForUser(ctx context.Context, userID int64) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, projectsForUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Status, &pr.CreatedBy, &pr.Description,
			&pr.StartDate, &pr.EndDate, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// UpdateProjectStatus sets the project status.
func (p *Postgres) UpdateProjectStatus(ctx context.Context, projectID int64, status entities.ProjectStatus) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, updateProjectStatusQuery, projectID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project status: %w", err)
	}

	p.log.Infow("project status updated", "project_id", projectID, "status", status)
	return pr, nil
}

// AddProjectMember links a user to a project.
func (p *Postgres) AddProjectMember(ctx context.Context, projectID, userID int64) error {
	if _, err := p.db.Exec(ctx, insertMemberQuery, projectID, userID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return entities.ErrMemberExists
			case "23503":
				return entities.ErrProjectNotFound
			}
		}
		return fmt.Errorf("add project member: %w", err)
	}
	return nil
}
