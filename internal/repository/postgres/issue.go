package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	insertIssueQuery = `
INSERT INTO issues (name, story_point, status, priority, description, type, sprint_id, project_id, assigned_to, assigned_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, name, COALESCE(story_point, 0), status, priority, COALESCE(description, ''), type,
          sprint_id, project_id, assigned_to, assigned_by, created_at, updated_at`

	issueColumns = `id, name, COALESCE(story_point, 0), status, priority, COALESCE(description, ''), type,
sprint_id, project_id, assigned_to, assigned_by, created_at, updated_at`

	issuesBySprintQuery = `
SELECT id, name, COALESCE(story_point, 0), status, priority, COALESCE(description, ''), type,
       sprint_id, project_id, assigned_to, assigned_by, created_at, updated_at
FROM issues
WHERE sprint_id = $1
ORDER BY updated_at DESC`

	insertWorkLogQuery = `
INSERT INTO work_logs (issue_id, log_code, date, hours_worked, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, issue_id, log_code, date, hours_worked, COALESCE(description, ''), created_at`

	workLogsByIssueQuery = `
SELECT id, issue_id, log_code, date, hours_worked, COALESCE(description, ''), created_at
FROM work_logs
WHERE issue_id = $1
ORDER BY date DESC, id DESC`
)

func scanIssue(row pgx.Row) (*entities.Issue, error) {
	var i entities.Issue
	err := row.Scan(&i.ID, &i.Name, &i.StoryPoint, &i.Status, &i.Priority, &i.Description, &i.Type,
		&i.SprintID, &i.ProjectID, &i.AssignedTo, &i.AssignedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// CreateIssue inserts an issue.
func (p *Postgres) CreateIssue(ctx context.Context, issue entities.Issue) (*entities.Issue, error) {
	created, err := scanIssue(p.db.QueryRow(ctx, insertIssueQuery,
		issue.Name, issue.StoryPoint, issue.Status, issue.Priority, issue.Description, issue.Type,
		issue.SprintID, issue.ProjectID, issue.AssignedTo, issue.AssignedBy))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrSprintNotFound
		}
		return nil, fmt.Errorf("insert issue: %w", err)
	}

	p.log.Infow("issue created", "issue_id", created.ID)
	return created, nil
}

// UpdateIssue applies the non-nil fields of upd and returns the fresh row.
func (p *Postgres) UpdateIssue(ctx context.Context, issueID int64, upd entities.IssueUpdate) (*entities.Issue, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	args = append(args, issueID)
	idx := 2

	appendSet := func(column string, value any) {
		sets = append(sets, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}
	if upd.Name != nil {
		appendSet("name", *upd.Name)
	}
	if upd.Status != nil {
		appendSet("status", *upd.Status)
	}
	if upd.Priority != nil {
		appendSet("priority", *upd.Priority)
	}
	if upd.StoryPoint != nil {
		appendSet("story_point", *upd.StoryPoint)
	}
	if upd.AssignedTo != nil {
		appendSet("assigned_to", *upd.AssignedTo)
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", entities.ErrInvalidArgument)
	}

	var b strings.Builder
	b.WriteString("UPDATE issues SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(", updated_at = now() WHERE id = $1 RETURNING ")
	b.WriteString(issueColumns)

	updated, err := scanIssue(p.db.QueryRow(ctx, b.String(), args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrIssueNotFound
		}
		return nil, fmt.Errorf("update issue: %w", err)
	}

	p.log.Infow("issue updated", "issue_id", issueID)
	return updated, nil
}

// ListIssuesBySprint returns issues of a sprint, most recently updated first.
func (p *Postgres) ListIssuesBySprint(ctx context.Context, sprintID int64) ([]entities.Issue, error) {
	rows, err := p.db.Query(ctx, issuesBySprintQuery, sprintID)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	issues := make([]entities.Issue, 0)
	for rows.Next() {
		var i entities.Issue
		if err := rows.Scan(&i.ID, &i.Name, &i.StoryPoint, &i.Status, &i.Priority, &i.Description, &i.Type,
			&i.SprintID, &i.ProjectID, &i.AssignedTo, &i.AssignedBy, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		issues = append(issues, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issues: %w", err)
	}
	return issues, nil
}

// AddWorkLog records hours against an issue.
func (p *Postgres) AddWorkLog(ctx context.Context, log entities.WorkLog) (*entities.WorkLog, error) {
	var l entities.WorkLog
	err := p.db.QueryRow(ctx, insertWorkLogQuery,
		log.IssueID, log.LogCode, log.Date, log.HoursWorked, log.Description).
		Scan(&l.ID, &l.IssueID, &l.LogCode, &l.Date, &l.HoursWorked, &l.Description, &l.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrIssueNotFound
		}
		return nil, fmt.Errorf("insert work log: %w", err)
	}
	return &l, nil
}

// ListWorkLogs returns the work logs of an issue, newest first.
func (p *Postgres) ListWorkLogs(ctx context.Context, issueID int64) ([]entities.WorkLog, error) {
	rows, err := p.db.Query(ctx, workLogsByIssueQuery, issueID)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.WorkLog, 0)
	for rows.Next() {
		var l entities.WorkLog
		if err := rows.Scan(&l.ID, &l.IssueID, &l.LogCode, &l.Date, &l.HoursWorked, &l.Description, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work logs: %w", err)
	}
	return logs, nil
}
