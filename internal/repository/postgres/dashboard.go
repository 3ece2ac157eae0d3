package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Pranshu-project/zyro/internal/entities"
)

const (
	recentProjectsQuery = `
SELECT p.id, p.name
FROM projects p
JOIN project_members pm ON pm.project_id = p.id
WHERE pm.user_id = $1
ORDER BY p.updated_at DESC
LIMIT $2`

	// Issues hang off a sprint or directly off a project, hence the
	// inclusive-or join condition. Cancelled issues stay out of both the
	// numerator and the denominator.
	projectStatsQuery = `
SELECT p.id,
       p.status,
       COALESCE(SUM(CASE WHEN i.status <> 'cancelled' THEN i.story_point ELSE 0 END), 0) AS total_points,
       COALESCE(SUM(CASE WHEN i.status = 'completed' AND i.status <> 'cancelled' THEN i.story_point ELSE 0 END), 0) AS completed_points,
       COUNT(CASE WHEN i.status <> 'cancelled' THEN i.id END) AS total_task,
       COUNT(CASE WHEN i.status = 'completed' THEN i.id END) AS task_completed
FROM projects p
LEFT JOIN sprints s ON s.project_id = p.id
LEFT JOIN issues i ON i.sprint_id = s.id OR i.project_id = p.id
WHERE p.id = ANY($1)
GROUP BY p.id, p.status`

	recentIssuesQuery = `
SELECT i.id, i.name, i.status, i.updated_at, i.priority, p.name, u.name
FROM issues i
JOIN sprints s ON i.sprint_id = s.id
JOIN projects p ON s.project_id = p.id
LEFT JOIN users u ON u.id = i.assigned_to
WHERE s.project_id IN (SELECT pm.project_id FROM project_members pm WHERE pm.user_id = $1)
  AND (i.assigned_to = $1 OR i.assigned_by = $1)
ORDER BY i.updated_at DESC
LIMIT $2`

	myProjectsCountQuery = `SELECT COUNT(project_id) FROM project_members WHERE user_id = $1`

	activeIssuesCountQuery = `
SELECT COUNT(i.id)
FROM issues i
JOIN sprints s ON i.sprint_id = s.id
WHERE s.project_id IN (SELECT pm.project_id FROM project_members pm WHERE pm.user_id = $1)
  AND i.status IN ('todo', 'in_progress', 'hold')`

	teamMembersCountQuery = `
SELECT COUNT(DISTINCT pm.user_id)
FROM project_members pm
WHERE pm.project_id IN (SELECT m.project_id FROM project_members m WHERE m.user_id = $1)
  AND pm.user_id <> $1`

	activeSprintsCountQuery = `
SELECT COUNT(s.id)
FROM sprints s
WHERE s.project_id IN (SELECT pm.project_id FROM project_members pm WHERE pm.user_id = $1)
  AND s.status IN ('todo', 'in_progress')`

	urgentIssuesCountQuery = `
SELECT COUNT(*) FROM (
    SELECT i.id
    FROM issues i
    JOIN sprints s ON i.sprint_id = s.id
    WHERE i.assigned_to = $1
      AND i.status <> 'completed'
      AND s.end_date >= CURRENT_DATE
    ORDER BY s.end_date ASC
    LIMIT 4
) urgent`

	employeeIssueStatsQuery = `
SELECT COUNT(*) FILTER (WHERE priority = 'critical'),
       COUNT(*) FILTER (WHERE status = 'in_progress'),
       COUNT(*) FILTER (WHERE status = 'todo')
FROM issues
WHERE assigned_to = $1`
)

// RecentProjects returns up to limit member projects, most recently updated
// first, annotated with task counts and completion percentage. The candidate
// recency order is preserved regardless of the aggregation results.
func (p *Postgres) RecentProjects(ctx context.Context, userID int64, limit int) ([]entities.ProjectProgress, error) {
	rows, err := p.db.Query(ctx, recentProjectsQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent projects: %w", err)
	}
	defer rows.Close()

	type candidate struct {
		id   int64
		name string
	}
	candidates := make([]candidate, 0, limit)
	for rows.Next() {
		var c candidate
		if err := rows.Scan(&c.id, &c.name); err != nil {
			return nil, fmt.Errorf("scan recent project: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent projects: %w", err)
	}
	if len(candidates) == 0 {
		return []entities.ProjectProgress{}, nil
	}

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.id)
	}

	statsRows, err := p.db.Query(ctx, projectStatsQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	defer statsRows.Close()

	statsByProject := make(map[int64]entities.ProjectStats, len(ids))
	for statsRows.Next() {
		var s entities.ProjectStats
		if err := statsRows.Scan(&s.ProjectID, &s.ProjectStatus, &s.TotalPoints, &s.CompletedPoints, &s.TotalTask, &s.TaskCompleted); err != nil {
			return nil, fmt.Errorf("scan project stats: %w", err)
		}
		statsByProject[s.ProjectID] = s
	}
	if err := statsRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project stats: %w", err)
	}

	res := make([]entities.ProjectProgress, 0, len(candidates))
	for _, c := range candidates {
		entry := entities.ProjectProgress{ProjectID: c.id, ProjectName: c.name}
		if s, ok := statsByProject[c.id]; ok {
			entry.TotalTask = s.TotalTask
			entry.TaskCompleted = s.TaskCompleted
			entry.Percentage = entities.CompletionPercentage(s.CompletedPoints, s.TotalPoints, s.ProjectStatus)
		}
		res = append(res, entry)
	}
	return res, nil
}

// RecentIssues returns up to limit issues from the user's projects where the
// user is assignee or assigner, most recently updated first.
func (p *Postgres) RecentIssues(ctx context.Context, userID int64, limit int) ([]entities.RecentIssue, error) {
	rows, err := p.db.Query(ctx, recentIssuesQuery, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent issues: %w", err)
	}
	defer rows.Close()

	now := time.Now().UTC()
	res := make([]entities.RecentIssue, 0, limit)
	for rows.Next() {
		var (
			issue     entities.RecentIssue
			updatedAt *time.Time
			priority  *string
			assignee  *string
		)
		if err := rows.Scan(&issue.TaskID, &issue.TaskName, &issue.Status, &updatedAt, &priority, &issue.ProjectName, &assignee); err != nil {
			return nil, fmt.Errorf("scan recent issue: %w", err)
		}
		issue.Priority = string(entities.PriorityMedium)
		if priority != nil && *priority != "" {
			issue.Priority = *priority
		}
		issue.AssignedTo = "Unassigned"
		if assignee != nil && *assignee != "" {
			issue.AssignedTo = *assignee
		}
		issue.HoursAgo = entities.HoursAgo(now, updatedAt)
		res = append(res, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent issues: %w", err)
	}
	return res, nil
}

// ManagerCards computes the four independent manager counters. The queries
// share no data dependency and run concurrently against the pool.
func (p *Postgres) ManagerCards(ctx context.Context, userID int64) (entities.ManagerCards, error) {
	var cards entities.ManagerCards

	counts := []struct {
		query string
		dst   *int64
		name  string
	}{
		{myProjectsCountQuery, &cards.MyProjects, "my projects"},
		{activeIssuesCountQuery, &cards.ActiveIssues, "active issues"},
		{teamMembersCountQuery, &cards.TeamMembers, "team members"},
		{activeSprintsCountQuery, &cards.ActiveSprints, "active sprints"},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, c := range counts {
		wg.Add(1)
		go func(query, name string, dst *int64) {
			defer wg.Done()
			if err := p.db.QueryRow(ctx, query, userID).Scan(dst); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("count %s: %w", name, err)
				}
				mu.Unlock()
			}
		}(c.query, c.name, c.dst)
	}
	wg.Wait()

	if firstErr != nil {
		return entities.ManagerCards{}, firstErr
	}
	return cards, nil
}

// EmployeeDashboard computes the employee counters in one round of queries.
func (p *Postgres) EmployeeDashboard(ctx context.Context, userID int64) (entities.EmployeeDashboard, error) {
	var res entities.EmployeeDashboard

	if err := p.db.QueryRow(ctx, employeeIssueStatsQuery, userID).
		Scan(&res.CriticalIssue, &res.ActiveIssue, &res.PendingIssue); err != nil {
		return res, fmt.Errorf("employee issue stats: %w", err)
	}

	if err := p.db.QueryRow(ctx, myProjectsCountQuery, userID).Scan(&res.TotalProject); err != nil {
		return res, fmt.Errorf("employee project count: %w", err)
	}

	if err := p.db.QueryRow(ctx, urgentIssuesCountQuery, userID).Scan(&res.UrgentIssue); err != nil {
		return res, fmt.Errorf("employee urgent issues: %w", err)
	}

	return res, nil
}
