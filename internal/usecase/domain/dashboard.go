// Package domain contains application services orchestrating domain logic by dashboard.
package domain

import (
	"context"
	"fmt"
	"sync"

	"github.com/Pranshu-project/zyro/internal/entities"
	"github.com/Pranshu-project/zyro/pkg/metrics"
)

const (
	recentProjectsLimit = 4
	recentIssuesLimit   = 5
)

// ManagerDashboard assembles the manager page from three independent
// sections fetched concurrently. The join waits for all three; a failed
// section is replaced by its zero value so one broken aggregation never
// takes down the whole page.
func (u *Usecase) ManagerDashboard(ctx context.Context, userID int64) (entities.ManagerDashboard, error) {
	if userID <= 0 {
		return entities.ManagerDashboard{}, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	if cached, ok := u.cache.GetManagerDashboard(ctx, userID); ok {
		return *cached, nil
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	dash := entities.ManagerDashboard{
		RecentProjects: []entities.ProjectProgress{},
		RecentIssues:   []entities.RecentIssue{},
	}

	var (
		wg                               sync.WaitGroup
		cardsErr, projectsErr, issuesErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		cards, err := u.repo.ManagerCards(ctx, userID)
		if err != nil {
			cardsErr = err
			return
		}
		dash.Cards = cards
	}()
	go func() {
		defer wg.Done()
		projects, err := u.repo.RecentProjects(ctx, userID, recentProjectsLimit)
		if err != nil {
			projectsErr = err
			return
		}
		dash.RecentProjects = projects
	}()
	go func() {
		defer wg.Done()
		issues, err := u.repo.RecentIssues(ctx, userID, recentIssuesLimit)
		if err != nil {
			issuesErr = err
			return
		}
		dash.RecentIssues = issues
	}()
	wg.Wait()

	for section, err := range map[string]error{
		"cards":           cardsErr,
		"recent_projects": projectsErr,
		"recent_issues":   issuesErr,
	} {
		if err != nil {
			metrics.DashboardSectionFailures.WithLabelValues(section).Inc()
			u.log.Errorw("dashboard section failed, serving defaults",
				"section", section, "error", err, "user_id", userID)
		}
	}

	// A partially degraded page is not cached, the next request retries.
	if cardsErr == nil && projectsErr == nil && issuesErr == nil {
		u.cache.SetManagerDashboard(ctx, userID, dash)
	}

	return dash, nil
}

// EmployeeDashboard returns the employee counters as one composite query.
func (u *Usecase) EmployeeDashboard(ctx context.Context, userID int64) (entities.EmployeeDashboard, error) {
	if userID <= 0 {
		return entities.EmployeeDashboard{}, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.EmployeeDashboard(ctx, userID)
}
