// Package domain contains application services orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/Pranshu-project/zyro/internal/entities"
)

var validProjectStatuses = map[entities.ProjectStatus]struct{}{
	entities.ProjectActive:    {},
	entities.ProjectInactive:  {},
	entities.ProjectHold:      {},
	entities.ProjectCompleted: {},
}

// CreateProject creates a project with the creator as its first member.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project, creatorID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", entities.ErrInvalidArgument)
	}
	if creatorID <= 0 {
		return nil, fmt.Errorf("%w: creator id is required", entities.ErrInvalidArgument)
	}
	if project.Status == "" {
		project.Status = entities.ProjectInactive
	}
	if _, ok := validProjectStatuses[project.Status]; !ok {
		return nil, fmt.Errorf("%w: unknown project status %q", entities.ErrInvalidArgument, project.Status)
	}

	created, err := u.repo.CreateProject(ctx, project, creatorID)
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, creatorID)
	return created, nil
}

// Project returns one project by id.
func (u *Usecase) Project(ctx context.Context, projectID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, projectID)
}

// ProjectsForUser returns the projects the user is a member of.
func (u *Usecase) ProjectsForUser(ctx context.Context, userID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListProjectsForUser(ctx, userID)
}

// UpdateProjectStatus moves a project through its lifecycle. Only a project
// marked completed here may display a 100% completion figure.
func (u *Usecase) UpdateProjectStatus(ctx context.Context, projectID int64, status entities.ProjectStatus) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project id is required", entities.ErrInvalidArgument)
	}
	if _, ok := validProjectStatuses[status]; !ok {
		return nil, fmt.Errorf("%w: unknown project status %q", entities.ErrInvalidArgument, status)
	}

	updated, err := u.repo.UpdateProjectStatus(ctx, projectID, status)
	if err != nil {
		return nil, err
	}

	// A status flip changes the completion clamp, drop the creator's page.
	if updated.CreatedBy != nil {
		u.cache.Invalidate(ctx, *updated.CreatedBy)
	}
	return updated, nil
}

// AddProjectMember enrolls a user into a project.
func (u *Usecase) AddProjectMember(ctx context.Context, projectID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: project id and user id are required", entities.ErrInvalidArgument)
	}
	if err := u.repo.AddProjectMember(ctx, projectID, userID); err != nil {
		return err
	}

	u.cache.Invalidate(ctx, userID)
	return nil
}
