package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Pranshu-project/zyro/config"
	"github.com/Pranshu-project/zyro/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	expires := time.Now().Add(7 * 24 * time.Hour)

	manager, reinvite, err := repo.InviteUser(ctx, "Maya", "maya@zyro.dev", entities.RoleManager, "hash-m-1", expires)
	require.NoError(t, err)
	require.False(t, reinvite)
	require.Equal(t, entities.UserInvited, manager.Status)

	// Re-inviting a still-invited email issues a fresh token for the same account.
	again, reinvite, err := repo.InviteUser(ctx, "Maya", "maya@zyro.dev", entities.RoleManager, "hash-m-2", expires)
	require.NoError(t, err)
	require.True(t, reinvite)
	require.Equal(t, manager.ID, again.ID)

	token, err := repo.GetInviteToken(ctx, "hash-m-2")
	require.NoError(t, err)
	require.Equal(t, manager.ID, token.UserID)

	_, err = repo.GetInviteToken(ctx, "no-such-hash")
	require.ErrorIs(t, err, entities.ErrInvalidToken)

	require.NoError(t, repo.ActivateUser(ctx, token.ID, manager.ID, "bcrypt-hash"))

	// The token is burned on activation, a replay fails.
	require.ErrorIs(t, repo.ActivateUser(ctx, token.ID, manager.ID, "bcrypt-hash"), entities.ErrInvalidToken)

	activated, hash, err := repo.UserCredentials(ctx, "maya@zyro.dev")
	require.NoError(t, err)
	require.Equal(t, entities.UserActive, activated.Status)
	require.Equal(t, "bcrypt-hash", hash)

	_, _, err = repo.InviteUser(ctx, "Maya", "maya@zyro.dev", entities.RoleManager, "hash-m-3", expires)
	require.ErrorIs(t, err, entities.ErrEmailExists)

	employee, _, err := repo.InviteUser(ctx, "Eli", "eli@zyro.dev", entities.RoleEmployee, "hash-e-1", expires)
	require.NoError(t, err)
	empToken, err := repo.GetInviteToken(ctx, "hash-e-1")
	require.NoError(t, err)
	require.NoError(t, repo.ActivateUser(ctx, empToken.ID, employee.ID, "bcrypt-hash"))

	project, err := repo.CreateProject(ctx, entities.Project{Name: "Apollo", Status: entities.ProjectActive}, manager.ID)
	require.NoError(t, err)
	require.Equal(t, manager.ID, *project.CreatedBy)

	require.NoError(t, repo.AddProjectMember(ctx, project.ID, employee.ID))
	require.ErrorIs(t, repo.AddProjectMember(ctx, project.ID, employee.ID), entities.ErrMemberExists)
	require.ErrorIs(t, repo.AddProjectMember(ctx, project.ID+1000, employee.ID), entities.ErrProjectNotFound)

	start := time.Now()
	end := start.Add(7 * 24 * time.Hour)
	sprint, err := repo.CreateSprint(ctx, entities.Sprint{
		SprintCode: "s-apollo-1",
		Name:       "Sprint 1",
		ProjectID:  project.ID,
		Status:     entities.SprintInProgress,
		StartDate:  &start,
		EndDate:    &end,
	})
	require.NoError(t, err)

	critical := entities.PriorityCritical
	seed := []entities.Issue{
		{Name: "login form", StoryPoint: 5, Status: entities.IssueCompleted, Type: entities.TypeFeature, SprintID: &sprint.ID, AssignedTo: &employee.ID, AssignedBy: &manager.ID},
		{Name: "session leak", StoryPoint: 7, Status: entities.IssueInProgress, Priority: &critical, Type: entities.TypeBug, SprintID: &sprint.ID, AssignedTo: &employee.ID, AssignedBy: &manager.ID},
		{Name: "audit trail", StoryPoint: 3, Status: entities.IssueTodo, Type: entities.TypeTask, SprintID: &sprint.ID, AssignedTo: &employee.ID, AssignedBy: &manager.ID},
		{Name: "old importer", StoryPoint: 10, Status: entities.IssueCancelled, Type: entities.TypeTask, SprintID: &sprint.ID, AssignedBy: &manager.ID},
	}
	issues := make([]*entities.Issue, 0, len(seed))
	for _, is := range seed {
		created, err := repo.CreateIssue(ctx, is)
		require.NoError(t, err)
		issues = append(issues, created)
	}

	// A later-updated project with no issues at all: it must come first and
	// carry zero counts, the aggregation step never reorders the candidates.
	empty, err := repo.CreateProject(ctx, entities.Project{Name: "Borealis", Status: entities.ProjectActive}, manager.ID)
	require.NoError(t, err)

	// Cancelled points stay out of both sides: 5 of 15 completed, floored.
	progress, err := repo.RecentProjects(ctx, manager.ID, 4)
	require.NoError(t, err)
	require.Len(t, progress, 2)
	require.Equal(t, empty.ID, progress[0].ProjectID)
	require.Equal(t, "Borealis", progress[0].ProjectName)
	require.Zero(t, progress[0].TotalTask)
	require.Zero(t, progress[0].TaskCompleted)
	require.Zero(t, progress[0].Percentage)
	require.Equal(t, project.ID, progress[1].ProjectID)
	require.Equal(t, "Apollo", progress[1].ProjectName)
	require.Equal(t, int64(3), progress[1].TotalTask)
	require.Equal(t, int64(1), progress[1].TaskCompleted)
	require.Equal(t, 33, progress[1].Percentage)

	recent, err := repo.RecentIssues(ctx, manager.ID, 5)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	for _, r := range recent {
		require.Equal(t, "Apollo", r.ProjectName)
		require.Zero(t, r.HoursAgo)
	}

	cards, err := repo.ManagerCards(ctx, manager.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ManagerCards{
		MyProjects:    2,
		ActiveIssues:  2,
		TeamMembers:   1,
		ActiveSprints: 1,
	}, cards)

	empDash, err := repo.EmployeeDashboard(ctx, employee.ID)
	require.NoError(t, err)
	require.Equal(t, entities.EmployeeDashboard{
		CriticalIssue: 1,
		ActiveIssue:   1,
		PendingIssue:  1,
		TotalProject:  1,
		UrgentIssue:   2,
	}, empDash)

	completed := entities.IssueCompleted
	points := 4
	updated, err := repo.UpdateIssue(ctx, issues[2].ID, entities.IssueUpdate{Status: &completed, StoryPoint: &points})
	require.NoError(t, err)
	require.Equal(t, entities.IssueCompleted, updated.Status)
	require.Equal(t, 4, updated.StoryPoint)

	_, err = repo.UpdateIssue(ctx, issues[2].ID+1000, entities.IssueUpdate{Status: &completed})
	require.ErrorIs(t, err, entities.ErrIssueNotFound)

	log, err := repo.AddWorkLog(ctx, entities.WorkLog{
		IssueID:     issues[0].ID,
		LogCode:     "wl-1",
		Date:        time.Now(),
		HoursWorked: 3.5,
		Description: "implementation and review",
	})
	require.NoError(t, err)
	require.Equal(t, 3.5, log.HoursWorked)

	logs, err := repo.ListWorkLogs(ctx, issues[0].ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	sprints, err := repo.ListSprintsByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, sprints, 1)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=zyro_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "zyro_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=zyro_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
