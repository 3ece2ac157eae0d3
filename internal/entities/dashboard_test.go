package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed float64
		total     float64
		status    ProjectStatus
		want      int
	}{
		{name: "no points", completed: 0, total: 0, status: ProjectActive, want: 0},
		{name: "negative total", completed: 5, total: -1, status: ProjectActive, want: 0},
		{name: "floors fraction", completed: 5, total: 15, status: ProjectActive, want: 33},
		{name: "half done", completed: 8, total: 16, status: ProjectActive, want: 50},
		{name: "all points done but project open", completed: 10, total: 10, status: ProjectActive, want: 99},
		{name: "all points done and project completed", completed: 10, total: 10, status: ProjectCompleted, want: 100},
		{name: "hold project also capped", completed: 12, total: 12, status: ProjectHold, want: 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CompletionPercentage(tt.completed, tt.total, tt.status))
		})
	}
}

func TestHoursAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.Zero(t, HoursAgo(now, nil))

	future := now.Add(time.Hour)
	require.Zero(t, HoursAgo(now, &future))

	justUnder := now.Add(-59 * time.Minute)
	require.Zero(t, HoursAgo(now, &justUnder))

	threeAndChange := now.Add(-3*time.Hour - 40*time.Minute)
	require.Equal(t, int64(3), HoursAgo(now, &threeAndChange))

	exact := now.Add(-24 * time.Hour)
	require.Equal(t, int64(24), HoursAgo(now, &exact))
}

func TestRoleAtLeast(t *testing.T) {
	require.True(t, RoleAdmin.AtLeast(RoleManager))
	require.True(t, RoleManager.AtLeast(RoleManager))
	require.False(t, RoleEmployee.AtLeast(RoleManager))
	require.False(t, Role("owner").AtLeast(RoleEmployee))
}

func TestInviteTokenExpired(t *testing.T) {
	now := time.Now()
	token := InviteToken{ExpiresAt: now.Add(time.Minute)}
	require.False(t, token.Expired(now))
	require.True(t, token.Expired(now.Add(2*time.Minute)))
}
