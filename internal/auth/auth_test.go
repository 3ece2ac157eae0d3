package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Pranshu-project/zyro/internal/entities"
)

func TestInviteTokenHashRoundtrip(t *testing.T) {
	raw, hash, err := NewInviteToken()
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.Len(t, hash, 64)
	require.Equal(t, hash, HashToken(raw))

	raw2, hash2, err := NewInviteToken()
	require.NoError(t, err)
	require.NotEqual(t, raw, raw2)
	require.NotEqual(t, hash, hash2)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct-horse", 4)
	require.NoError(t, err)
	require.True(t, CheckPassword("correct-horse", hash))
	require.False(t, CheckPassword("wrong-horse", hash))
	require.False(t, CheckPassword("correct-horse", "not-a-bcrypt-hash"))
}

func TestJWTRoundtrip(t *testing.T) {
	token, err := GenerateJWT(42, entities.RoleManager, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, entities.RoleManager, claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, entities.RoleManager, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	require.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT(42, entities.RoleEmployee, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	require.Error(t, err)
}
