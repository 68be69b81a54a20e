package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s, err := NewAuthStore(NewSnapshot(t.TempDir(), "auth"))
	require.NoError(t, err)
	sid := uuid.NewString()

	assert.False(t, s.Login(sid, "wrong"))
	assert.False(t, s.IsAdmin(sid))

	assert.True(t, s.Login(sid, "admin123"))
	assert.True(t, s.IsAdmin(sid))
}

func TestLogout(t *testing.T) {
	s, err := NewAuthStore(NewSnapshot(t.TempDir(), "auth"))
	require.NoError(t, err)
	sid := uuid.NewString()

	require.True(t, s.Login(sid, "admin123"))
	s.Logout(sid)
	assert.False(t, s.IsAdmin(sid))
}

func TestAdminFlagSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	sid := uuid.NewString()

	s, err := NewAuthStore(NewSnapshot(dir, "auth"))
	require.NoError(t, err)
	require.True(t, s.Login(sid, "admin123"))

	reloaded, err := NewAuthStore(NewSnapshot(dir, "auth"))
	require.NoError(t, err)
	assert.True(t, reloaded.IsAdmin(sid))
}
