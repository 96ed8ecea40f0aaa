package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func TestLoginLogoutCycle(t *testing.T) {
	s := New()

	_, ok := s.Current()
	assert.False(t, ok)

	s.Login("alice")
	user, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", user)

	require.NoError(t, s.Logout())
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestLogoutWithoutSession(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Logout(), common.ErrorNotLoggedIn)
}

func TestLoginReplacesSession(t *testing.T) {
	s := New()
	s.Login("alice")
	s.Login("bob")

	user, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "bob", user)
}
