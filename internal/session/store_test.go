package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStore_MissingFileMeansLoggedOut(t *testing.T) {
	s := NewStore(tempStorePath(t))
	require.NoError(t, s.Load())

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestStore_EstablishPersistsAndReloads(t *testing.T) {
	path := tempStorePath(t)

	s := NewStore(path)
	user := model.User{ID: 3, Email: "admin@example.com", FullName: "Admin"}
	require.NoError(t, s.Establish("tok-abc", user))
	assert.True(t, s.Authenticated())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.Authenticated())
	assert.Equal(t, "tok-abc", reloaded.Token())

	sess, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", sess.User.Email)
}

func TestStore_CorruptFileIsRemoved(t *testing.T) {
	path := tempStorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o600))

	s := NewStore(path)
	require.NoError(t, s.Load())
	assert.False(t, s.Authenticated())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SetTokenIsNotAuthenticated(t *testing.T) {
	s := NewStore(tempStorePath(t))
	s.SetToken("mid-login")

	// A token alone can call the service but is not a full session.
	assert.Equal(t, "mid-login", s.Token())
	assert.False(t, s.Authenticated())
}

func TestStore_ClearRemovesFile(t *testing.T) {
	path := tempStorePath(t)
	s := NewStore(path)
	require.NoError(t, s.Establish("tok", model.User{ID: 1}))

	require.NoError(t, s.Clear())
	assert.False(t, s.Authenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear store is fine.
	require.NoError(t, s.Clear())
}
