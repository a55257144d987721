package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(models.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "session.json"),
	})
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestStore_LoginPersistsAcrossRestart(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Rehydrate())

	user := &models.User{ID: "u1", Name: "Ayesha Khan", Email: "ayesha@example.com", Role: models.RoleDonor}
	require.NoError(t, store.Login(user, signedToken(t, time.Now().Add(time.Hour))))

	// Simulate a fresh process pointed at the same file
	reloaded := NewStore(models.SessionConfig{FilePath: store.filePath})
	assert.True(t, reloaded.Loading())
	require.NoError(t, reloaded.Rehydrate())

	assert.False(t, reloaded.Loading())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, "Ayesha Khan", reloaded.User().Name)
	assert.Equal(t, store.Token(), reloaded.Token())
	assert.False(t, reloaded.IsAdmin())
}

func TestStore_LogoutClearsEverything(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Rehydrate())

	user := &models.User{ID: "u1", Role: models.RoleAdmin}
	require.NoError(t, store.Login(user, signedToken(t, time.Now().Add(time.Hour))))
	assert.True(t, store.IsAdmin())

	require.NoError(t, store.Logout())

	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.False(t, store.IsAdmin())

	_, err := os.Stat(store.filePath)
	assert.True(t, os.IsNotExist(err))

	// Logout with nothing persisted must not fail
	require.NoError(t, store.Logout())
}

func TestStore_RehydrateDropsExpiredToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Rehydrate())
	require.NoError(t, store.Login(&models.User{ID: "u1"}, signedToken(t, time.Now().Add(-time.Hour))))

	reloaded := NewStore(models.SessionConfig{FilePath: store.filePath})
	require.NoError(t, reloaded.Rehydrate())

	assert.Nil(t, reloaded.User())
	assert.Empty(t, reloaded.Token())
}

func TestStore_RehydrateKeepsOpaqueToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Rehydrate())
	require.NoError(t, store.Login(&models.User{ID: "u1"}, "opaque-session-token"))

	reloaded := NewStore(models.SessionConfig{FilePath: store.filePath})
	require.NoError(t, reloaded.Rehydrate())

	assert.Equal(t, "opaque-session-token", reloaded.Token())
}

func TestStore_RehydrateMissingFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Rehydrate())
	assert.Nil(t, store.User())
	assert.False(t, store.Loading())
}

func TestStore_LoginWriteFailureLeavesSignedOut(t *testing.T) {
	// Pointing the session file under a regular file makes the write
	// fail; the store must not keep a session that cannot be persisted
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store := NewStore(models.SessionConfig{
		FilePath: filepath.Join(blocker, "session.json"),
	})

	err := store.Login(&models.User{ID: "u1", Name: "Ayesha Khan"}, signedToken(t, time.Now().Add(time.Hour)))
	require.Error(t, err)

	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.False(t, store.IsAdmin())
}

func TestStore_RehydrateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewStore(models.SessionConfig{FilePath: path})
	require.NoError(t, store.Rehydrate())
	assert.Nil(t, store.User())
}
