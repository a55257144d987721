package guard

import (
	"path/filepath"
	"testing"

	"github.com/saylanihub/zakatms/internal/pkg/models"
	"github.com/saylanihub/zakatms/services/auth/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithUser(t *testing.T, user *models.User) *session.Store {
	t.Helper()
	store := session.NewStore(models.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "session.json"),
	})
	require.NoError(t, store.Rehydrate())
	if user != nil {
		require.NoError(t, store.Login(user, "tok"))
	}
	return store
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		user      *models.User
		adminOnly bool
		want      Decision
	}{
		{
			name: "unauthenticated redirects to login",
			want: Decision{RedirectTo: RouteLogin},
		},
		{
			name:      "unauthenticated admin view redirects to login",
			adminOnly: true,
			want:      Decision{RedirectTo: RouteLogin},
		},
		{
			name: "donor may view dashboard",
			user: &models.User{ID: "u1", Role: models.RoleDonor},
			want: Decision{Granted: true},
		},
		{
			name:      "donor redirected away from admin console",
			user:      &models.User{ID: "u1", Role: models.RoleDonor},
			adminOnly: true,
			want:      Decision{RedirectTo: RouteDashboard},
		},
		{
			name:      "admin may view admin console",
			user:      &models.User{ID: "a1", Role: models.RoleAdmin},
			adminOnly: true,
			want:      Decision{Granted: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeWithUser(t, tt.user)
			var got Decision
			if tt.adminOnly {
				got = ResolveAdmin(store)
			} else {
				got = Resolve(store)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_LoadingShowsPlaceholderNotRedirect(t *testing.T) {
	// A store that has not rehydrated yet must not trigger a redirect,
	// even with no user present
	store := session.NewStore(models.SessionConfig{
		FilePath: filepath.Join(t.TempDir(), "session.json"),
	})

	got := Resolve(store)
	assert.True(t, got.Loading)
	assert.Empty(t, got.RedirectTo)
	assert.False(t, got.Granted)

	got = ResolveAdmin(store)
	assert.True(t, got.Loading)
	assert.Empty(t, got.RedirectTo)
}
