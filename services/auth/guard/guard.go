// Package guard gates access to protected views. It mirrors the two
// route variants the application uses: plain-protected (any signed-in
// user) and admin-protected.
package guard

import "github.com/saylanihub/zakatms/services/auth/session"

// Well-known routes
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
	RouteAdmin     = "/admin"
)

// Decision is the outcome of resolving access to a protected view
type Decision struct {
	// Loading is set while the session is still rehydrating; the view
	// should show a placeholder instead of redirecting
	Loading bool
	// Granted is set when the view may render
	Granted bool
	// RedirectTo names the route to send the user to when access is
	// denied
	RedirectTo string
}

// Resolve decides access for a plain-protected view
func Resolve(sess *session.Store) Decision {
	return resolve(sess, false)
}

// ResolveAdmin decides access for an admin-protected view
func ResolveAdmin(sess *session.Store) Decision {
	return resolve(sess, true)
}

func resolve(sess *session.Store, adminOnly bool) Decision {
	if sess.Loading() {
		return Decision{Loading: true}
	}
	if sess.User() == nil {
		return Decision{RedirectTo: RouteLogin}
	}
	if adminOnly && !sess.IsAdmin() {
		return Decision{RedirectTo: RouteDashboard}
	}
	return Decision{Granted: true}
}
