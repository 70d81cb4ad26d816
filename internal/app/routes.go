// Package app wires the navigation shell together: the route table, the
// navigator and the settings panel's mount lifecycle.
package app

import "github.com/alexisbeaulieu97/navshell/internal/router"

// View identifiers rendered by the shell.
const (
	ViewLogin         router.View = "login"
	ViewDashboard     router.View = "dashboard"
	ViewDashboardHome router.View = "dashboard.home"
	ViewProfile       router.View = "dashboard.profile"
	ViewSettings      router.View = "dashboard.settings"
	ViewUser          router.View = "user"
	ViewNotFound      router.View = "not-found"
)

// Well-known paths.
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathProfile   = "/dashboard/profile"
	PathSettings  = "/dashboard/settings"
	PathDemoUser  = "/user/101"
)

// Routes returns the application route tree. Order matters only among
// siblings that could match the same path; the catch-all always runs last.
func Routes() []router.Route {
	return []router.Route{
		router.Path(PathLogin, ViewLogin),
		router.Path(PathDashboard, ViewDashboard,
			router.Index(ViewDashboardHome),
			router.Path("profile", ViewProfile),
			router.Path("settings", ViewSettings),
		),
		router.Path("/user/:id", ViewUser),
		router.Path("/", ViewLogin),
		router.Wildcard(ViewNotFound),
	}
}

// NewRouter builds a Router over Routes.
func NewRouter() (*router.Router, error) {
	return router.New(Routes()...)
}

// NavLink is an entry of the top navigation bar or the dashboard subnav.
type NavLink struct {
	Label string
	Path  string
	// Exact marks links that are active only on their own path rather than
	// on any path below it.
	Exact bool
}

// NavbarLinks are shown on every page.
func NavbarLinks() []NavLink {
	return []NavLink{
		{Label: "Login", Path: PathLogin},
		{Label: "Dashboard", Path: PathDashboard},
		{Label: "User 101", Path: PathDemoUser},
	}
}

// DashboardLinks are shown inside the dashboard layout.
func DashboardLinks() []NavLink {
	return []NavLink{
		{Label: "Home", Path: PathDashboard, Exact: true},
		{Label: "Profile", Path: PathProfile},
		{Label: "Settings", Path: PathSettings},
	}
}

// Active reports whether the link should be highlighted for path.
func (l NavLink) Active(path string) bool {
	path = router.Normalize(path)
	if path == l.Path {
		return true
	}
	if l.Exact {
		return false
	}
	return len(path) > len(l.Path) && path[:len(l.Path)] == l.Path && path[len(l.Path)] == '/'
}
