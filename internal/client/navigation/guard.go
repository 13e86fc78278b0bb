// Package navigation decides which screens the signed-in user may open. The
// shell consults it before running any command; the decision is advisory and
// the portal API enforces access on its own.
package navigation

import "strings"

// Route names.
const (
	Login           = "login"
	Register        = "register"
	Dashboard       = "dashboard"
	Lectures        = "lectures"
	Schedules       = "schedules"
	Classrooms      = "classrooms"
	Slots           = "slots"
	GradeComponents = "gradeComponents"
	Enrollments     = "enrollments"
	Users           = "users"
	Bootstrap       = "bootstrap"
)

type Route struct {
	Name         string
	Path         string
	RequiresAuth bool
	GuestOnly    bool
	// Roles, when set, admits only sessions holding one of them.
	Roles []string
}

// Auth is the session view the guard needs.
type Auth interface {
	IsAuthenticated() bool
	HasAnyRole(names ...string) bool
}

// Decision is the outcome of a navigation attempt. When Allow is false the
// user is sent to Redirect; RedirectQuery carries the path to return to
// after signing in.
type Decision struct {
	Allow         bool
	Redirect      string
	RedirectQuery string
}

// Routes is the portal's route table.
var Routes = []Route{
	{Name: Login, Path: "/login", GuestOnly: true},
	{Name: Register, Path: "/register", GuestOnly: true},
	{Name: Dashboard, Path: "/", RequiresAuth: true},
	{Name: Lectures, Path: "/lectures", RequiresAuth: true},
	{Name: Schedules, Path: "/schedules", RequiresAuth: true},
	{Name: Classrooms, Path: "/classrooms", RequiresAuth: true},
	{Name: Slots, Path: "/slots", RequiresAuth: true},
	{Name: GradeComponents, Path: "/grade-components", RequiresAuth: true},
	{Name: Enrollments, Path: "/enrollments", RequiresAuth: true, Roles: []string{"ADMIN", "TEACHER"}},
	{Name: Users, Path: "/users", RequiresAuth: true, Roles: []string{"ADMIN"}},
	{Name: Bootstrap, Path: "/bootstrap", RequiresAuth: true, Roles: []string{"ADMIN"}},
}

// Decide applies the guard rules in order: unauthenticated access to a
// protected route goes to login, a missing role goes to the dashboard, and a
// signed-in user is kept away from guest-only routes.
func Decide(route Route, fullPath string, auth Auth) Decision {
	if route.RequiresAuth && !auth.IsAuthenticated() {
		return Decision{Redirect: Login, RedirectQuery: fullPath}
	}
	if len(route.Roles) > 0 && !auth.HasAnyRole(route.Roles...) {
		return Decision{Redirect: Dashboard}
	}
	if route.GuestOnly && auth.IsAuthenticated() {
		return Decision{Redirect: Dashboard}
	}
	return Decision{Allow: true}
}

// ByName returns the route called name.
func ByName(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve maps a path to its route; unknown paths land on the dashboard.
// Query strings and trailing slashes are ignored.
func Resolve(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	for _, r := range Routes {
		if r.Path == path {
			return r
		}
	}
	dashboard, _ := ByName(Dashboard)
	return dashboard
}

// Navigate resolves fullPath and decides it.
func Navigate(fullPath string, auth Auth) (Route, Decision) {
	route := Resolve(fullPath)
	return route, Decide(route, fullPath, auth)
}
