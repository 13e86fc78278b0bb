package cli

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
)

// guard runs the navigation guard for the named route and explains a
// redirect to the user. It reports whether the command may run.
func (a *App) guard(name string) bool {
	route, ok := navigation.ByName(name)
	if !ok {
		route = navigation.Resolve("/")
	}

	d := navigation.Decide(route, route.Path, a.store)
	if d.Allow {
		return true
	}
	a.explainRedirect(d)
	return false
}

// requireRole narrows a command further than its route, sending the user
// back to the dashboard when the role is missing.
func (a *App) requireRole(roles ...string) bool {
	if a.store.HasAnyRole(roles...) {
		return true
	}
	a.explainRedirect(navigation.Decision{Redirect: navigation.Dashboard})
	return false
}

func (a *App) explainRedirect(d navigation.Decision) {
	if d.Redirect == navigation.Login {
		fmt.Fprintln(a.out, a.loc.T(i18n.MsgNavigationLoginNeeded))
		return
	}
	fmt.Fprintln(a.out, a.loc.T(i18n.MsgNavigationRedirected, d.Redirect))
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
