package navigation

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Paths of the user-facing and admin route trees.
const (
	PathHome            = "/"
	PathAuth            = "/auth"
	PathProfile         = "/profile"
	PathProfileEdit     = "/profile/edit"
	PathHackathons      = "/hackathons"
	PathHackathonDetail = "/hackathons/{hackathonID}"
	PathTeam            = "/team"
	PathTeamDetail      = "/teams/{teamID}"
	PathInvitations     = "/invitations"
	PathAdminLogin      = "/admin/login"
	PathAdminDashboard  = "/admin"
	PathAdminHackathons = "/admin/hackathons"
)

const (
	RouteHome            = "home"
	RouteAuth            = "auth"
	RouteProfile         = "profile"
	RouteProfileEdit     = "profile-edit"
	RouteHackathons      = "hackathons"
	RouteHackathonDetail = "hackathon-detail"
	RouteTeam            = "team"
	RouteTeamDetail      = "team-detail"
	RouteInvitations     = "invitations"
	RouteAdminLogin      = "admin-login"
	RouteAdminDashboard  = "admin-dashboard"
	RouteAdminHackathons = "admin-hackathons"
)

const adminPathPrefix = "/admin"

type Route struct {
	Name              string
	Path              string
	RequiresAuth      bool
	RequiresAdminAuth bool
}

func (r Route) IsAdmin() bool {
	return r.Path == adminPathPrefix || startsWithAdminPrefix(r.Path)
}

func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteHome, Path: PathHome},
		{Name: RouteAuth, Path: PathAuth},
		{Name: RouteProfile, Path: PathProfile, RequiresAuth: true},
		{Name: RouteProfileEdit, Path: PathProfileEdit, RequiresAuth: true},
		{Name: RouteHackathons, Path: PathHackathons, RequiresAuth: true},
		{Name: RouteHackathonDetail, Path: PathHackathonDetail, RequiresAuth: true},
		{Name: RouteTeam, Path: PathTeam, RequiresAuth: true},
		{Name: RouteTeamDetail, Path: PathTeamDetail, RequiresAuth: true},
		{Name: RouteInvitations, Path: PathInvitations, RequiresAuth: true},
		{Name: RouteAdminLogin, Path: PathAdminLogin},
		{Name: RouteAdminDashboard, Path: PathAdminDashboard, RequiresAdminAuth: true},
		{Name: RouteAdminHackathons, Path: PathAdminHackathons, RequiresAdminAuth: true},
	}
}

// Table matches concrete paths against the route tree.
type Table struct {
	router *mux.Router
	routes map[string]Route
}

func NewTable(routes []Route) *Table {
	router := mux.NewRouter()
	byName := make(map[string]Route, len(routes))
	for _, route := range routes {
		router.Name(route.Name).Path(route.Path)
		byName[route.Name] = route
	}

	return &Table{
		router: router,
		routes: byName,
	}
}

func (t *Table) Match(path string) (Route, bool) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Route{}, false
	}

	var match mux.RouteMatch
	if !t.router.Match(req, &match) || match.Route == nil {
		return Route{}, false
	}

	route, ok := t.routes[match.Route.GetName()]
	return route, ok
}

func startsWithAdminPrefix(path string) bool {
	return len(path) > len(adminPathPrefix) && path[:len(adminPathPrefix)+1] == adminPathPrefix+"/"
}
