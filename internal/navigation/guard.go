package navigation

// AuthState reports the two independent authentication flags the guard
// consults; implemented by the session store.
type AuthState interface {
	IsUserAuthenticated() bool
	IsAdminAuthenticated() bool
}

// Decision is the outcome of guarding one attempted navigation: either
// pass-through or a redirect to another path.
type Decision struct {
	RedirectTo string
}

func (d Decision) Allowed() bool {
	return d.RedirectTo == ""
}

type Guard struct {
	table *Table
	auth  AuthState
}

func NewGuard(table *Table, auth AuthState) *Guard {
	return &Guard{
		table: table,
		auth:  auth,
	}
}

// Decide evaluates the target path against the current authentication
// state. It is called fresh on every attempted navigation, nothing is
// cached between calls.
func (g *Guard) Decide(path string) Decision {
	route, ok := g.table.Match(path)
	if !ok {
		return Decision{RedirectTo: PathHome}
	}

	if route.IsAdmin() {
		if route.RequiresAdminAuth && !g.auth.IsAdminAuthenticated() {
			return Decision{RedirectTo: PathAdminLogin}
		}
		if route.Name == RouteAdminLogin && g.auth.IsAdminAuthenticated() {
			return Decision{RedirectTo: PathAdminDashboard}
		}
		return Decision{}
	}

	if route.RequiresAuth && !g.auth.IsUserAuthenticated() {
		return Decision{RedirectTo: PathAuth}
	}
	if route.Name == RouteAuth && g.auth.IsUserAuthenticated() {
		return Decision{RedirectTo: PathHackathons}
	}
	return Decision{}
}
