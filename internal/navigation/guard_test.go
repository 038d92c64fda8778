package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hackplatform/client-go/internal/navigation"
	navigationmock "github.com/hackplatform/client-go/internal/navigation/mock"
)

type authStateStub struct {
	user  bool
	admin bool
}

func (s authStateStub) IsUserAuthenticated() bool  { return s.user }
func (s authStateStub) IsAdminAuthenticated() bool { return s.admin }

func TestGuard_Decide_Returns(t *testing.T) {
	tests := []struct {
		name             string
		auth             authStateStub
		path             string
		expectedRedirect string
	}{
		{
			name: "home_is_public",
			path: "/",
		},
		{
			name: "auth_page_for_anonymous",
			path: "/auth",
		},
		{
			name:             "protected_route_redirects_anonymous_to_auth",
			path:             "/hackathons",
			expectedRedirect: "/auth",
		},
		{
			name:             "parametrized_route_redirects_anonymous_to_auth",
			path:             "/hackathons/42",
			expectedRedirect: "/auth",
		},
		{
			name: "protected_route_allows_authenticated_user",
			auth: authStateStub{user: true},
			path: "/invitations",
		},
		{
			name:             "auth_page_redirects_authenticated_user_to_hackathons",
			auth:             authStateStub{user: true},
			path:             "/auth",
			expectedRedirect: "/hackathons",
		},
		{
			name:             "admin_route_redirects_anonymous_to_admin_login",
			path:             "/admin",
			expectedRedirect: "/admin/login",
		},
		{
			name:             "admin_route_ignores_user_session",
			auth:             authStateStub{user: true},
			path:             "/admin/hackathons",
			expectedRedirect: "/admin/login",
		},
		{
			name: "admin_route_allows_admin",
			auth: authStateStub{admin: true},
			path: "/admin/hackathons",
		},
		{
			name:             "admin_login_redirects_authenticated_admin_to_dashboard",
			auth:             authStateStub{admin: true},
			path:             "/admin/login",
			expectedRedirect: "/admin",
		},
		{
			name: "admin_login_ignores_user_session",
			auth: authStateStub{user: true},
			path: "/admin/login",
		},
		{
			name:             "unknown_path_redirects_home",
			auth:             authStateStub{user: true, admin: true},
			path:             "/nonexistent",
			expectedRedirect: "/",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			guard := navigation.NewGuard(navigation.NewTable(navigation.DefaultRoutes()), tc.auth)

			decision := guard.Decide(tc.path)

			assert.Equal(t, tc.expectedRedirect == "", decision.Allowed())
			assert.Equal(t, tc.expectedRedirect, decision.RedirectTo)
		})
	}
}

func TestGuardedNavigator_Go_FollowsRedirects(t *testing.T) {
	tests := []struct {
		name         string
		auth         authStateStub
		path         string
		expectedPath string
	}{
		{
			name:         "allowed_path_passes_through",
			auth:         authStateStub{user: true},
			path:         "/team",
			expectedPath: "/team",
		},
		{
			name:         "redirect_is_followed",
			path:         "/profile",
			expectedPath: "/auth",
		},
		{
			name:         "unknown_path_lands_on_home",
			path:         "/nonexistent",
			expectedPath: "/",
		},
		{
			name:         "chained_redirect_settles",
			auth:         authStateStub{admin: true},
			path:         "/nonexistent/admin/thing",
			expectedPath: "/",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			impl := navigationmock.NewNavigator(ctrl)
			impl.EXPECT().Go(tc.expectedPath)

			guard := navigation.NewGuard(navigation.NewTable(navigation.DefaultRoutes()), tc.auth)
			navigator := navigation.NewGuardedNavigator(guard, impl)

			navigator.Go(tc.path)
		})
	}
}

func TestTable_Match_Returns(t *testing.T) {
	table := navigation.NewTable(navigation.DefaultRoutes())

	route, ok := table.Match("/hackathons/42")
	assert.True(t, ok)
	assert.Equal(t, navigation.RouteHackathonDetail, route.Name)

	route, ok = table.Match("/teams/7")
	assert.True(t, ok)
	assert.Equal(t, navigation.RouteTeamDetail, route.Name)

	_, ok = table.Match("/teams")
	assert.False(t, ok)
}

func TestMemoryNavigator_TracksLocation(t *testing.T) {
	var observed []string
	navigator := navigation.NewMemoryNavigator("/", func(path string) {
		observed = append(observed, path)
	})

	assert.Equal(t, "/", navigator.Location())

	navigator.Go("/auth")
	navigator.Go("/hackathons")

	assert.Equal(t, "/hackathons", navigator.Location())
	assert.Equal(t, []string{"/auth", "/hackathons"}, observed)
}
