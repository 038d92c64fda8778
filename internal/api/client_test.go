package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/navigation"
	"github.com/hackplatform/client-go/internal/session"
	"github.com/hackplatform/client-go/pkg/cookie"
	"github.com/hackplatform/client-go/pkg/event"
	pkglog "github.com/hackplatform/client-go/pkg/log"
)

type invalidationRecorder struct {
	mu     sync.Mutex
	scopes []session.Scope
}

func (r *invalidationRecorder) record(_ context.Context, evt session.SessionInvalidated) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scopes = append(r.scopes, evt.Scope)
	return nil
}

func (r *invalidationRecorder) recorded() []session.Scope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]session.Scope(nil), r.scopes...)
}

func newTestPair(t *testing.T, baseURL string) (api.ClientPair, *session.Store, *invalidationRecorder) {
	t.Helper()

	sessions := session.NewStore(cookie.New(), navigation.NewMemoryNavigator(navigation.PathHome, nil))
	recorder := &invalidationRecorder{}
	dispatcher := event.NewDispatcher(map[string][]event.Handler{
		session.EventTypeSessionInvalidated: {event.NewTypedHandler(recorder.record)},
	})

	pair := api.NewClientPair(
		api.Config{BaseURLOverride: baseURL},
		sessions,
		dispatcher,
		pkglog.NewStub(),
	)
	return pair, sessions, recorder
}

func TestClientPair_ScopedTokenAttachment(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pair, sessions, _ := newTestPair(t, srv.URL)
	sessions.SetUserSession("usertoken", 42)
	sessions.SetAdminSession("admintoken")

	_, err := pair.User.NewRequest(context.Background()).Execute(http.MethodGet, "/api/users/me")
	require.NoError(t, err)
	_, err = pair.Admin.NewRequest(context.Background()).Execute(http.MethodGet, "/api/admin/hackathons")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer usertoken", "Bearer admintoken"}, headers)
}

func TestClientPair_UnauthorizedResponse_Returns(t *testing.T) {
	tests := []struct {
		name           string
		scope          session.Scope
		expectUser     bool
		expectAdmin    bool
		expectedScopes []session.Scope
	}{
		{
			name:           "user_401_drops_user_session_only",
			scope:          session.ScopeUser,
			expectAdmin:    true,
			expectedScopes: []session.Scope{session.ScopeUser},
		},
		{
			name:           "admin_401_drops_admin_session_only",
			scope:          session.ScopeAdmin,
			expectUser:     true,
			expectedScopes: []session.Scope{session.ScopeAdmin},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer srv.Close()

			pair, sessions, recorder := newTestPair(t, srv.URL)
			sessions.SetUserSession("usertoken", 42)
			sessions.SetAdminSession("admintoken")

			client := pair.User
			if tc.scope == session.ScopeAdmin {
				client = pair.Admin
			}

			resp, err := client.NewRequest(context.Background()).Execute(http.MethodGet, "/api/users/me")
			require.NoError(t, err)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode())

			assert.Equal(t, tc.expectUser, sessions.IsUserAuthenticated())
			assert.Equal(t, tc.expectAdmin, sessions.IsAdminAuthenticated())
			assert.Equal(t, tc.expectedScopes, recorder.recorded())
		})
	}
}

func TestClientPair_SuccessfulResponseKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pair, sessions, recorder := newTestPair(t, srv.URL)
	sessions.SetUserSession("usertoken", 42)

	_, err := pair.User.NewRequest(context.Background()).Execute(http.MethodGet, "/api/users/me")
	require.NoError(t, err)

	assert.True(t, sessions.IsUserAuthenticated())
	assert.Empty(t, recorder.recorded())
}

func TestClientPair_NonAuthErrorKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	pair, sessions, recorder := newTestPair(t, srv.URL)
	sessions.SetAdminSession("admintoken")

	_, err := pair.Admin.NewRequest(context.Background()).Execute(http.MethodGet, "/api/admin/hackathons")
	require.NoError(t, err)

	assert.True(t, sessions.IsAdminAuthenticated())
	assert.Empty(t, recorder.recorded())
}
