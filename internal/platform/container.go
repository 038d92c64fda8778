// Package platform wires the client together: one cookie jar, one session
// store, one client pair and one instance of each domain store per
// process, owned by an explicit container instead of package globals.
package platform

import (
	"context"
	"fmt"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/navigation"
	"github.com/hackplatform/client-go/internal/session"
	"github.com/hackplatform/client-go/internal/store"
	"github.com/hackplatform/client-go/pkg/cookie"
	"github.com/hackplatform/client-go/pkg/event"
	pkglog "github.com/hackplatform/client-go/pkg/log"
)

type Config struct {
	// BaseURLOverride wins over the API_BASE_URL env variable.
	BaseURLOverride string
	// CookieJarPath persists the session between runs; empty keeps the
	// jar in memory.
	CookieJarPath string
	Logger        pkglog.Logger
	Navigator     navigation.Navigator
}

type DependencyContainer struct {
	CookieJar *cookie.Jar
	Sessions  *session.Store
	Guard     *navigation.Guard
	// Navigator is the guarded navigation surface for the embedding
	// shell; guard redirects are applied on every transition.
	Navigator navigation.Navigator

	Auth        *store.AuthStore
	Users       *store.UserStore
	Hackathons  *store.HackathonStore
	Teams       *store.TeamStore
	Invitations *store.InvitationStore
	Admin       *store.AdminStore
}

func MustInitDependencyContainer(cfg Config) *DependencyContainer {
	container, err := NewDependencyContainer(cfg)
	if err != nil {
		panic(err)
	}
	return container
}

func NewDependencyContainer(cfg Config) (*DependencyContainer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = pkglog.NewStub()
	}

	navigator := cfg.Navigator
	if navigator == nil {
		navigator = navigation.NewMemoryNavigator(navigation.PathHome, nil)
	}

	jar, err := openJar(cfg.CookieJarPath)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(jar, navigator)
	table := navigation.NewTable(navigation.DefaultRoutes())
	guard := navigation.NewGuard(table, sessions)

	dispatcher := event.NewDispatcher(map[string][]event.Handler{
		session.EventTypeSessionInvalidated: {
			event.NewTypedHandler(sessionInvalidatedHandler(navigator)),
		},
	})

	clients := api.NewClientPair(
		api.Config{BaseURLOverride: cfg.BaseURLOverride},
		sessions,
		dispatcher,
		logger,
	)

	return &DependencyContainer{
		CookieJar:   jar,
		Sessions:    sessions,
		Guard:       guard,
		Navigator:   navigation.NewGuardedNavigator(guard, navigator),
		Auth:        store.NewAuthStore(clients, sessions),
		Users:       store.NewUserStore(clients),
		Hackathons:  store.NewHackathonStore(clients),
		Teams:       store.NewTeamStore(clients),
		Invitations: store.NewInvitationStore(clients),
		Admin:       store.NewAdminStore(clients),
	}, nil
}

// sessionInvalidatedHandler forces a full-page navigation to the rejected
// scope's login page, unless the client is already there.
func sessionInvalidatedHandler(navigator navigation.Navigator) func(context.Context, session.SessionInvalidated) error {
	return func(_ context.Context, evt session.SessionInvalidated) error {
		loginPath := evt.Scope.LoginPath()
		if navigator.Location() != loginPath {
			navigator.Go(loginPath)
		}
		return nil
	}
}

func openJar(path string) (*cookie.Jar, error) {
	if path == "" {
		return cookie.New(), nil
	}

	jar, err := cookie.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cookie jar: %w", err)
	}
	return jar, nil
}
