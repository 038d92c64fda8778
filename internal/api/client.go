// Package api builds the two backend clients: one per authentication
// scope, with fully isolated credentials.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/hackplatform/client-go/internal/session"
	"github.com/hackplatform/client-go/pkg/env"
	"github.com/hackplatform/client-go/pkg/event"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
	pkglog "github.com/hackplatform/client-go/pkg/log"
	pkgstrings "github.com/hackplatform/client-go/pkg/strings"
)

type Destination string

const DestinationAPI Destination = "api"

type Config struct {
	// BaseURLOverride wins over the destination's env variable; when both
	// are empty the clients use same-origin relative paths.
	BaseURLOverride string
}

// ClientPair keeps the user and admin credentials isolated: no code path
// can attach one scope's token to the other scope's request, and a 401 on
// one scope never touches the other scope's session.
type ClientPair struct {
	User  pkghttp.Client
	Admin pkghttp.Client
}

func NewClientPair(
	cfg Config,
	sessions *session.Store,
	dispatcher event.Dispatcher,
	logger pkglog.Logger,
) ClientPair {
	base := pkghttp.NewClient(
		pkghttp.WithBaseURL(resolveBaseURL(cfg.BaseURLOverride, DestinationAPI)),
		pkghttp.WithRequestHeader("Content-Type", "application/json"),
		pkghttp.WithRequestLogging(string(DestinationAPI), logger, pkglog.LevelDebug, pkglog.LevelWarn),
	)

	return ClientPair{
		User:  base.With(withScopeAuth(session.ScopeUser, sessions, dispatcher, logger)...),
		Admin: base.With(withScopeAuth(session.ScopeAdmin, sessions, dispatcher, logger)...),
	}
}

func withScopeAuth(
	scope session.Scope,
	sessions *session.Store,
	dispatcher event.Dispatcher,
	logger pkglog.Logger,
) []pkghttp.ClientOption {
	return []pkghttp.ClientOption{
		pkghttp.WithBearerTokenSource(func() (string, bool) {
			return sessions.Token(scope)
		}),
		pkghttp.WithResponseHook(func(resp *resty.Response) {
			if resp.StatusCode() != http.StatusUnauthorized {
				return
			}

			sessions.ClearScope(scope)
			err := dispatcher.Dispatch(resp.Request.Context(), session.NewSessionInvalidated(scope))
			if err != nil {
				logger.WithError(err).Warn(resp.Request.Context(), "failed to dispatch session invalidation")
			}
		}),
	}
}

func resolveBaseURL(override string, dest Destination) string {
	if override != "" {
		return override
	}

	baseURLEnv := fmt.Sprintf("%s_BASE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	return env.ParseDefault(baseURLEnv, "")
}
