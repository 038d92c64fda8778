package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/session"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	telegramAuthPath = "/api/auth/telegram"
	adminLoginPath   = "/api/auth/admin/login"
	currentUserPath  = "/api/users/me"
)

const (
	msgLoginFailed      = "Ошибка входа"
	msgAdminLoginFailed = "Ошибка входа администратора"
	msgFetchUserFailed  = "Ошибка загрузки пользователя"
)

// AuthStore drives both login flows and keeps the authenticated user's
// record. The derived authentication flags live on the session store.
type AuthStore struct {
	Tracker
	client      pkghttp.Client
	adminClient pkghttp.Client
	sessions    *session.Store
	user        *api.User
}

type AuthState struct {
	User    *api.User
	Loading bool
	Err     string
}

func NewAuthStore(clients api.ClientPair, sessions *session.Store) *AuthStore {
	return &AuthStore{
		client:      clients.User,
		adminClient: clients.Admin,
		sessions:    sessions,
	}
}

func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AuthState{
		User:    s.user,
		Loading: s.loading,
		Err:     s.err,
	}
}

// LoginWithTelegram exchanges the Telegram identity for a user session
// and stores the received credentials in the cookie jar.
func (s *AuthStore) LoginWithTelegram(ctx context.Context, req api.TelegramAuthRequest) (api.TokenResponse, error) {
	return run(&s.Tracker, msgLoginFailed, func() (api.TokenResponse, error) {
		token, err := send[api.TokenResponse](
			s.client.NewRequest(ctx).SetBody(req),
			http.MethodPost, telegramAuthPath,
		)
		if err != nil {
			return api.TokenResponse{}, err
		}

		s.sessions.SetUserSession(token.AccessToken, token.UserID)
		return token, nil
	})
}

func (s *AuthStore) AdminLogin(ctx context.Context, req api.AdminLoginRequest) (api.TokenResponse, error) {
	return run(&s.Tracker, msgAdminLoginFailed, func() (api.TokenResponse, error) {
		token, err := send[api.TokenResponse](
			s.adminClient.NewRequest(ctx).SetBody(req),
			http.MethodPost, adminLoginPath,
		)
		if err != nil {
			return api.TokenResponse{}, err
		}

		s.sessions.SetAdminSession(token.AccessToken)
		return token, nil
	})
}

// FetchCurrentUser loads the authenticated user's record; without a user
// session it is a no-op.
func (s *AuthStore) FetchCurrentUser(ctx context.Context) (*api.User, error) {
	if !s.sessions.IsUserAuthenticated() {
		return nil, nil
	}

	return run(&s.Tracker, msgFetchUserFailed, func() (*api.User, error) {
		user, err := send[api.User](s.client.NewRequest(ctx), http.MethodGet, currentUserPath)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.user = &user
		s.mu.Unlock()
		return &user, nil
	})
}

func (s *AuthStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
