// Package session derives the authentication state of the two scopes from
// the cookie jar. The flags are recomputed on every call, so they always
// reflect the latest jar state.
package session

import (
	"strconv"

	"github.com/hackplatform/client-go/internal/navigation"
	"github.com/hackplatform/client-go/pkg/cookie"
)

type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

// LoginPath is the full-page login route of the scope.
func (s Scope) LoginPath() string {
	if s == ScopeAdmin {
		return navigation.PathAdminLogin
	}
	return navigation.PathAuth
}

const (
	CookieAccessToken = "access_token"
	CookieUserID      = "user_id"
	CookieAdminToken  = "admin_token"
)

type Store struct {
	jar       *cookie.Jar
	navigator navigation.Navigator
}

func NewStore(jar *cookie.Jar, navigator navigation.Navigator) *Store {
	return &Store{
		jar:       jar,
		navigator: navigator,
	}
}

func (s *Store) IsUserAuthenticated() bool {
	_, ok := s.jar.Get(CookieAccessToken)
	return ok
}

func (s *Store) IsAdminAuthenticated() bool {
	_, ok := s.jar.Get(CookieAdminToken)
	return ok
}

// Token returns the bearer credential of the scope, if any.
func (s *Store) Token(scope Scope) (string, bool) {
	if scope == ScopeAdmin {
		return s.jar.Get(CookieAdminToken)
	}
	return s.jar.Get(CookieAccessToken)
}

func (s *Store) UserID() (int64, bool) {
	value, ok := s.jar.Get(CookieUserID)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Store) SetUserSession(token string, userID int64) {
	s.jar.Set(CookieAccessToken, token)
	s.jar.Set(CookieUserID, strconv.FormatInt(userID, 10))
}

func (s *Store) SetAdminSession(token string) {
	s.jar.Set(CookieAdminToken, token)
}

// ClearScope removes the scope's credentials without navigating; the user
// scope additionally drops the auxiliary user id cookie.
func (s *Store) ClearScope(scope Scope) {
	if scope == ScopeAdmin {
		s.jar.Remove(CookieAdminToken)
		return
	}

	s.jar.Remove(CookieAccessToken)
	s.jar.Remove(CookieUserID)
}

func (s *Store) Logout() {
	s.ClearScope(ScopeUser)
	s.navigator.Go(navigation.PathAuth)
}

func (s *Store) AdminLogout() {
	s.ClearScope(ScopeAdmin)
	s.navigator.Go(navigation.PathAdminLogin)
}
