package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/session"
	"github.com/hackplatform/client-go/internal/store"
)

func TestAuthStore_LoginWithTelegram_StoresSession(t *testing.T) {
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/telegram", r.URL.Path)

		var req api.TelegramAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(123456), req.TelegramID)

		_, _ = w.Write([]byte(`{"access_token":"usertoken","token_type":"bearer","user_id":42}`))
	}))
	s := store.NewAuthStore(clients, sessions)

	token, err := s.LoginWithTelegram(context.Background(), api.TelegramAuthRequest{
		TelegramID:       123456,
		TelegramUsername: "somebody",
		FullName:         "Some Body",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)

	assert.True(t, sessions.IsUserAuthenticated())
	assert.False(t, sessions.IsAdminAuthenticated())

	userID, ok := sessions.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestAuthStore_LoginWithTelegram_FailureLeavesNoSession(t *testing.T) {
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(errorBody("Неверные данные Telegram")))
	}))
	s := store.NewAuthStore(clients, sessions)

	_, err := s.LoginWithTelegram(context.Background(), api.TelegramAuthRequest{TelegramID: 123456})

	require.Error(t, err)
	assert.Equal(t, "Неверные данные Telegram", s.Err())
	assert.False(t, sessions.IsUserAuthenticated())
}

func TestAuthStore_AdminLogin_StoresAdminScopeOnly(t *testing.T) {
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/admin/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"access_token":"admintoken","token_type":"bearer","user_id":1}`))
	}))
	s := store.NewAuthStore(clients, sessions)

	_, err := s.AdminLogin(context.Background(), api.AdminLoginRequest{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.True(t, sessions.IsAdminAuthenticated())
	assert.False(t, sessions.IsUserAuthenticated())

	token, ok := sessions.Token(session.ScopeAdmin)
	require.True(t, ok)
	assert.Equal(t, "admintoken", token)
}

func TestAuthStore_FetchCurrentUser_Returns(t *testing.T) {
	var requests int
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"id":42,"full_name":"Some Body","skills":["go"]}`))
	}))
	s := store.NewAuthStore(clients, sessions)

	user, err := s.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Zero(t, requests)

	sessions.SetUserSession("usertoken", 42)

	user, err = s.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Some Body", user.FullName)
	assert.Equal(t, user, s.State().User)
}

func TestAuthStore_ClearUser(t *testing.T) {
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"full_name":"Some Body","skills":[]}`))
	}))
	s := store.NewAuthStore(clients, sessions)
	sessions.SetUserSession("usertoken", 42)

	_, err := s.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s.State().User)

	s.ClearUser()

	assert.Nil(t, s.State().User)
}
