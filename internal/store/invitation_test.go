package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/store"
)

func TestInvitationStore_FetchInvitations_DefaultsToPending(t *testing.T) {
	var seenFilter string
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenFilter = r.URL.Query().Get("status_filter")
		_, _ = w.Write([]byte(`[{"id":1,"team_id":5,"user_id":42,"status":"pending"}]`))
	}))
	s := store.NewInvitationStore(clients)

	invitations, err := s.FetchInvitations(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "pending", seenFilter)
	require.Len(t, invitations, 1)
	assert.Equal(t, api.InvitationStatusPending, invitations[0].Status)
	assert.Len(t, s.State().Invitations, 1)
}

func TestInvitationStore_RespondToInvitation_RefreshesPending(t *testing.T) {
	tests := []struct {
		name   string
		accept bool
	}{
		{name: "accept", accept: true},
		{name: "decline", accept: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var refreshed bool
			clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case r.Method == http.MethodPost:
					require.Equal(t, "/api/invitations/1/accept", r.URL.Path)

					var req api.InvitationAcceptRequest
					require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
					assert.Equal(t, tc.accept, req.Accept)
					w.WriteHeader(http.StatusOK)
				default:
					refreshed = true
					assert.Equal(t, "pending", r.URL.Query().Get("status_filter"))
					_, _ = w.Write([]byte(`[]`))
				}
			}))
			s := store.NewInvitationStore(clients)

			err := s.RespondToInvitation(context.Background(), 1, tc.accept)

			require.NoError(t, err)
			assert.True(t, refreshed)
			assert.Empty(t, s.State().Invitations)
		})
	}
}

func TestInvitationStore_FetchTeamPending_NotRetained(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/invitations/team/5/pending", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"team_id":5,"user_id":42,"status":"pending"}]`))
	}))
	s := store.NewInvitationStore(clients)

	invitations, err := s.FetchTeamPending(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, invitations, 1)
	assert.Empty(t, s.State().Invitations)
}
