package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackplatform/client-go/internal/api"
	"github.com/hackplatform/client-go/internal/store"
)

func TestAdminStore_UsesAdminCredentials(t *testing.T) {
	var seenAuth string
	clients, sessions := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	sessions.SetUserSession("usertoken", 42)
	sessions.SetAdminSession("admintoken")
	s := store.NewAdminStore(clients)

	_, err := s.FetchHackathons(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer admintoken", seenAuth)
}

func TestAdminStore_UpdateHackathon_ReplacesInCollection(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			require.Equal(t, "/api/hackathons/2", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":2,"name":"Renamed Hack","status":"active"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Hack One"},{"id":2,"name":"Hack Two"}]`))
	}))
	s := store.NewAdminStore(clients)

	_, err := s.FetchHackathons(context.Background())
	require.NoError(t, err)

	name := "Renamed Hack"
	updated, err := s.UpdateHackathon(context.Background(), 2, api.HackathonUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Hack", updated.Name)

	hackathons := s.State().Hackathons
	require.Len(t, hackathons, 2)
	assert.Equal(t, "Hack One", hackathons[0].Name)
	assert.Equal(t, "Renamed Hack", hackathons[1].Name)
}

func TestAdminStore_CreateHackathon_Appends(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/hackathons", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3,"name":"Hack Three","status":"upcoming"}`))
	}))
	s := store.NewAdminStore(clients)

	created, err := s.CreateHackathon(context.Background(), api.HackathonCreateRequest{Name: "Hack Three"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
	require.Len(t, s.State().Hackathons, 1)
}

func TestAdminStore_Export_Returns(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		expectedCSV string
		expectedErr string
	}{
		{
			name: "participants_csv_passed_through",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/admin/42/participants/export", r.URL.Path)
				_, _ = w.Write([]byte("id,full_name\n42,Some Body\n"))
			},
			expectedCSV: "id,full_name\n42,Some Body\n",
		},
		{
			name: "failure_records_message_without_loading",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedErr: "Ошибка экспорта участников",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			clients, _ := newTestClients(t, tc.handler)
			s := store.NewAdminStore(clients)

			data, err := s.ExportParticipants(context.Background(), 42)

			assert.False(t, s.Loading())
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedErr, s.Err())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCSV, string(data))
			assert.Empty(t, s.Err())
		})
	}
}

func TestAdminStore_FetchAnalytics_StoresResult(t *testing.T) {
	clients, _ := newTestClients(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/42/analytics", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_participants":100,"total_teams":20,"average_team_size":4.5,"skills_frequency":{"go":10}}`))
	}))
	s := store.NewAdminStore(clients)

	analytics, err := s.FetchAnalytics(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 100, analytics.TotalParticipants)
	assert.Equal(t, 4.5, analytics.AverageTeamSize)
	require.NotNil(t, s.State().Analytics)
	assert.Equal(t, 10, s.State().Analytics.SkillsFrequency["go"])
}
