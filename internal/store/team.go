package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	teamsPath            = "/api/teams"
	teamByIDPath         = "/api/teams/{teamID}"
	myTeamsPath          = "/api/teams/my"
	teamsByHackathonPath = "/api/teams/hackathons/{hackathonID}"
	teamInvitePath       = "/api/teams/{teamID}/invite"
	teamMemberPath       = "/api/teams/{teamID}/members/{userID}"
)

const (
	msgFetchTeamsFailed   = "Ошибка загрузки команд"
	msgFetchTeamFailed    = "Ошибка загрузки команды"
	msgCreateTeamFailed   = "Ошибка создания команды"
	msgInviteFailed       = "Ошибка отправки приглашения"
	msgRemoveMemberFailed = "Ошибка удаления участника"
)

type TeamStore struct {
	Tracker
	client  pkghttp.Client
	teams   []api.Team
	myTeams []api.MyTeamItem
	current *api.TeamDetail
}

type TeamState struct {
	Teams   []api.Team
	MyTeams []api.MyTeamItem
	Current *api.TeamDetail
	Loading bool
	Err     string
}

func NewTeamStore(clients api.ClientPair) *TeamStore {
	return &TeamStore{client: clients.User}
}

func (s *TeamStore) State() TeamState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TeamState{
		Teams:   append([]api.Team(nil), s.teams...),
		MyTeams: append([]api.MyTeamItem(nil), s.myTeams...),
		Current: s.current,
		Loading: s.loading,
		Err:     s.err,
	}
}

// FetchTeamsByHackathon lists a hackathon's teams; an empty statusFilter
// defaults to open teams.
func (s *TeamStore) FetchTeamsByHackathon(ctx context.Context, hackathonID int64, statusFilter api.TeamStatus) ([]api.Team, error) {
	if statusFilter == "" {
		statusFilter = api.TeamStatusOpen
	}

	return run(&s.Tracker, msgFetchTeamsFailed, func() ([]api.Team, error) {
		teams, err := send[[]api.Team](
			s.client.NewRequest(ctx).
				SetPathParam("hackathonID", formatID(hackathonID)).
				SetQueryParam("status_filter", string(statusFilter)),
			http.MethodGet, teamsByHackathonPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.teams = teams
		s.mu.Unlock()
		return teams, nil
	})
}

func (s *TeamStore) FetchTeam(ctx context.Context, teamID int64) (*api.TeamDetail, error) {
	return run(&s.Tracker, msgFetchTeamFailed, func() (*api.TeamDetail, error) {
		team, err := send[api.TeamDetail](
			s.client.NewRequest(ctx).SetPathParam("teamID", formatID(teamID)),
			http.MethodGet, teamByIDPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.current = &team
		s.mu.Unlock()
		return &team, nil
	})
}

// FetchMyTeams lists the teams the current user belongs to, together with
// their hackathons.
func (s *TeamStore) FetchMyTeams(ctx context.Context) ([]api.MyTeamItem, error) {
	return run(&s.Tracker, msgFetchTeamsFailed, func() ([]api.MyTeamItem, error) {
		teams, err := send[[]api.MyTeamItem](s.client.NewRequest(ctx), http.MethodGet, myTeamsPath)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.myTeams = teams
		s.mu.Unlock()
		return teams, nil
	})
}

func (s *TeamStore) CreateTeam(ctx context.Context, req api.TeamCreateRequest) (*api.Team, error) {
	return run(&s.Tracker, msgCreateTeamFailed, func() (*api.Team, error) {
		team, err := send[api.Team](
			s.client.NewRequest(ctx).SetBody(req),
			http.MethodPost, teamsPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.teams = append(s.teams, team)
		s.mu.Unlock()
		return &team, nil
	})
}

func (s *TeamStore) InviteUser(ctx context.Context, teamID, userID int64) error {
	_, err := run(&s.Tracker, msgInviteFailed, func() (struct{}, error) {
		return struct{}{}, sendNoResult(
			s.client.NewRequest(ctx).
				SetPathParam("teamID", formatID(teamID)).
				SetQueryParam("user_id", formatID(userID)),
			http.MethodPost, teamInvitePath,
		)
	})
	return err
}

// RemoveMember drops a member from the team and, when the mutated team is
// the one currently loaded, re-fetches it from the server.
func (s *TeamStore) RemoveMember(ctx context.Context, teamID, userID int64) error {
	_, err := run(&s.Tracker, msgRemoveMemberFailed, func() (struct{}, error) {
		err := sendNoResult(
			s.client.NewRequest(ctx).
				SetPathParam("teamID", formatID(teamID)).
				SetPathParam("userID", formatID(userID)),
			http.MethodDelete, teamMemberPath,
		)
		if err != nil {
			return struct{}{}, err
		}

		s.mu.Lock()
		currentMutated := s.current != nil && s.current.ID == teamID
		s.mu.Unlock()
		if currentMutated {
			_, err = s.FetchTeam(ctx, teamID)
		}
		return struct{}{}, err
	})
	return err
}

func (s *TeamStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = nil
	s.myTeams = nil
	s.current = nil
	s.err = ""
}
