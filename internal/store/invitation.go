package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	invitationsPath        = "/api/invitations"
	invitationAcceptPath   = "/api/invitations/{invitationID}/accept"
	teamPendingInvitesPath = "/api/invitations/team/{teamID}/pending"
)

const (
	msgFetchInvitationsFailed  = "Ошибка загрузки приглашений"
	msgRespondInvitationFailed = "Ошибка обработки приглашения"
)

type InvitationStore struct {
	Tracker
	client      pkghttp.Client
	invitations []api.Invitation
}

type InvitationState struct {
	Invitations []api.Invitation
	Loading     bool
	Err         string
}

func NewInvitationStore(clients api.ClientPair) *InvitationStore {
	return &InvitationStore{client: clients.User}
}

func (s *InvitationStore) State() InvitationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return InvitationState{
		Invitations: append([]api.Invitation(nil), s.invitations...),
		Loading:     s.loading,
		Err:         s.err,
	}
}

// FetchInvitations lists the current user's invitations; an empty
// statusFilter defaults to pending ones.
func (s *InvitationStore) FetchInvitations(ctx context.Context, statusFilter api.InvitationStatus) ([]api.Invitation, error) {
	if statusFilter == "" {
		statusFilter = api.InvitationStatusPending
	}

	return run(&s.Tracker, msgFetchInvitationsFailed, func() ([]api.Invitation, error) {
		invitations, err := send[[]api.Invitation](
			s.client.NewRequest(ctx).SetQueryParam("status_filter", string(statusFilter)),
			http.MethodGet, invitationsPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.invitations = invitations
		s.mu.Unlock()
		return invitations, nil
	})
}

// RespondToInvitation accepts or declines an invitation and re-fetches
// the pending list from the server.
func (s *InvitationStore) RespondToInvitation(ctx context.Context, invitationID int64, accept bool) error {
	_, err := run(&s.Tracker, msgRespondInvitationFailed, func() (struct{}, error) {
		err := sendNoResult(
			s.client.NewRequest(ctx).
				SetPathParam("invitationID", formatID(invitationID)).
				SetBody(api.InvitationAcceptRequest{Accept: accept}),
			http.MethodPost, invitationAcceptPath,
		)
		if err != nil {
			return struct{}{}, err
		}

		_, err = s.FetchInvitations(ctx, api.InvitationStatusPending)
		return struct{}{}, err
	})
	return err
}

// FetchTeamPending lists a team's outstanding invitations, visible to its
// captain. The result is returned without being retained in the store.
func (s *InvitationStore) FetchTeamPending(ctx context.Context, teamID int64) ([]api.Invitation, error) {
	return run(&s.Tracker, msgFetchInvitationsFailed, func() ([]api.Invitation, error) {
		return send[[]api.Invitation](
			s.client.NewRequest(ctx).SetPathParam("teamID", formatID(teamID)),
			http.MethodGet, teamPendingInvitesPath,
		)
	})
}

func (s *InvitationStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invitations = nil
	s.err = ""
}
