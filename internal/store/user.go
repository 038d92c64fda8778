package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	userProfilePath           = "/api/users/me"
	userByIDPath              = "/api/users/{userID}"
	hackathonParticipantsPath = "/api/users/hackathons/{hackathonID}/participants"
)

const (
	msgFetchProfileFailed      = "Ошибка загрузки профиля"
	msgUpdateProfileFailed     = "Ошибка обновления профиля"
	msgFetchParticipantsFailed = "Ошибка загрузки участников"
)

type UserStore struct {
	Tracker
	client  pkghttp.Client
	profile *api.User
}

type UserState struct {
	Profile *api.User
	Loading bool
	Err     string
}

func NewUserStore(clients api.ClientPair) *UserStore {
	return &UserStore{client: clients.User}
}

func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserState{
		Profile: s.profile,
		Loading: s.loading,
		Err:     s.err,
	}
}

func (s *UserStore) FetchMyProfile(ctx context.Context) (*api.User, error) {
	return run(&s.Tracker, msgFetchProfileFailed, func() (*api.User, error) {
		profile, err := send[api.User](s.client.NewRequest(ctx), http.MethodGet, userProfilePath)
		if err != nil {
			return nil, err
		}
		return s.storeProfile(profile), nil
	})
}

func (s *UserStore) FetchProfile(ctx context.Context, userID int64) (*api.User, error) {
	return run(&s.Tracker, msgFetchProfileFailed, func() (*api.User, error) {
		profile, err := send[api.User](
			s.client.NewRequest(ctx).SetPathParam("userID", formatID(userID)),
			http.MethodGet, userByIDPath,
		)
		if err != nil {
			return nil, err
		}
		return s.storeProfile(profile), nil
	})
}

func (s *UserStore) UpdateProfile(ctx context.Context, req api.UserUpdateRequest) (*api.User, error) {
	return run(&s.Tracker, msgUpdateProfileFailed, func() (*api.User, error) {
		profile, err := send[api.User](
			s.client.NewRequest(ctx).SetBody(req),
			http.MethodPut, userProfilePath,
		)
		if err != nil {
			return nil, err
		}
		return s.storeProfile(profile), nil
	})
}

// FetchParticipants lists a hackathon's registered users looking for a
// team. The result is returned without being retained in the store.
func (s *UserStore) FetchParticipants(ctx context.Context, hackathonID int64) ([]api.UserListItem, error) {
	return run(&s.Tracker, msgFetchParticipantsFailed, func() ([]api.UserListItem, error) {
		return send[[]api.UserListItem](
			s.client.NewRequest(ctx).SetPathParam("hackathonID", formatID(hackathonID)),
			http.MethodGet, hackathonParticipantsPath,
		)
	})
}

func (s *UserStore) ClearProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	s.err = ""
}

func (s *UserStore) storeProfile(profile api.User) *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	return &profile
}
