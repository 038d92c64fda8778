package store

import (
	"context"
	"net/http"

	"github.com/hackplatform/client-go/internal/api"
	pkghttp "github.com/hackplatform/client-go/pkg/http"
)

const (
	hackathonsPath        = "/api/hackathons"
	hackathonByIDPath     = "/api/hackathons/{hackathonID}"
	hackathonRegisterPath = "/api/hackathons/{hackathonID}/register"
)

const (
	msgFetchHackathonsFailed = "Ошибка загрузки хакатонов"
	msgFetchHackathonFailed  = "Ошибка загрузки хакатона"
	msgRegistrationFailed    = "Ошибка регистрации"
)

type HackathonStore struct {
	Tracker
	client     pkghttp.Client
	hackathons []api.Hackathon
	current    *api.HackathonDetail
}

type HackathonState struct {
	Hackathons []api.Hackathon
	Current    *api.HackathonDetail
	Loading    bool
	Err        string
}

func NewHackathonStore(clients api.ClientPair) *HackathonStore {
	return &HackathonStore{client: clients.User}
}

func (s *HackathonStore) State() HackathonState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return HackathonState{
		Hackathons: append([]api.Hackathon(nil), s.hackathons...),
		Current:    s.current,
		Loading:    s.loading,
		Err:        s.err,
	}
}

func (s *HackathonStore) FetchHackathons(ctx context.Context) ([]api.Hackathon, error) {
	return run(&s.Tracker, msgFetchHackathonsFailed, func() ([]api.Hackathon, error) {
		hackathons, err := send[[]api.Hackathon](s.client.NewRequest(ctx), http.MethodGet, hackathonsPath)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.hackathons = hackathons
		s.mu.Unlock()
		return hackathons, nil
	})
}

func (s *HackathonStore) FetchHackathon(ctx context.Context, hackathonID int64) (*api.HackathonDetail, error) {
	return run(&s.Tracker, msgFetchHackathonFailed, func() (*api.HackathonDetail, error) {
		detail, err := send[api.HackathonDetail](
			s.client.NewRequest(ctx).SetPathParam("hackathonID", formatID(hackathonID)),
			http.MethodGet, hackathonByIDPath,
		)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.current = &detail
		s.mu.Unlock()
		return &detail, nil
	})
}

// RegisterForHackathon registers the current user and then re-fetches the
// hackathon detail, refreshing the source of truth from the server
// instead of patching the local state.
func (s *HackathonStore) RegisterForHackathon(ctx context.Context, hackathonID int64) error {
	_, err := run(&s.Tracker, msgRegistrationFailed, func() (struct{}, error) {
		err := sendNoResult(
			s.client.NewRequest(ctx).SetPathParam("hackathonID", formatID(hackathonID)),
			http.MethodPost, hackathonRegisterPath,
		)
		if err != nil {
			return struct{}{}, err
		}

		_, err = s.FetchHackathon(ctx, hackathonID)
		return struct{}{}, err
	})
	return err
}

func (s *HackathonStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hackathons = nil
	s.current = nil
	s.err = ""
}
